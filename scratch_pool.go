package esamatchfinder

import "sync"

// saScratch holds the working arrays SA/PLCP construction needs, sized to
// the block currently being parsed and reused across Parse calls to cut GC
// pressure on the prefix-doubling sort's hot path.
type saScratch struct {
	rank   []int
	tmp    []int
	rankOf []int32
}

// scratchPool is a pool of SA/PLCP construction scratch buffers.
var scratchPool = sync.Pool{
	New: func() any {
		return &saScratch{}
	},
}

// acquireSAScratch acquires a scratch buffer from the pool sized for n.
func acquireSAScratch(n int) *saScratch {
	s := scratchPool.Get().(*saScratch)
	if cap(s.rank) < n {
		s.rank = make([]int, n)
	}
	if cap(s.tmp) < n {
		s.tmp = make([]int, n)
	}
	if cap(s.rankOf) < n {
		s.rankOf = make([]int32, n)
	}
	s.rank = s.rank[:n]
	s.tmp = s.tmp[:n]
	s.rankOf = s.rankOf[:n]
	return s
}

// releaseSAScratch releases a scratch buffer to the pool.
func releaseSAScratch(s *saScratch) {
	if s == nil {
		return
	}
	scratchPool.Put(s)
}
