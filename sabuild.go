// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

import "sort"

// SAPLCPBuilder turns a block into a suffix array and a permuted LCP
// array. The finder only depends on the shape of the output, not on the
// construction algorithm, so callers with a faster builder can supply
// their own through CreateOptions. A Finder uses defaultSAPLCPBuilder
// otherwise.
type SAPLCPBuilder interface {
	// BuildSA returns SA[0..n), the permutation of [0,n) giving the
	// lexicographic order of T's suffixes.
	BuildSA(block []byte) ([]int32, error)
	// BuildPLCP returns PLCP[0..n): PLCP[p] is the LCP between T[p..] and
	// the lexicographically preceding suffix in sa.
	BuildPLCP(block []byte, sa []int32) ([]int32, error)
}

// defaultSAPLCPBuilder builds SA by prefix-doubling rank comparison and
// PLCP by Kasai's algorithm. O(n log^2 n) rather than linear, but
// dependency-free and easily verified; callers parsing very large blocks
// can plug in a linear-time builder instead.
type defaultSAPLCPBuilder struct{}

func (defaultSAPLCPBuilder) BuildSA(block []byte) ([]int32, error) {
	n := len(block)
	sa := make([]int32, n)
	if n == 0 {
		return sa, nil
	}
	if n == 1 {
		sa[0] = 0
		return sa, nil
	}

	scratch := acquireSAScratch(n)
	defer releaseSAScratch(scratch)

	rank, tmp := scratch.rank, scratch.tmp
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int(block[i])
	}

	rankAt := func(i int32) int {
		if int(i) >= n {
			return -1
		}
		return rank[i]
	}

	for k := 1; ; k *= 2 {
		sort.Slice(sa, func(i, j int) bool {
			a, b := sa[i], sa[j]
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			return rankAt(a+int32(k)) < rankAt(b+int32(k))
		})

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			prev, cur := sa[i-1], sa[i]
			if rank[prev] != rank[cur] || rankAt(prev+int32(k)) != rankAt(cur+int32(k)) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)

		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return sa, nil
}

func (defaultSAPLCPBuilder) BuildPLCP(block []byte, sa []int32) ([]int32, error) {
	n := len(block)
	plcp := make([]int32, n)
	if n < 2 {
		return plcp, nil
	}

	scratch := acquireSAScratch(n)
	defer releaseSAScratch(scratch)

	rankOf := scratch.rankOf
	for i, suffix := range sa {
		rankOf[suffix] = int32(i)
	}

	h := 0
	for i := 0; i < n; i++ {
		if rankOf[i] > 0 {
			j := int(sa[rankOf[i]-1])
			for i+h < n && j+h < n && block[i+h] == block[j+h] {
				h++
			}
			plcp[i] = int32(h)
			if h > 0 {
				h--
			}
		} else {
			h = 0
		}
	}

	return plcp, nil
}
