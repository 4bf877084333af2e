// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

// Position returns the match-finder's current position. Valid only after a
// successful Parse.
func (f *Finder) Position() int {
	return f.position
}

// Rewind moves the match-finder to position q, replaying (or discarding) the
// offset bookkeeping a forward walk from 0 to q would have produced. A no-op
// if q already equals the current position.
func (f *Finder) Rewind(q int) error {
	if !f.parsed {
		return ErrNotParsed
	}
	if q < 0 || q >= f.blockSize {
		return ErrBadParameter
	}

	if f.position == q {
		return nil
	}

	if f.position != 0 {
		resetStamps(f.storage.parentLink, f.storage.ranges, f.threads)
	}

	if q > 0 {
		fastForward(f.storage.parentLink, f.storage.leafLink, q)
	}

	f.position = q
	return nil
}

// resetStamps zeroes the offset field of every node in each recorded
// per-worker range, in parallel. Node 0 sits below every recorded range, so
// the root sentinel's always-stamped offset survives every reset.
func resetStamps(parentLink []node, ranges []threadRange, threads int) {
	for _, r := range ranges {
		if r.Start >= r.End {
			continue
		}
		rr := r
		forkJoin(threads, rr.End-rr.Start, func(start, end int) {
			base := rr.Start
			for i := base + start; i < base+end; i++ {
				parentLink[i] = parentLink[i].withoutStamp()
			}
		})
	}
}

// fastForward replays the stamping writes FindAllMatches/FindBestMatch/
// Advance would have performed for positions 0..target-1, without recording
// any matches. It visits positions in descending order so that the first
// time a node is stamped, it is stamped with the largest position on whose
// leaf-to-root path it lies; an already-stamped node's ancestors were
// stamped in the same earlier visit, so the climb can stop there.
func fastForward(parentLink []node, leafLink []uint32, target int) {
	for p := target - 1; p >= 0; p-- {
		newStamp := uint64(p) + 1
		reference := leafLink[p]

		for parentLink[reference].offsetField() == 0 {
			parentLink[reference] = parentLink[reference].withStamp(newStamp)
			reference = parentLink[reference].parent()
		}
	}
}
