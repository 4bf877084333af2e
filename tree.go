// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

import "sync"

// buildIntervalTree runs a single right-to-left stack pass over [start,
// end), turning SA values already sitting in parentLink[start:end] (as
// plain widened positions) and PLCP values sitting in leafLink (as plain
// LCP lengths) into the packed parent-link representation and leaf-link
// indices. New interval nodes are allocated from end-1 downward; writes to
// closed intervals always land at indices the scan has already consumed,
// so the pass can reuse parentLink for both its input and its output. It
// returns the lowest node-array index actually consumed.
func buildIntervalTree(parentLink []node, leafLink []uint32, minMatchLength, maxMatchLength, start, end int) int {
	if end <= start {
		return end
	}

	// Stack of open intervals ordered by strictly increasing lcp_excess;
	// index 0 is the depth-0 root. Depth is bounded by the number of
	// distinct lcp_excess values, so the fixed array never overflows.
	var intervals [2 * MaxMatchLength]node

	top := 0
	nextIndex := uint64(end - 1)

	minML := uint64(minMatchLength - 1)
	maxLCP := uint64(maxMatchLength) - minML

	for i := end - 1; i >= start; i-- {
		nextPos := uint64(parentLink[i])
		plcpVal := uint64(leafLink[nextPos])

		var nextLCP uint64
		if plcpVal >= minML {
			nextLCP = plcpVal - minML
			if nextLCP > maxLCP {
				nextLCP = maxLCP
			}
		}

		nextInterval := makeInterval(nextLCP, nextIndex)
		topLCP := intervals[top].lcpExcess()

		// Push only if the new lcp strictly exceeds the current top's;
		// an equal lcp collapses into the top without consuming a node.
		intervals[top+1] = nextInterval
		if nextLCP > topLCP {
			top++
			nextIndex--
		}

		leafLink[nextPos] = intervals[top].index()

		for nextLCP < intervals[top].lcpExcess() {
			closed := intervals[top]
			top--

			topLCP = intervals[top].lcpExcess()
			intervals[top+1] = nextInterval
			if nextLCP > topLCP {
				top++
				nextIndex--
			}

			parentLink[closed.index()] = withParentAndOwnLCP(intervals[top].index(), closed)
		}
	}

	return int(nextIndex) + 1
}

// findBreakpoint returns the highest i in [start, end) at which the tree
// reaches depth 0 (PLCP[SA[i]] < minMatchLength), or -1 if none exists. No
// interval spans a depth-0 index, so a subtree over the SA range on either
// side of one can be built independently.
func findBreakpoint(parentLink []node, leafLink []uint32, minMatchLength, start, end int) int {
	minML := uint32(minMatchLength)
	for i := end - 1; i >= start; i-- {
		pos := uint64(parentLink[i])
		if leafLink[pos] < minML {
			return i
		}
	}
	return -1
}

// buildIntervalTreeParallel builds the whole interval tree over [0, n),
// splitting at depth-0 breakpoints across threads when the block is large
// enough to bother, and sets the root sentinel at node 0 once every worker
// has finished. It returns each worker's consumed node-index range, for
// later selective stamp resets.
//
// Phase 1 has every worker but the last locate a breakpoint inside its
// slab; a barrier then separates discovery from phase 2, where worker t
// builds the subtree between its predecessor's breakpoint and its own.
// Workers write to disjoint node and leaf indices throughout, so the two
// phases need no locks.
func buildIntervalTreeParallel(threads, n, minMatchLength, maxMatchLength int, parentLink []node, leafLink []uint32) []threadRange {
	ranges := slabs(threads, n)
	numWorkers := len(ranges)
	results := make([]threadRange, numWorkers)

	if numWorkers == 1 {
		r := ranges[0]
		consumedStart := buildIntervalTree(parentLink, leafLink, minMatchLength, maxMatchLength, r.Start, r.End)
		results[0] = threadRange{consumedStart, r.End}
		parentLink[0] = rootNode
		return results
	}

	breakpoints := make([]int, numWorkers)

	var discover sync.WaitGroup
	discover.Add(numWorkers)
	for t, r := range ranges {
		t, r := t, r
		go func() {
			defer discover.Done()
			if t == numWorkers-1 {
				breakpoints[t] = n
				return
			}
			breakpoints[t] = findBreakpoint(parentLink, leafLink, minMatchLength, r.Start, r.End)
		}()
	}
	discover.Wait() // barrier: every worker's breakpoint is final before phase 2 starts

	var build sync.WaitGroup
	build.Add(numWorkers)
	for t := range ranges {
		t := t
		go func() {
			defer build.Done()

			if breakpoints[t] == -1 {
				return
			}

			blockEnd := breakpoints[t]
			blockStart := 0
			for prev := t - 1; prev >= 0; prev-- {
				if breakpoints[prev] != -1 {
					blockStart = breakpoints[prev]
					break
				}
			}

			if blockStart < blockEnd {
				consumedStart := buildIntervalTree(parentLink, leafLink, minMatchLength, maxMatchLength, blockStart, blockEnd)
				results[t] = threadRange{consumedStart, blockEnd}
			}
		}()
	}
	build.Wait()

	parentLink[0] = rootNode
	return results
}
