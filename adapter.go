// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

import "fmt"

// buildESA invokes the SA/PLCP builder, widens the resulting SA into the
// finder's node array, and copies PLCP into the leaf-link array ahead of
// interval-tree construction.
func (f *Finder) buildESA(block []byte) error {
	sa, err := f.builder.BuildSA(block)
	if err != nil {
		return fmt.Errorf("%w: build_SA: %w", ErrInternal, err)
	}
	if len(sa) != len(block) {
		return fmt.Errorf("%w: build_SA returned %d entries for a %d-byte block", ErrInternal, len(sa), len(block))
	}

	plcp, err := f.builder.BuildPLCP(block, sa)
	if err != nil {
		return fmt.Errorf("%w: build_PLCP: %w", ErrInternal, err)
	}
	if len(plcp) != len(block) {
		return fmt.Errorf("%w: build_PLCP returned %d entries for a %d-byte block", ErrInternal, len(plcp), len(block))
	}

	widenSA(f.storage.parentLink, sa, f.threads)

	leafLink := f.storage.leafLink
	for i, v := range plcp {
		leafLink[i] = uint32(v)
	}

	return nil
}

// widenSA widens src (32-bit SA values) into dst (as plain node words, one
// SA position per slot) in a layered scheme: while the unwidened prefix is
// long, its upper half is processed in parallel left-to-right; the short
// remaining prefix finishes right-to-left on one goroutine. The layering
// exists so the same routine stays correct if dst is ever aliased over
// src's memory: the left-to-right passes only write 64-bit words whose
// 32-bit halves were already consumed, and the right-to-left tail never
// overwrites a word it has not yet read.
func widenSA(dst []node, src []int32, threads int) {
	remaining := len(src)

	for remaining >= parallelThreshold {
		blockSize := remaining >> 1
		remaining -= blockSize
		base := remaining

		forkJoin(threads, blockSize, func(start, end int) {
			for i := start; i < end; i++ {
				idx := base + i
				dst[idx] = node(uint64(uint32(src[idx])))
			}
		})
	}

	for i := remaining - 1; i >= 0; i-- {
		dst[i] = node(uint64(uint32(src[i])))
	}
}
