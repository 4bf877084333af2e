// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

// node is one packed 64-bit interval-tree entry: lcp_excess (top lcpBits
// bits) | offset (next offsetBits bits) | parent (low parentBits bits).
// Exposed as typed getter/setter inlines rather than a bitfield struct,
// since a struct's in-memory layout would be compiler dependent.
type node uint64

// rootNode is the value stored at index 0: lcp_excess=0, offset=offsetMask
// (all ones, so it always looks "stamped" and is never mistaken for an
// unvisited node), parent=0.
const rootNode node = node(offsetMask)

func (n node) lcpExcess() uint64 { return uint64(n) >> lcpShift }

func (n node) offsetField() uint64 { return uint64(n) & offsetMask }

// stamp returns the value of the offset field as written by the match
// enumerator: the last position that touched this interval, plus one. Zero
// means the interval has never been touched since the last reset. The +1
// bias keeps position 0 distinguishable from "never touched", so matches
// against the very first byte of the block are reported like any other.
func (n node) stamp() uint64 { return n.offsetField() >> offsetShift }

func (n node) parent() uint32 { return uint32(uint64(n) & parentMask) }

// withStamp returns n with its offset field replaced by stamp. A stamp that
// no longer fits the field (position MaxBlockSize-1 of a full-capacity
// block) wraps to zero; nothing walks past the final position, so the lost
// stamp is never read back.
func (n node) withStamp(stamp uint64) node {
	return node((uint64(n) &^ offsetMask) | ((stamp << offsetShift) & offsetMask))
}

// withoutStamp clears the offset field, returning the node to its
// untouched state.
func (n node) withoutStamp() node {
	return node(uint64(n) &^ offsetMask)
}

// makeInterval packs an lcp_excess value and a node-array index into a new,
// not-yet-parented interval. The index occupies the combined offset+parent
// bit range until the interval is closed and reparented.
func makeInterval(lcpExcess, index uint64) node {
	return node((lcpExcess << lcpShift) | index)
}

// index extracts the low 32 bits of a node word as a node-array index. This
// is valid both for packed intervals built by makeInterval (whose index
// occupies bits below lcpShift, always < MaxBlockSize <= 2^32) and for fully
// formed nodes (whose parent field occupies the same low bits).
func (n node) index() uint32 { return uint32(n) }

// withParentAndOwnLCP rebuilds a just-closed interval's own packed value:
// its own lcp_excess (recovered from the closed word) combined with the
// parent index it was just assigned. Offset bits are left zero.
func withParentAndOwnLCP(parentIndex uint32, closed node) node {
	return node(uint64(parentIndex)) | node(uint64(closed)&lcpMask)
}
