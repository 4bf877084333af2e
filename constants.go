// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

// Packed parent-node bit layout: one 64-bit word per interval-tree node,
// split (MSB to LSB) into lcp_excess(6) | offset(29) | parent(29).

const (
	totalBits = 64
	lcpBits   = 6 // MatchBits

	lcpShift = totalBits - lcpBits // 58

	offsetBits  = (totalBits - lcpBits) / 2 // 29
	offsetShift = totalBits - lcpBits - offsetBits

	parentBits  = offsetShift                                   // 29
	parentShift = totalBits - lcpBits - offsetBits - parentBits // 0
)

const (
	lcpMax  = (uint64(1) << lcpBits) - 1
	lcpMask = lcpMax << lcpShift

	offsetMax  = (uint64(1) << offsetBits) - 1
	offsetMask = offsetMax << offsetShift

	parentMax  = (uint64(1) << parentBits) - 1
	parentMask = parentMax << parentShift
)

// Exported compile-time constants.
const (
	// MatchBits is the bit-width of the stored match-length excess field.
	MatchBits = lcpBits

	// MaxBlockSize is the largest block the finder can parse: 2^((64-MatchBits)/2).
	MaxBlockSize = 1 << offsetBits

	// MinMatchLength is the smallest min-match-length Create will accept.
	MinMatchLength = 2

	// MaxMatchLength is the largest max-match-length Create accepts at the
	// default MinMatchLength. Lengths are stored as an excess over
	// MinMatchLength-1 in a MatchBits-wide field, so the general ceiling is
	// MinMatchLength + 2^MatchBits - 2, validated in Create.
	MaxMatchLength = 1 << lcpBits

	// MaxThreads bounds the thread count accepted by Create; values above
	// this are silently clamped.
	MaxThreads = 256

	// parallelThreshold is the minimum block size at which the widening,
	// interval-tree construction, and stamp-reset phases actually fork
	// across goroutines; below it they run inline on the calling goroutine.
	parallelThreshold = 65536
)

// Version is the match-finder's semantic version.
const Version = "1.1.0"

// VersionMajor, VersionMinor, and VersionPatch are the components of Version.
const (
	VersionMajor = 1
	VersionMinor = 1
	VersionPatch = 0
)
