// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package esamatchfinder

import "runtime"

// CreateOptions configures a Finder's capacity and match-length window.
// Threads of 0 selects runtime.GOMAXPROCS(0); values above MaxThreads are
// clamped down to it.
type CreateOptions struct {
	// MaxBlockSize is the largest block Parse will accept, 0 <= n <= MaxBlockSize.
	MaxBlockSize int
	// MinMatchLength is the shortest match length ever reported (>= MinMatchLength constant).
	MinMatchLength int
	// MaxMatchLength is the longest match length ever reported
	// (MinMatchLength <= MaxMatchLength <= MinMatchLength + 2^MatchBits - 2).
	MaxMatchLength int
	// Threads is the fork/join worker count for construction and reset;
	// 0 = runtime default, negative values are rejected by Create.
	Threads int
	// Builder supplies the SA/PLCP construction; nil selects the built-in
	// prefix-doubling builder.
	Builder SAPLCPBuilder
}

// DefaultCreateOptions returns options for the given maximum block size with
// MinMatchLength=2, MaxMatchLength=MaxMatchLength, and the runtime's default
// parallelism.
func DefaultCreateOptions(maxBlockSize int) *CreateOptions {
	return &CreateOptions{
		MaxBlockSize:   maxBlockSize,
		MinMatchLength: MinMatchLength,
		MaxMatchLength: MaxMatchLength,
		Threads:        0,
	}
}

// resolveThreads turns the caller-requested thread count into the count the
// finder actually uses: 0 becomes the runtime's default parallelism, and
// anything past MaxThreads is clamped down to it.
func resolveThreads(requested int) int {
	threads := requested
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > MaxThreads {
		threads = MaxThreads
	}
	return threads
}
