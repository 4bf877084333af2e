// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

// Finder is an enhanced-suffix-array based match-finder for Lempel-Ziv
// factorization. Create one with Create, Parse a block into it, then walk
// forward through the block with FindAllMatches, FindBestMatch, or Advance.
// A Finder is reusable across blocks via Parse and is not safe for
// concurrent use by multiple goroutines.
type Finder struct {
	storage *storage
	builder SAPLCPBuilder

	threads        int
	maxBlockSize   int
	minMatchLength int
	maxMatchLength int

	blockSize int // -1 until the first successful Parse
	position  int
	parsed    bool
}

// Create allocates a Finder per opts. MaxBlockSize must be in [0,
// MaxBlockSize], MinMatchLength must be >= MinMatchLength, and
// MaxMatchLength must be in [MinMatchLength, MinMatchLength + 2^MatchBits -
// 2]: the clamped length excess MaxMatchLength - MinMatchLength + 1 has to
// fit the MatchBits-wide field. Threads must be >= 0; 0 selects the
// runtime's default parallelism. The returned Finder has not parsed any
// block yet.
func Create(opts *CreateOptions) (*Finder, error) {
	if opts == nil {
		return nil, ErrBadParameter
	}
	if opts.MaxBlockSize < 0 || opts.MaxBlockSize > MaxBlockSize {
		return nil, ErrBadParameter
	}
	if opts.MinMatchLength < MinMatchLength {
		return nil, ErrBadParameter
	}
	if opts.MaxMatchLength < opts.MinMatchLength || opts.MaxMatchLength > opts.MinMatchLength+int(lcpMax)-1 {
		return nil, ErrBadParameter
	}
	if opts.Threads < 0 {
		return nil, ErrBadParameter
	}

	builder := opts.Builder
	if builder == nil {
		builder = defaultSAPLCPBuilder{}
	}

	f := &Finder{
		storage:        newStorage(opts.MaxBlockSize),
		builder:        builder,
		threads:        resolveThreads(opts.Threads),
		maxBlockSize:   opts.MaxBlockSize,
		minMatchLength: opts.MinMatchLength,
		maxMatchLength: opts.MaxMatchLength,
		blockSize:      -1,
	}
	return f, nil
}

// Close releases the Finder's backing storage. The Finder must not be used
// afterward.
func (f *Finder) Close() {
	f.storage = nil
	f.parsed = false
	f.blockSize = -1
}

// Parse builds the enhanced suffix array and interval tree for block,
// replacing any previously parsed block. len(block) must be <=
// MaxBlockSize given to Create. On success, Position returns 0.
func (f *Finder) Parse(block []byte) error {
	if len(block) > f.maxBlockSize {
		return ErrBadParameter
	}

	n := len(block)
	f.storage.reset(n)

	if err := f.buildESA(block); err != nil {
		// Construction already scribbled over any previously parsed block;
		// drop back to the unparsed state rather than leave it half-built.
		f.parsed = false
		f.blockSize = -1
		return err
	}

	ranges := buildIntervalTreeParallel(f.threads, n, f.minMatchLength, f.maxMatchLength, f.storage.parentLink, f.storage.leafLink)
	f.storage.ranges = append(f.storage.ranges[:0], ranges...)

	f.blockSize = n
	f.position = 0
	f.parsed = true
	return nil
}
