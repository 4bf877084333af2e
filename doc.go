// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package esamatchfinder implements an enhanced-suffix-array (ESA) based match
finder for Lempel-Ziv factorization.

Given a parsed block of bytes, the finder produces, for every position p in
the block, either the single longest back-reference available at p or the
Pareto-optimal frontier of all back-references, longest first: every
further match trades length away for a strictly nearer occurrence. It
performs no entropy coding of its own; callers feed the returned matches
to an LZ-style encoder.

# Create and parse

A Finder is sized once and reused across many blocks up to that size:

	f, err := esamatchfinder.Create(esamatchfinder.DefaultCreateOptions(1 << 20))
	if err != nil {
		// bad parameters
	}
	defer f.Close()

	if err := f.Parse(block); err != nil {
		// SA/PLCP construction failed
	}

# Find matches

Walk the block position by position; each find call also advances the
finder's position by one byte:

	matches := make([]esamatchfinder.Match, esamatchfinder.MaxMatchLength)
	for f.Position() < len(block) {
		end, err := f.FindAllMatches(matches)
		if err != nil {
			// position out of range
		}
		for _, m := range matches[:end] {
			// m.Length, m.Offset
		}
	}

FindBestMatch returns only the longest match at the current position.
Advance steps the finder forward without recording matches. Rewind resets
the finder to an earlier (or later) position, replaying the bookkeeping that
FindAllMatches/FindBestMatch/Advance would have performed along the way.

# Window variants

FindAllMatchesInWindow and FindBestMatchInWindow behave like their base
counterparts but only report matches whose offset is within a caller-given
sliding window of the current position.
*/
package esamatchfinder
