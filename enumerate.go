// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

// Each of these operations shares one walk: starting at leaf[p], climb
// parent links to the root, and at every node decode a candidate match from
// whatever position last touched it, then stamp the node with p for the
// next walk to see. Stamps carry a +1 bias (see node.stamp) so that
// position 0 is distinguishable from "never touched"; a match's Offset is
// the back-reference distance, p minus the stamped position.
//
// Along the leaf-to-root path, interval depth strictly decreases and stamps
// never decrease (an ancestor is touched by every position that touches its
// descendants). The walk therefore emits the Pareto-optimal frontier in
// longest-first order: each accepted match is strictly shorter and strictly
// nearer than the one before it, and acceptance only needs to compare a
// node's stamp against the previous node's.

// FindAllMatches records every Pareto-optimal match at the current
// position into out, longest match first, each subsequent match strictly
// shorter and at a strictly smaller offset, and advances the position by
// one. out must have length at least MaxMatchLength. Returns the number of
// matches written.
func (f *Finder) FindAllMatches(out []Match) (int, error) {
	if !f.parsed {
		return 0, ErrNotParsed
	}
	if len(out) < MaxMatchLength {
		return 0, ErrBadParameter
	}
	if f.position >= f.blockSize {
		return 0, ErrBadParameter
	}

	n := f.walkAllMatches(out, 0, false)
	f.position++
	return n, nil
}

// FindAllMatchesInWindow behaves as FindAllMatches but rejects any match
// whose offset (back-reference distance) would be >= window.
func (f *Finder) FindAllMatchesInWindow(out []Match, window uint64) (int, error) {
	if !f.parsed {
		return 0, ErrNotParsed
	}
	if len(out) < MaxMatchLength {
		return 0, ErrBadParameter
	}
	if f.position >= f.blockSize {
		return 0, ErrBadParameter
	}

	n := f.walkAllMatches(out, window, true)
	f.position++
	return n, nil
}

// FindBestMatch returns the single longest match at the current position
// (the zero-value Match if none exists) and advances the position by one.
func (f *Finder) FindBestMatch() (Match, error) {
	if !f.parsed {
		return Match{}, ErrNotParsed
	}
	if f.position >= f.blockSize {
		return Match{}, ErrBadParameter
	}

	m := f.walkBestMatch(0, false)
	f.position++
	return m, nil
}

// FindBestMatchInWindow behaves as FindBestMatch but rejects any match
// whose offset would be >= window.
func (f *Finder) FindBestMatchInWindow(window uint64) (Match, error) {
	if !f.parsed {
		return Match{}, ErrNotParsed
	}
	if f.position >= f.blockSize {
		return Match{}, ErrBadParameter
	}

	m := f.walkBestMatch(window, true)
	f.position++
	return m, nil
}

// Advance moves the position forward by count, performing the same offset
// stamping as count calls to FindAllMatches would, without recording any
// matches.
func (f *Finder) Advance(count int) error {
	if !f.parsed {
		return ErrNotParsed
	}
	if count < 0 || f.position+count > f.blockSize {
		return ErrBadParameter
	}

	parentLink := f.storage.parentLink
	leafLink := f.storage.leafLink

	for p := f.position; p < f.position+count; p++ {
		newStamp := uint64(p) + 1
		reference := leafLink[p]
		for reference != 0 {
			parentLink[reference] = parentLink[reference].withStamp(newStamp)
			reference = parentLink[reference].parent()
		}
	}

	f.position += count
	return nil
}

// walkAllMatches runs the shared walk for the current position, writing
// Pareto-optimal matches into out, and returns how many were written.
func (f *Finder) walkAllMatches(out []Match, window uint64, windowed bool) int {
	p := f.position
	minML := uint64(f.minMatchLength - 1)
	newStamp := uint64(p) + 1

	parentLink := f.storage.parentLink
	leafLink := f.storage.leafLink

	prevStamp := uint64(0)
	count := 0
	reference := leafLink[p]

	for reference != 0 {
		interval := parentLink[reference]
		stamp := interval.stamp()

		// A candidate survives only if its stamp strictly exceeds the
		// previous node's: an equal stamp means the same prior occurrence
		// already yielded a longer match one step deeper.
		if stamp > prevStamp {
			offset := newStamp - stamp
			if !windowed || offset < window {
				out[count] = Match{
					Length: int32(minML + interval.lcpExcess()),
					Offset: int32(offset),
				}
				count++
			}
		}
		prevStamp = stamp

		parentLink[reference] = interval.withStamp(newStamp)
		reference = interval.parent()
	}

	return count
}

// walkBestMatch runs the shared walk for the current position, keeping
// only the deepest (first-encountered) node with a usable stamp. Deeper
// intervals are both longer and farther back, so the first stamped node
// inside the window is the longest match the window admits.
func (f *Finder) walkBestMatch(window uint64, windowed bool) Match {
	p := f.position
	minML := uint64(f.minMatchLength - 1)
	newStamp := uint64(p) + 1

	parentLink := f.storage.parentLink
	leafLink := f.storage.leafLink

	var best Match
	found := false
	reference := leafLink[p]

	for reference != 0 {
		interval := parentLink[reference]

		if stamp := interval.stamp(); !found && stamp != 0 {
			offset := newStamp - stamp
			if !windowed || offset < window {
				best = Match{Length: int32(minML + interval.lcpExcess()), Offset: int32(offset)}
				found = true
			}
		}

		parentLink[reference] = interval.withStamp(newStamp)
		reference = interval.parent()
	}

	return best
}
