// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

import "testing"

// bruteForceMatchesInWindow computes the Pareto-optimal match frontier at
// position p by direct comparison against every earlier position, used as
// an oracle to check the tree-based enumerator's output independently of
// its own machinery. Scanning nearest-first, a candidate survives only if
// it is strictly longer than every nearer one; the result is returned
// longest (and farthest) first, the enumerator's emission order. A window
// of 0 means unwindowed.
func bruteForceMatchesInWindow(block []byte, p, minMatchLength, maxMatchLength int, window uint64) []Match {
	var frontier []Match
	longestSoFar := minMatchLength - 1

	for q := p - 1; q >= 0; q-- {
		offset := p - q
		if window != 0 && uint64(offset) >= window {
			break
		}

		length := 0
		for p+length < len(block) && block[q+length] == block[p+length] && length < maxMatchLength {
			length++
		}
		if length > longestSoFar {
			frontier = append(frontier, Match{Length: int32(length), Offset: int32(offset)})
			longestSoFar = length
		}
	}

	for i, j := 0, len(frontier)-1; i < j; i, j = i+1, j-1 {
		frontier[i], frontier[j] = frontier[j], frontier[i]
	}
	return frontier
}

func bruteForceMatches(block []byte, p, minMatchLength, maxMatchLength int) []Match {
	return bruteForceMatchesInWindow(block, p, minMatchLength, maxMatchLength, 0)
}

func bruteForceBestMatch(block []byte, p, minMatchLength, maxMatchLength int) Match {
	matches := bruteForceMatches(block, p, minMatchLength, maxMatchLength)
	if len(matches) == 0 {
		return Match{}
	}
	return matches[0]
}

func mustParse(t *testing.T, maxBlockSize, minLen, maxLen int, block []byte) *Finder {
	t.Helper()
	opts := DefaultCreateOptions(maxBlockSize)
	opts.MinMatchLength = minLen
	opts.MaxMatchLength = maxLen

	f, err := Create(opts)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := f.Parse(block); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return f
}
