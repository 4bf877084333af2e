// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

import "testing"

func offsetSnapshot(f *Finder) []uint64 {
	snap := make([]uint64, f.blockSize)
	for i := 0; i < f.blockSize; i++ {
		snap[i] = f.storage.parentLink[i].offsetField()
	}
	return snap
}

func sameSnapshot(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Rewinding to the same position twice must leave identical stamp
// contents.
func TestRewind_Idempotence(t *testing.T) {
	block := []byte("mississippi river mississippi delta")
	f := mustParse(t, len(block), 2, 64, block)
	defer f.Close()

	const q = 10
	if err := f.Rewind(q); err != nil {
		t.Fatalf("first Rewind failed: %v", err)
	}
	first := offsetSnapshot(f)

	if err := f.Rewind(q); err != nil {
		t.Fatalf("second Rewind failed: %v", err)
	}
	second := offsetSnapshot(f)

	if !sameSnapshot(first, second) {
		t.Fatal("rewind(q) twice produced different stamp state")
	}
}

// For every 0 <= q < n, Rewind(q) must reconstruct exactly the stamp
// state that q forward walks from position 0 would have left behind.
func TestRewind_AgreesWithReplayedWalk(t *testing.T) {
	block := []byte("to be or not to be, that is the question")

	for q := 0; q <= len(block); q++ {
		walked := mustParse(t, len(block), 2, 64, block)
		for i := 0; i < q; i++ {
			if _, err := walked.FindBestMatch(); err != nil {
				t.Fatalf("q=%d: FindBestMatch failed: %v", q, err)
			}
		}
		walkedSnap := offsetSnapshot(walked)
		walked.Close()

		if q == len(block) {
			continue // Rewind requires 0 <= q < n; q == n has no rewind analogue.
		}

		rewound := mustParse(t, len(block), 2, 64, block)
		if err := rewound.Rewind(q); err != nil {
			t.Fatalf("q=%d: Rewind failed: %v", q, err)
		}
		rewoundSnap := offsetSnapshot(rewound)
		rewound.Close()

		if !sameSnapshot(walkedSnap, rewoundSnap) {
			t.Fatalf("q=%d: rewind state disagrees with replayed walk", q)
		}
	}
}

// Advancing through the whole block and rewinding to 0 returns the tree to
// the same stamp state as immediately after Parse.
func TestRewindToZero_MatchesFreshParse(t *testing.T) {
	block := []byte("abracadabra, abracadabra")

	fresh := mustParse(t, len(block), 2, 64, block)
	defer fresh.Close()
	freshSnap := offsetSnapshot(fresh)

	f := mustParse(t, len(block), 2, 64, block)
	defer f.Close()
	if err := f.Advance(len(block)); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if err := f.Rewind(0); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}

	if !sameSnapshot(freshSnap, offsetSnapshot(f)) {
		t.Fatal("rewind(0) after advance(n) does not match state immediately after parse")
	}
	if f.Position() != 0 {
		t.Fatalf("position after rewind(0): got %d, want 0", f.Position())
	}
}

// A rewind must also reproduce the matches a forward walk would now find:
// walk to the end, rewind to the middle, and check the remainder of the
// block against a finder that only ever walked forward.
func TestRewind_ThenMatchesAgreeWithForwardOnly(t *testing.T) {
	block := []byte("sells seashells by the seashore, she sells seashells")
	q := len(block) / 2

	forward := mustParse(t, len(block), 2, 64, block)
	defer forward.Close()
	if err := forward.Advance(q); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	rewound := mustParse(t, len(block), 2, 64, block)
	defer rewound.Close()
	if err := rewound.Advance(len(block)); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if err := rewound.Rewind(q); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}

	out1 := make([]Match, MaxMatchLength)
	out2 := make([]Match, MaxMatchLength)
	for p := q; p < len(block); p++ {
		n1, err := forward.FindAllMatches(out1)
		if err != nil {
			t.Fatalf("forward FindAllMatches at p=%d failed: %v", p, err)
		}
		n2, err := rewound.FindAllMatches(out2)
		if err != nil {
			t.Fatalf("rewound FindAllMatches at p=%d failed: %v", p, err)
		}
		if n1 != n2 {
			t.Fatalf("p=%d: forward found %d matches, rewound %d", p, n1, n2)
		}
		for i := 0; i < n1; i++ {
			if out1[i] != out2[i] {
				t.Fatalf("p=%d match %d: forward %+v, rewound %+v", p, i, out1[i], out2[i])
			}
		}
	}
}

func TestRewind_RejectsOutOfRangePosition(t *testing.T) {
	block := []byte("hello world")
	f := mustParse(t, len(block), 2, 64, block)
	defer f.Close()

	if err := f.Rewind(-1); err == nil {
		t.Fatal("expected error for negative position")
	}
	if err := f.Rewind(len(block)); err == nil {
		t.Fatal("expected error for position == n")
	}
}
