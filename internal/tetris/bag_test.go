package tetris

import "testing"

func TestBagEveryWindowIsAPermutation(t *testing.T) {
	pieces := DefaultOptions().Pieces
	b := NewBag(99, pieces)

	// Every consecutive group of 7 draws contains each piece exactly once
	for window := 0; window < 10; window++ {
		seen := make(map[PieceType]int, len(pieces))
		for i := 0; i < len(pieces); i++ {
			seen[b.Next()]++
		}
		for _, p := range pieces {
			if seen[p] != 1 {
				t.Fatalf("window %d: piece %v drawn %d times, want 1", window, p, seen[p])
			}
		}
	}
}

func TestBagSlidingWindowFairness(t *testing.T) {
	pieces := DefaultOptions().Pieces
	k := len(pieces)
	b := NewBag(99, pieces)

	draws := make([]PieceType, 10*k)
	for i := range draws {
		draws[i] = b.Next()
	}

	// Any K consecutive draws, bag-aligned or not, contain each type at
	// most twice
	for start := 0; start+k <= len(draws); start++ {
		counts := make(map[PieceType]int, k)
		for _, p := range draws[start : start+k] {
			counts[p]++
		}
		for p, n := range counts {
			if n > 2 {
				t.Fatalf("draws [%d,%d): piece %v drawn %d times, want at most 2", start, start+k, p, n)
			}
		}
	}

	// Any 2K consecutive draws contain every enabled type at least once
	for start := 0; start+2*k <= len(draws); start++ {
		counts := make(map[PieceType]int, k)
		for _, p := range draws[start : start+2*k] {
			counts[p]++
		}
		for _, p := range pieces {
			if counts[p] == 0 {
				t.Fatalf("draws [%d,%d): piece %v never drawn", start, start+2*k, p)
			}
		}
	}
}

func TestBagDeterministic(t *testing.T) {
	pieces := DefaultOptions().Pieces
	b1 := NewBag(42, pieces)
	b2 := NewBag(42, pieces)

	for i := 0; i < 70; i++ {
		p1, p2 := b1.Next(), b2.Next()
		if p1 != p2 {
			t.Fatalf("draw %d: %v vs %v with equal seeds", i, p1, p2)
		}
	}
}

func TestBagRestrictedPieceSet(t *testing.T) {
	pieces := []PieceType{PieceI, PieceO}
	b := NewBag(7, pieces)

	for i := 0; i < 20; i++ {
		p := b.Next()
		if p != PieceI && p != PieceO {
			t.Fatalf("draw %d: got %v outside the enabled set", i, p)
		}
	}
}
