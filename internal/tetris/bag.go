package tetris

import "math/rand"

// Bag is a seeded shuffle-without-replacement piece generator. Every draw
// removes one piece from the current bag; when the bag empties, a fresh full
// set is shuffled in. Across any window of two bags each enabled type
// appears at least once and at most twice.
//
// All engine randomness flows through this one generator so a session is
// fully reproducible from its seed.
type Bag struct {
	rng     *rand.Rand
	pieces  []PieceType
	pending []PieceType // current bag, drawn from the front
}

// NewBag creates a bag over the given piece set using a deterministic seeded
// source. The piece set must be non-empty; Options.Validate guards this.
func NewBag(seed int64, pieces []PieceType) *Bag {
	b := &Bag{
		rng:    rand.New(rand.NewSource(seed)),
		pieces: append([]PieceType(nil), pieces...),
	}
	b.refill()
	return b
}

// Next removes and returns the next piece, refilling the bag when exhausted.
func (b *Bag) Next() PieceType {
	if len(b.pending) == 0 {
		b.refill()
	}
	p := b.pending[0]
	b.pending = b.pending[1:]
	return p
}

// refill fills the bag with one of each enabled piece in shuffled order.
func (b *Bag) refill() {
	b.pending = append(b.pending[:0], b.pieces...)
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}
