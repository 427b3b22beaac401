package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by all option validation errors. A session
// with invalid options never starts; validation runs before the first tick.
var ErrInvalidConfig = errors.New("tetris: invalid configuration")

// Options are the session parameters supplied at construction.
type Options struct {
	Width      int // playfield columns
	Height     int // visible playfield rows
	BufferRows int // hidden spawn rows above the visible playfield
	Preview    int // next-queue length

	StartLevel int

	LockDelayMS   int // grace period once a piece can no longer fall
	MaxLockResets int // movement-triggered lock delay resets per piece
	SpawnDelayMS  int // upper bound on the pause before the next spawn

	Pieces []PieceType // enabled piece set
}

// DefaultOptions returns the standard guideline-style setup.
func DefaultOptions() Options {
	return Options{
		Width:         10,
		Height:        20,
		BufferRows:    2,
		Preview:       5,
		StartLevel:    0,
		LockDelayMS:   500,
		MaxLockResets: 15,
		SpawnDelayMS:  500,
		Pieces: []PieceType{
			PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ,
		},
	}
}

// Validate checks the session constraints. Violations reject the session at
// construction time, before any tick runs.
func (o Options) Validate() error {
	if o.Width < 4 {
		return fmt.Errorf("%w: board width must be at least 4, got %d", ErrInvalidConfig, o.Width)
	}
	if o.Height < o.Width {
		return fmt.Errorf("%w: board height must be at least the width, got %dx%d", ErrInvalidConfig, o.Width, o.Height)
	}
	if o.BufferRows < 2 {
		return fmt.Errorf("%w: at least 2 buffer rows required, got %d", ErrInvalidConfig, o.BufferRows)
	}
	if o.Preview < 1 {
		return fmt.Errorf("%w: preview length must be at least 1, got %d", ErrInvalidConfig, o.Preview)
	}
	if len(o.Pieces) == 0 {
		return fmt.Errorf("%w: piece set is empty", ErrInvalidConfig)
	}
	for _, p := range o.Pieces {
		if p < 0 || p >= PieceCount {
			return fmt.Errorf("%w: unknown piece ordinal %d", ErrInvalidConfig, p)
		}
	}
	if o.StartLevel < 0 {
		return fmt.Errorf("%w: start level must not be negative, got %d", ErrInvalidConfig, o.StartLevel)
	}
	if o.LockDelayMS <= 0 || o.SpawnDelayMS < 0 || o.MaxLockResets <= 0 {
		return fmt.Errorf("%w: timing parameters must be positive", ErrInvalidConfig)
	}
	return nil
}
