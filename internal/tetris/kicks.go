package tetris

// Wall kicks follow the standard rotation system: when a naive rotation
// collides, each offset in the table for that orientation transition is tried
// in order; the first that fits wins, otherwise the rotation is rejected.
// Offsets are in grid coordinates (Y grows downward), so the published
// tables have their vertical component negated.

// kickKey indexes a rotation transition.
type kickKey struct {
	from, to Orientation
}

// jlstzKicks covers J, L, S, T and Z pieces.
var jlstzKicks = map[kickKey][]Point{
	{Spawn, Right}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{Right, Spawn}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{Right, Flip}:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{Flip, Right}:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{Flip, Left}:   {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{Left, Flip}:   {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{Left, Spawn}:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{Spawn, Left}:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

// iKicks covers the I piece, whose larger box needs its own offsets.
var iKicks = map[kickKey][]Point{
	{Spawn, Right}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{Right, Spawn}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{Right, Flip}:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{Flip, Right}:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{Flip, Left}:   {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{Left, Flip}:   {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{Left, Spawn}:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{Spawn, Left}:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// kickOffsets returns the ordered offsets to try for a rotation of the given
// piece between two orientations. The O piece never kicks.
func kickOffsets(p PieceType, from, to Orientation) []Point {
	switch p {
	case PieceO:
		return []Point{{0, 0}}
	case PieceI:
		return iKicks[kickKey{from, to}]
	default:
		return jlstzKicks[kickKey{from, to}]
	}
}
