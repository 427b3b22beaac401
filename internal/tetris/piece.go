package tetris

import "github.com/tetrion/tetrion/internal/core"

// PieceType identifies one of the seven tetromino shapes.
type PieceType int8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ

	// PieceCount is the number of distinct shapes.
	PieceCount = 7
)

// Orientation is one of the four discrete rotation states.
type Orientation int8

const (
	Spawn Orientation = iota // spawn state
	Right                    // one clockwise rotation from spawn
	Flip                     // two rotations from spawn
	Left                     // one counter-clockwise rotation from spawn
)

// CW returns the orientation after a clockwise rotation.
func (o Orientation) CW() Orientation {
	return (o + 1) % 4
}

// CCW returns the orientation after a counter-clockwise rotation.
func (o Orientation) CCW() Orientation {
	return (o + 3) % 4
}

// Point is a grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// String returns the canonical one-letter name of the piece.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the piece's display color tag.
func (p PieceType) Color() core.Color {
	switch p {
	case PieceI:
		return core.ColorCyan
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	case PieceO:
		return core.ColorYellow
	case PieceS:
		return core.ColorGreen
	case PieceT:
		return core.ColorMagenta
	case PieceZ:
		return core.ColorRed
	default:
		return core.ColorGray
	}
}

// boxSize is the side length of each piece's rotation bounding box.
var boxSize = [PieceCount]int{
	PieceI: 4,
	PieceJ: 3,
	PieceL: 3,
	PieceO: 2,
	PieceS: 3,
	PieceT: 3,
	PieceZ: 3,
}

// shapes maps piece type and orientation to the four occupied cells,
// relative to the top-left corner of the piece's bounding box.
// Layouts follow the standard rotation system; rows grow downward.
var shapes = [PieceCount][4][4]Point{
	PieceI: {
		Spawn: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		Right: {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		Flip:  {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		Left:  {{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	PieceJ: {
		Spawn: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		Right: {{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		Flip:  {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		Left:  {{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	PieceL: {
		Spawn: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		Right: {{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		Flip:  {{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		Left:  {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	PieceO: {
		Spawn: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Right: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Flip:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Left:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	PieceS: {
		Spawn: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		Right: {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		Flip:  {{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		Left:  {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceT: {
		Spawn: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		Right: {{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		Flip:  {{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		Left:  {{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceZ: {
		Spawn: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		Right: {{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		Flip:  {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		Left:  {{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
}

// Cells returns the four occupied box-relative cells for an orientation.
func (p PieceType) Cells(o Orientation) [4]Point {
	return shapes[p][o]
}

// BoxSize returns the side length of the piece's rotation bounding box.
func (p PieceType) BoxSize() int {
	return boxSize[p]
}

// ActivePiece is the piece currently falling on a board.
// The anchor is the top-left corner of the rotation bounding box.
type ActivePiece struct {
	Type        PieceType
	Orientation Orientation
	X, Y        int
}

// CellsAt returns the four absolute board cells the piece occupies.
func (a ActivePiece) CellsAt() [4]Point {
	var out [4]Point
	for i, c := range a.Type.Cells(a.Orientation) {
		out[i] = Point{X: a.X + c.X, Y: a.Y + c.Y}
	}
	return out
}

// Shifted returns a copy of the piece moved by (dx, dy).
func (a ActivePiece) Shifted(dx, dy int) ActivePiece {
	a.X += dx
	a.Y += dy
	return a
}

// Rotated returns a copy of the piece in the given orientation at the same
// anchor. The caller resolves collisions via the kick table.
func (a ActivePiece) Rotated(o Orientation) ActivePiece {
	a.Orientation = o
	return a
}
