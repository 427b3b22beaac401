package tetris

import "testing"

func TestOrientationCycle(t *testing.T) {
	o := Spawn
	for i := 0; i < 4; i++ {
		o = o.CW()
	}
	if o != Spawn {
		t.Errorf("four CW rotations = %v, want %v", o, Spawn)
	}
	if Spawn.CW().CCW() != Spawn {
		t.Error("CW then CCW did not return to start")
	}
}

func TestPieceCellsDistinct(t *testing.T) {
	orientations := []Orientation{Spawn, Right, Flip, Left}
	for p := PieceType(0); p < PieceCount; p++ {
		for _, o := range orientations {
			cells := p.Cells(o)
			seen := make(map[Point]bool, 4)
			for _, c := range cells {
				if seen[c] {
					t.Errorf("%v %v: duplicate cell %+v", p, o, c)
				}
				seen[c] = true
				if c.X < 0 || c.Y < 0 || c.X >= p.BoxSize() || c.Y >= p.BoxSize() {
					t.Errorf("%v %v: cell %+v outside %dx%d box", p, o, c, p.BoxSize(), p.BoxSize())
				}
			}
		}
	}
}

func TestActivePieceTransforms(t *testing.T) {
	a := ActivePiece{Type: PieceT, Orientation: Spawn, X: 3, Y: 5}

	moved := a.Shifted(2, -1)
	if moved.X != 5 || moved.Y != 4 {
		t.Errorf("Shifted = (%d,%d), want (5,4)", moved.X, moved.Y)
	}
	if a.X != 3 || a.Y != 5 {
		t.Error("Shifted mutated the receiver")
	}

	rotated := a.Rotated(Right)
	if rotated.Orientation != Right || rotated.X != a.X || rotated.Y != a.Y {
		t.Errorf("Rotated = %+v, want orientation change only", rotated)
	}

	for _, c := range a.CellsAt() {
		if c.X < a.X || c.Y < a.Y {
			t.Errorf("CellsAt cell %+v outside the piece box at (%d,%d)", c, a.X, a.Y)
		}
	}
}
