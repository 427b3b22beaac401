package tetris

import "testing"

func TestBoardIsFree(t *testing.T) {
	b := NewBoard(10, 20, 2)

	if !b.IsFree(0, 0) {
		t.Error("empty in-bounds cell reported occupied")
	}
	if b.IsFree(-1, 5) || b.IsFree(10, 5) {
		t.Error("cell outside horizontal bounds reported free")
	}
	if b.IsFree(0, b.Rows()) {
		t.Error("cell below the floor reported free")
	}
	if !b.IsFree(0, -1) {
		t.Error("cell above the grid top reported occupied")
	}

	b.Commit([4]Point{{3, 5}, {4, 5}, {3, 6}, {4, 6}}, CellOf(PieceO))
	if b.IsFree(3, 5) {
		t.Error("committed cell reported free")
	}
}

func TestBoardCanPlace(t *testing.T) {
	b := NewBoard(10, 20, 2)
	b.Commit([4]Point{{0, 10}, {1, 10}, {2, 10}, {3, 10}}, CellOf(PieceI))

	if b.CanPlace([4]Point{{0, 10}, {0, 11}, {1, 11}, {2, 11}}) {
		t.Error("placement overlapping a locked cell accepted")
	}
	if !b.CanPlace([4]Point{{4, 10}, {5, 10}, {4, 11}, {5, 11}}) {
		t.Error("clear placement rejected")
	}
}

func TestBoardFullRows(t *testing.T) {
	b := NewBoard(4, 6, 2)
	for x := 0; x < 4; x++ {
		b.grid[7][x] = CellOf(PieceI)
		b.grid[5][x] = CellOf(PieceJ)
	}
	b.grid[6][0] = CellOf(PieceT) // partial row

	rows := b.FullRows()
	if len(rows) != 2 || rows[0] != 5 || rows[1] != 7 {
		t.Errorf("FullRows() = %v, want [5 7]", rows)
	}
}

func TestBoardClearRowsCompaction(t *testing.T) {
	b := NewBoard(4, 6, 2)

	// Stack: row 4 partial, rows 5 and 7 full, row 6 partial
	b.grid[4][1] = CellOf(PieceS)
	for x := 0; x < 4; x++ {
		b.grid[5][x] = CellOf(PieceJ)
		b.grid[7][x] = CellOf(PieceI)
	}
	b.grid[6][2] = CellOf(PieceT)

	b.ClearRows([]int{5, 7})

	// Surviving rows shift down preserving order: partial S row lands above
	// the partial T row at the bottom
	if b.grid[7][2] != CellOf(PieceT) {
		t.Errorf("bottom row cell = %v, want T", b.grid[7][2])
	}
	if b.grid[6][1] != CellOf(PieceS) {
		t.Errorf("second row cell = %v, want S", b.grid[6][1])
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			if b.grid[y][x] != CellEmpty {
				t.Errorf("cell (%d,%d) = %v after clear, want empty", x, y, b.grid[y][x])
			}
		}
	}
}

func TestBoardClearRowsNoOp(t *testing.T) {
	b := NewBoard(4, 6, 2)
	b.grid[7][0] = CellOf(PieceL)
	b.ClearRows(nil)
	if b.grid[7][0] != CellOf(PieceL) {
		t.Error("ClearRows(nil) mutated the board")
	}
}

func TestCellRoundTrip(t *testing.T) {
	for p := PieceType(0); p < PieceCount; p++ {
		got, ok := CellOf(p).Piece()
		if !ok || got != p {
			t.Errorf("CellOf(%v).Piece() = %v, %v", p, got, ok)
		}
	}
	if _, ok := CellEmpty.Piece(); ok {
		t.Error("empty cell reported a piece")
	}
}
