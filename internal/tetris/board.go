package tetris

// Cell is the content of one board cell: zero when empty, otherwise the
// locking piece's type plus one. The +1 keeps the zero value meaning empty.
type Cell int8

// CellEmpty is an unoccupied cell.
const CellEmpty Cell = 0

// CellOf returns the cell tag for a locked piece of the given type.
func CellOf(p PieceType) Cell {
	return Cell(p) + 1
}

// Piece returns the piece type stored in an occupied cell.
func (c Cell) Piece() (PieceType, bool) {
	if c == CellEmpty {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Board is the playfield grid. Row 0 is the top of the buffer zone; rows
// grow downward. The buffer rows above the visible playfield let pieces
// spawn and rotate partially off-screen.
type Board struct {
	width  int
	height int // visible rows
	buffer int // hidden rows above the visible playfield
	grid   [][]Cell
}

// NewBoard creates an empty board with the given visible dimensions and
// buffer row count.
func NewBoard(width, height, buffer int) *Board {
	rows := height + buffer
	grid := make([][]Cell, rows)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}
	return &Board{
		width:  width,
		height: height,
		buffer: buffer,
		grid:   grid,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// VisibleHeight returns the number of visible rows.
func (b *Board) VisibleHeight() int {
	return b.height
}

// BufferRows returns the number of hidden rows above the visible playfield.
func (b *Board) BufferRows() int {
	return b.buffer
}

// Rows returns the total number of grid rows, buffer included.
func (b *Board) Rows() int {
	return b.height + b.buffer
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.Rows() {
		return CellEmpty
	}
	return b.grid[y][x]
}

// IsFree reports whether a piece cell may occupy (x, y): false outside the
// horizontal bounds, false below the floor, false when occupied. Cells above
// the grid top are free so pieces can protrude past the buffer during
// rotation.
func (b *Board) IsFree(x, y int) bool {
	if x < 0 || x >= b.width {
		return false
	}
	if y >= b.Rows() {
		return false
	}
	if y < 0 {
		return true
	}
	return b.grid[y][x] == CellEmpty
}

// CanPlace reports whether every given absolute cell is free.
func (b *Board) CanPlace(cells [4]Point) bool {
	for _, c := range cells {
		if !b.IsFree(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Commit marks the given cells occupied. The caller must have validated the
// placement via CanPlace; no collision check is performed here. Cells above
// the grid top are dropped.
func (b *Board) Commit(cells [4]Point, cell Cell) {
	for _, c := range cells {
		if c.Y < 0 {
			continue
		}
		b.grid[c.Y][c.X] = cell
	}
}

// FullRows returns the indices of completely occupied rows, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y := 0; y < b.Rows(); y++ {
		filled := true
		for x := 0; x < b.width; x++ {
			if b.grid[y][x] == CellEmpty {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes the given rows and shifts everything above them down,
// inserting empty rows at the top. The relative order of surviving rows is
// preserved. Implemented as a single bottom-up compaction pass rather than
// shifting once per cleared row.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}

	dst := b.Rows() - 1
	for src := b.Rows() - 1; src >= 0; src-- {
		if cleared[src] {
			continue
		}
		if dst != src {
			copy(b.grid[dst], b.grid[src])
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		for x := range b.grid[dst] {
			b.grid[dst][x] = CellEmpty
		}
	}
}

// OccupiedAbove reports whether any buffer row holds a locked cell. The HUD
// uses it to flag sessions that are close to topping out.
func (b *Board) OccupiedAbove() bool {
	for y := 0; y < b.buffer; y++ {
		for x := 0; x < b.width; x++ {
			if b.grid[y][x] != CellEmpty {
				return true
			}
		}
	}
	return false
}
