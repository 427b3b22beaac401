package tetris

import (
	"fmt"

	"github.com/tetrion/tetrion/internal/core"
)

// Visual characters for rendering. Board cells are two columns wide so the
// playfield looks roughly square in a terminal.
const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = ' '
	wellRune  = '·'
)

// Render draws the full frame: HUD, well, active and ghost pieces, hold and
// next panels, and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	boardW := g.board.Width()*2 + 2
	boardH := g.board.VisibleHeight() + 2
	if dst.Width() < boardW+14 || dst.Height() < boardH+2 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	boardX := (dst.Width() - boardW - 12) / 2
	boardY := 2

	g.renderWell(dst, boardX, boardY)
	if g.hasActive {
		g.renderGhost(dst, boardX, boardY)
		g.renderActive(dst, boardX, boardY)
	}
	g.renderPanels(dst, boardX+boardW+2, boardY)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeSprint {
		remaining := sprintGoalLines - g.lines
		if remaining < 0 {
			remaining = 0
		}
		hud = fmt.Sprintf(" Tetrion (Sprint) — Score: %d  Lines left: %d", g.score, remaining)
	} else {
		hud = fmt.Sprintf(" Tetrion — Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines)
	}

	dst.DrawText(0, 0, hud)
	if g.board.OccupiedAbove() {
		dst.DrawText(len([]rune(hud))+2, 0, "DANGER")
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the playfield border and the locked stack.
func (g *Game) renderWell(dst *core.Screen, boardX, boardY int) {
	w := g.board.Width()
	h := g.board.VisibleHeight()
	buffer := g.board.BufferRows()

	dst.DrawBox(boardX, boardY, w*2+2, h+2)

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			sx := boardX + 1 + col*2
			sy := boardY + 1 + row
			cell := g.board.At(col, buffer+row)
			if p, ok := cell.Piece(); ok {
				dst.SetColored(sx, sy, blockRune, p.Color())
				dst.SetColored(sx+1, sy, blockRune, p.Color())
			} else if col%2 == 0 {
				dst.SetColored(sx, sy, wellRune, core.ColorGray)
			}
		}
	}
}

// renderActive draws the falling piece. Cells still inside the buffer zone
// are not drawn.
func (g *Game) renderActive(dst *core.Screen, boardX, boardY int) {
	buffer := g.board.BufferRows()
	color := g.active.Type.Color()
	for _, c := range g.active.CellsAt() {
		row := c.Y - buffer
		if row < 0 {
			continue
		}
		sx := boardX + 1 + c.X*2
		sy := boardY + 1 + row
		dst.SetColored(sx, sy, blockRune, color)
		dst.SetColored(sx+1, sy, blockRune, color)
	}
}

// renderGhost draws the landing preview at the hard-drop position.
func (g *Game) renderGhost(dst *core.Screen, boardX, boardY int) {
	ghost := g.active.Shifted(0, g.dropDistance())
	if ghost.Y == g.active.Y {
		return
	}
	buffer := g.board.BufferRows()
	for _, c := range ghost.CellsAt() {
		row := c.Y - buffer
		if row < 0 {
			continue
		}
		sx := boardX + 1 + c.X*2
		sy := boardY + 1 + row
		dst.SetColored(sx, sy, ghostRune, core.ColorGray)
		dst.SetColored(sx+1, sy, ghostRune, core.ColorGray)
	}
}

// renderPanels draws the hold box and the next-piece queue to the right of
// the well.
func (g *Game) renderPanels(dst *core.Screen, panelX, panelY int) {
	dst.DrawText(panelX, panelY, "HOLD")
	dst.DrawBox(panelX, panelY+1, 10, 4)
	if g.hasHold {
		g.renderMini(dst, panelX+1, panelY+2, g.holdPiece)
	}

	nextY := panelY + 6
	dst.DrawText(panelX, nextY, "NEXT")
	shown := len(g.queue)
	if shown > 3 {
		shown = 3
	}
	for i := 0; i < shown; i++ {
		dst.DrawBox(panelX, nextY+1+i*4, 10, 4)
		g.renderMini(dst, panelX+1, nextY+2+i*4, g.queue[i])
	}
}

// renderMini draws a piece in its spawn orientation inside a panel box.
func (g *Game) renderMini(dst *core.Screen, x, y int, t PieceType) {
	color := t.Color()
	for _, c := range t.Cells(Spawn) {
		row := c.Y
		if t.BoxSize() == 4 {
			row-- // the I piece occupies box row 1, pull it up
		}
		if row < 0 || row > 1 {
			continue
		}
		dst.SetColored(x+c.X*2, y+row, blockRune, color)
		dst.SetColored(x+c.X*2+1, y+row, blockRune, color)
	}
}

// renderOverlay draws a centered message box over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	for y := boxY + 1; y < boxY+boxH-1 && y < h; y++ {
		for x := boxX + 1; x < boxX+boxW-1 && x < w; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
