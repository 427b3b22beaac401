package tetris

import (
	"testing"

	"github.com/tetrion/tetrion/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// stepEmpty advances the game n ticks with no input and returns all events
// emitted along the way.
func stepEmpty(g *Game, n int) []core.Event {
	var events []core.Event
	input := core.NewInputFrame()
	for i := 0; i < n; i++ {
		res := g.Step(input)
		events = append(events, res.Events...)
	}
	return events
}

func TestSpawnPosition(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// First tick spawns without delay
	stepEmpty(g, 1)

	if !g.hasActive {
		t.Fatal("expected an active piece after the first tick")
	}
	wantX := (g.board.Width() - g.active.Type.BoxSize()) / 2
	if g.active.X != wantX {
		t.Errorf("spawn X = %d, want %d", g.active.X, wantX)
	}
	if g.active.Y != g.board.BufferRows()-2 {
		t.Errorf("spawn Y = %d, want %d", g.active.Y, g.board.BufferRows()-2)
	}
	if g.active.Orientation != Spawn {
		t.Errorf("spawn orientation = %v, want %v", g.active.Orientation, Spawn)
	}
}

func TestGravityAdvancesPiece(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	stepEmpty(g, 1)

	startY := g.active.Y

	// Level 0 gravity is 1000ms = 60 ticks at 60fps
	stepEmpty(g, 59)
	if g.active.Y != startY {
		t.Errorf("piece fell after %d ticks, gravity interval too short", 59)
	}
	stepEmpty(g, 1)
	if g.active.Y != startY+1 {
		t.Errorf("Y = %d after one gravity interval, want %d", g.active.Y, startY+1)
	}
}

func TestSoftDropSpeedsGravity(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	stepEmpty(g, 1)

	startY := g.active.Y

	input := core.NewInputFrame()
	input.Set(core.ActionSoftDrop)
	g.Step(input)

	// Soft drop divides the 60-tick interval by 20
	stepEmpty(g, 2)
	if g.active.Y != startY+1 {
		t.Errorf("Y = %d after soft drop interval, want %d", g.active.Y, startY+1)
	}
	if g.score != softDropPointsPerRow {
		t.Errorf("score = %d after one soft-dropped row, want %d", g.score, softDropPointsPerRow)
	}
}

func TestHardDropLocksSameTick(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	stepEmpty(g, 1)

	dist := g.dropDistance()

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	res := g.Step(input)

	locked := false
	for _, ev := range res.Events {
		if ev.Kind == core.EventPieceLocked {
			locked = true
		}
	}
	if !locked {
		t.Error("hard drop did not lock on the issuing tick")
	}
	if g.score != dist*hardDropPointsPerRow {
		t.Errorf("score = %d, want %d", g.score, dist*hardDropPointsPerRow)
	}
	if g.hasActive {
		t.Error("active piece survived a hard drop")
	}
}

func TestRejectedMoveKeepsPlacement(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	stepEmpty(g, 1)

	// Walk the piece into the left wall, then push once more
	input := core.NewInputFrame()
	input.Set(core.ActionMoveLeft)
	for i := 0; i < g.board.Width(); i++ {
		g.Step(input)
	}
	atWall := g.active
	g.Step(input)
	if g.active != atWall {
		t.Errorf("piece moved after rejected shift: %+v, want %+v", g.active, atWall)
	}
}

func TestWallKickRotation(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	stepEmpty(g, 1)

	// A T piece facing right hugging the left wall cannot rotate back to
	// spawn in place; the kick table shifts it one column right.
	g.active = ActivePiece{Type: PieceT, Orientation: Right, X: -1, Y: 5}

	input := core.NewInputFrame()
	input.Set(core.ActionRotateCCW)
	g.Step(input)

	if g.active.Orientation != Spawn {
		t.Fatalf("orientation = %v, want %v", g.active.Orientation, Spawn)
	}
	if g.active.X != 0 {
		t.Errorf("X = %d after wall kick, want 0", g.active.X)
	}
}

func TestRotationAllKicksBlockedIsNoOp(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	stepEmpty(g, 1)

	// Box the piece in completely so no kick offset can fit
	g.active = ActivePiece{Type: PieceT, Orientation: Spawn, X: 3, Y: 5}
	for y := 0; y < g.board.Rows(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			g.board.grid[y][x] = CellOf(PieceZ)
		}
	}
	for _, c := range g.active.CellsAt() {
		g.board.grid[c.Y][c.X] = CellEmpty
	}
	before := g.active

	input := core.NewInputFrame()
	input.Set(core.ActionRotateCW)
	g.Step(input)

	if g.active != before {
		t.Errorf("piece changed on fully blocked rotation: %+v, want %+v", g.active, before)
	}
}

func TestHoldOncePerPiece(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	stepEmpty(g, 1)

	first := g.active.Type

	input := core.NewInputFrame()
	input.Set(core.ActionHold)
	g.Step(input)

	if !g.hasHold || g.holdPiece != first {
		t.Fatalf("holdPiece = %v, want %v", g.holdPiece, first)
	}
	if g.hasActive {
		t.Fatal("active piece survived hold")
	}
	if g.phase != PhaseSpawning {
		t.Fatalf("phase = %v after hold, want %v", g.phase, PhaseSpawning)
	}

	// Next tick spawns the replacement immediately
	stepEmpty(g, 1)
	if !g.hasActive {
		t.Fatal("no piece spawned after hold")
	}
	second := g.active.Type

	// A second hold before the next lock is rejected
	g.Step(input)
	if g.holdPiece != first {
		t.Errorf("holdPiece = %v after rejected hold, want %v", g.holdPiece, first)
	}
	if !g.hasActive || g.active.Type != second {
		t.Error("rejected hold disturbed the active piece")
	}
}

func TestHoldSwapUnlocksAfterLock(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	stepEmpty(g, 1)

	first := g.active.Type

	hold := core.NewInputFrame()
	hold.Set(core.ActionHold)
	g.Step(hold)
	stepEmpty(g, 1)

	// Lock the replacement, then hold again: the first piece comes back
	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	g.Step(drop)
	stepEmpty(g, 2) // clear resolution + respawn

	if !g.hasActive {
		t.Fatal("no piece spawned after lock")
	}
	swapped := g.active.Type
	g.Step(hold)
	stepEmpty(g, 1)

	if g.active.Type != first {
		t.Errorf("active after swap = %v, want held piece %v", g.active.Type, first)
	}
	if g.holdPiece != swapped {
		t.Errorf("holdPiece after swap = %v, want %v", g.holdPiece, swapped)
	}
}

func TestLockResetCap(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))
	stepEmpty(g, 1)

	// Rest the piece on the floor with the lock window open
	g.active = g.active.Shifted(0, g.dropDistance())
	g.phase = PhaseLocking
	g.phaseTicks = 0

	// Wiggling forever must not stall the lock: after the reset budget is
	// spent the piece locks as soon as the window expires.
	left := core.NewInputFrame()
	left.Set(core.ActionMoveLeft)
	right := core.NewInputFrame()
	right.Set(core.ActionMoveRight)

	budget := g.opts.MaxLockResets + g.lockWindowTicks() + 5
	locked := false
	for i := 0; i < budget; i++ {
		in := left
		if i%2 == 1 {
			in = right
		}
		res := g.Step(in)
		for _, ev := range res.Events {
			if ev.Kind == core.EventPieceLocked {
				locked = true
			}
		}
		if locked {
			break
		}
	}
	if !locked {
		t.Errorf("piece did not lock within %d ticks of wiggling", budget)
	}
}

func TestLockCycleEndToEnd(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))

	// Run long enough for several pieces to fall and lock under gravity
	events := stepEmpty(g, 6000)

	locks := 0
	for _, ev := range events {
		if ev.Kind == core.EventPieceLocked {
			locks++
		}
	}
	if locks < 2 {
		t.Errorf("locked %d pieces in 6000 ticks, want at least 2", locks)
	}

	occupied := false
	for y := 0; y < g.board.Rows(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if g.board.At(x, y) != CellEmpty {
				occupied = true
			}
		}
	}
	if !occupied {
		t.Error("board empty after locked pieces")
	}
}

func TestBlockOutEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))

	// Fill the spawn zone so no piece can be placed
	for y := 0; y < 4; y++ {
		for x := 0; x < g.board.Width(); x++ {
			g.board.grid[y][x] = CellOf(PieceZ)
		}
	}

	events := stepEmpty(g, 1)
	over := false
	for _, ev := range events {
		if ev.Kind == core.EventGameOver {
			over = true
		}
	}
	if !over {
		t.Fatal("blocked spawn did not emit a game over event")
	}
	if !g.State().GameOver {
		t.Fatal("State().GameOver = false after block out")
	}

	// A finished session must not mutate further
	before := g.Snapshot()
	stepEmpty(g, 50)
	after := g.Snapshot()
	before.Tick = 0
	after.Tick = 0
	if before.Hash() != after.Hash() {
		t.Error("game state changed after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	for y := 0; y < 4; y++ {
		for x := 0; x < g.board.Width(); x++ {
			g.board.grid[y][x] = CellOf(PieceZ)
		}
	}
	stepEmpty(g, 1)
	if !g.State().GameOver {
		t.Fatal("setup: expected game over")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.State().GameOver {
		t.Error("GameOver still set after restart")
	}
	if g.score != 0 || g.lines != 0 {
		t.Errorf("score/lines = %d/%d after restart, want 0/0", g.score, g.lines)
	}
	for y := 0; y < g.board.Rows(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if g.board.At(x, y) != CellEmpty {
				t.Fatalf("board cell (%d,%d) occupied after restart", x, y)
			}
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))
	stepEmpty(g, 1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("Paused = false after pause input")
	}

	before := g.active
	stepEmpty(g, 300)
	if g.active != before {
		t.Error("piece moved while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Paused = true after unpause input")
	}
}

func TestLineClearScoresAndLevels(t *testing.T) {
	g := New()
	g.Reset(testConfig(2))
	stepEmpty(g, 1)

	// Hand the clear phase a prepared single-line clear at 9 lines so the
	// clear crosses the level threshold.
	bottom := g.board.Rows() - 1
	for x := 0; x < g.board.Width(); x++ {
		g.board.grid[bottom][x] = CellOf(PieceI)
	}
	g.hasActive = false
	g.lines = 9
	g.score = 0
	g.phase = PhaseClearing
	g.phaseTicks = 0

	events := stepEmpty(g, 1)

	if g.lines != 10 {
		t.Errorf("lines = %d, want 10", g.lines)
	}
	if g.level != 1 {
		t.Errorf("level = %d, want 1", g.level)
	}
	if g.score != singlePoints {
		t.Errorf("score = %d, want %d", g.score, singlePoints)
	}

	var cleared, leveled bool
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLinesCleared:
			cleared = true
			if ev.Lines != 1 {
				t.Errorf("event lines = %d, want 1", ev.Lines)
			}
		case core.EventLevelUp:
			leveled = true
			if ev.Level != 1 {
				t.Errorf("level up event level = %d, want 1", ev.Level)
			}
		}
	}
	if !cleared || !leveled {
		t.Errorf("events cleared=%v leveled=%v, want both", cleared, leveled)
	}

	for x := 0; x < g.board.Width(); x++ {
		if g.board.At(x, bottom) != CellEmpty {
			t.Fatalf("bottom row cell %d still occupied after clear", x)
		}
	}
}

func TestScriptedClearEndToEnd(t *testing.T) {
	// Restricting the piece set to I makes the supply deterministic for any
	// seed, so the whole clear can be driven through commands alone.
	opts := DefaultOptions()
	opts.Pieces = []PieceType{PieceI}
	g, err := NewGame(ModeMarathon, opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Reset(testConfig(6))

	var events []core.Event
	press := func(a core.Action) {
		in := core.NewInputFrame()
		in.Set(a)
		events = append(events, g.Step(in).Events...)
	}
	runPiece := func(actions ...core.Action) {
		events = append(events, stepEmpty(g, 1)...) // spawn
		for _, a := range actions {
			press(a)
		}
	}

	// Two flat pieces cover columns 0-7 of the bottom row, a vertical one
	// fills column 8, leaving a one-cell gap at column 9
	runPiece(core.ActionMoveLeft, core.ActionMoveLeft, core.ActionMoveLeft, core.ActionHardDrop)
	runPiece(core.ActionMoveRight, core.ActionHardDrop)
	runPiece(core.ActionRotateCW, core.ActionMoveRight, core.ActionMoveRight, core.ActionMoveRight, core.ActionHardDrop)

	bottom := g.board.Rows() - 1
	for x := 0; x < g.board.Width()-1; x++ {
		if g.board.At(x, bottom) == CellEmpty {
			t.Fatalf("bottom row cell %d empty before the final drop", x)
		}
	}
	if g.board.At(g.board.Width()-1, bottom) != CellEmpty {
		t.Fatal("bottom row gap already filled before the final drop")
	}
	if rows := g.board.FullRows(); len(rows) != 0 {
		t.Fatalf("FullRows() = %v before the final drop, want none", rows)
	}

	// A vertical drop into the gap completes exactly the bottom row
	runPiece(core.ActionRotateCW, core.ActionMoveRight, core.ActionMoveRight,
		core.ActionMoveRight, core.ActionMoveRight, core.ActionHardDrop)

	if g.lines != 1 {
		t.Errorf("lines = %d, want 1", g.lines)
	}
	if g.level != 0 {
		t.Errorf("level = %d, want 0", g.level)
	}

	clears := 0
	for _, ev := range events {
		if ev.Kind == core.EventLinesCleared {
			clears++
			if ev.Lines != 1 {
				t.Errorf("clear event lines = %d, want 1", ev.Lines)
			}
			if ev.Difficult {
				t.Error("single clear flagged difficult")
			}
		}
	}
	if clears != 1 {
		t.Errorf("saw %d clear events, want 1", clears)
	}

	// Four hard drops at 2 points per row plus a single at level 0: the two
	// flat pieces fall 20 rows, the two vertical ones 18
	wantScore := 2*20*hardDropPointsPerRow + 2*18*hardDropPointsPerRow + singlePoints
	if g.score != wantScore {
		t.Errorf("score = %d, want %d", g.score, wantScore)
	}

	// Compaction moved the vertical columns' remainders onto the floor; the
	// flat pieces were consumed entirely by the cleared row
	for x := 0; x < g.board.Width()-2; x++ {
		if g.board.At(x, bottom) != CellEmpty {
			t.Errorf("column %d occupied after clear", x)
		}
	}
	for _, x := range []int{g.board.Width() - 2, g.board.Width() - 1} {
		if g.board.At(x, bottom) == CellEmpty {
			t.Errorf("column %d empty after compaction", x)
		}
	}
}

func TestSprintWinAtGoal(t *testing.T) {
	g := NewSprint()
	g.Reset(testConfig(2))
	stepEmpty(g, 1)

	bottom := g.board.Rows() - 1
	for x := 0; x < g.board.Width(); x++ {
		g.board.grid[bottom][x] = CellOf(PieceI)
	}
	g.hasActive = false
	g.lines = sprintGoalLines - 1
	g.phase = PhaseClearing
	g.phaseTicks = 0

	events := stepEmpty(g, 1)

	if !g.won {
		t.Fatal("sprint not won at the line goal")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false on sprint win")
	}
	over := false
	for _, ev := range events {
		if ev.Kind == core.EventGameOver {
			over = true
		}
	}
	if !over {
		t.Error("sprint win did not emit a game over event")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		input.Clear()
		switch {
		case i%120 == 10:
			input.Set(core.ActionMoveLeft)
		case i%120 == 40:
			input.Set(core.ActionRotateCW)
		case i%120 == 70:
			input.Set(core.ActionMoveRight)
		case i%120 == 100:
			input.Set(core.ActionHardDrop)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("snapshot hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
}

func TestSeedsDiverge(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(1))
	g2 := New()
	g2.Reset(testConfig(2))

	// Draw the full preview plus a few bags from each and compare sequences
	var s1, s2 []PieceType
	for i := 0; i < 21; i++ {
		s1 = append(s1, g1.bag.Next())
		s2 = append(s2, g2.bag.Next())
	}
	same := true
	for i := range s1 {
		if s1[i] != s2[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical piece sequences")
	}
}

func TestGhostMatchesHardDrop(t *testing.T) {
	g := New()
	g.Reset(testConfig(4))
	stepEmpty(g, 1)

	ghostY := g.GhostY()
	dist := g.dropDistance()
	if ghostY != g.active.Y+dist {
		t.Errorf("GhostY = %d, want %d", ghostY, g.active.Y+dist)
	}
}

func TestOptionsValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"narrow board", func(o *Options) { o.Width = 3 }},
		{"wide flat board", func(o *Options) { o.Width = 12; o.Height = 10 }},
		{"no buffer", func(o *Options) { o.BufferRows = 1 }},
		{"empty pieces", func(o *Options) { o.Pieces = nil }},
		{"negative start level", func(o *Options) { o.StartLevel = -1 }},
		{"zero lock delay", func(o *Options) { o.LockDelayMS = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)
			if _, err := NewGame(ModeMarathon, opts); err == nil {
				t.Error("NewGame accepted invalid options")
			}
		})
	}

	if _, err := NewGame(ModeMarathon, DefaultOptions()); err != nil {
		t.Errorf("NewGame rejected default options: %v", err)
	}
}
