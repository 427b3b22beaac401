package tetris

import (
	"github.com/tetrion/tetrion/internal/config"
	"github.com/tetrion/tetrion/internal/core"
	"github.com/tetrion/tetrion/internal/registry"
)

// Phase is the current stage of the piece lifecycle.
type Phase int8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// Mode selects the win condition.
type Mode string

const (
	// ModeMarathon is the endless mode; the session only ends on top-out.
	ModeMarathon Mode = "marathon"
	// ModeSprint ends the session once sprintGoalLines are cleared.
	ModeSprint Mode = "sprint"
)

// sprintGoalLines is the sprint mode target.
const sprintGoalLines = 40

// softDropFactor divides the gravity interval while soft drop is held.
// softDropLockFactor shortens the lock window the same way so a held soft
// drop settles pieces quickly.
const (
	softDropFactor      = 20
	softDropSpawnFactor = 10
	softDropLockFactor  = 20
)

// Game is one falling-block session: board, active piece, queues, timers
// and score. It is advanced exclusively by Step, one call per simulation
// tick; nothing blocks and every mutation is synchronous within a tick.
type Game struct {
	mode Mode
	opts Options

	tickRate int
	seed     int64
	tick     uint64

	board *Board
	bag   *Bag
	queue []PieceType

	active    ActivePiece
	hasActive bool

	// pendingSpawn overrides the queue for the next spawn (set by hold).
	pendingSpawn    *PieceType
	holdPiece       PieceType
	hasHold         bool
	holdLocked      bool
	skipSpawnDelay  bool
	spawnDeferred   bool
	lockResetsUsed  int
	softDropHeld    bool

	phase      Phase
	phaseTicks int

	scorer     Scorer
	score      int
	level      int
	startLevel int
	lines      int

	won      bool
	paused   bool
	gameOver bool

	events []core.Event

	screenW int
	screenH int
}

// Package-level selection applied at the next Reset, following the
// platform's pre-launch flag flow.
var (
	configPath         string
	selectedStartLevel int
)

// SetConfigPath sets the YAML config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the starting level for the next session. 0 keeps the
// configured default.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a marathon game with default options.
func New() *Game {
	return &Game{mode: ModeMarathon, opts: DefaultOptions()}
}

// NewSprint creates a 40-line sprint game with default options.
func NewSprint() *Game {
	return &Game{mode: ModeSprint, opts: DefaultOptions()}
}

// NewGame creates a game with explicit options, rejecting invalid ones
// before the session starts.
func NewGame(mode Mode, opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Game{mode: mode, opts: opts}, nil
}

func init() {
	registry.Register("marathon", func() registry.Game {
		return New()
	})
	registry.Register("sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Tetrion (40-Line Sprint)"
	}
	return "Tetrion (Marathon)"
}

// Reset initializes or restarts the session. Options come from the YAML
// config when one is configured; a config that fails to load or validate
// falls back to defaults (the CLI validates and reports before launch).
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if opts, err := optionsFromConfig(configPath); err == nil {
		g.opts = opts
	} else {
		g.opts = DefaultOptions()
	}
	if selectedStartLevel > 0 {
		g.opts.StartLevel = selectedStartLevel
		selectedStartLevel = 0
	}

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.tick = 0
	g.board = NewBoard(g.opts.Width, g.opts.Height, g.opts.BufferRows)
	g.bag = NewBag(g.seed, g.opts.Pieces)
	g.queue = g.queue[:0]
	for i := 0; i < g.opts.Preview; i++ {
		g.queue = append(g.queue, g.bag.Next())
	}

	g.hasActive = false
	g.pendingSpawn = nil
	g.hasHold = false
	g.holdLocked = false
	g.skipSpawnDelay = true // no pause before the very first piece
	g.spawnDeferred = false
	g.lockResetsUsed = 0
	g.softDropHeld = false

	g.phase = PhaseSpawning
	g.phaseTicks = 0

	g.scorer.Reset()
	g.score = 0
	g.startLevel = g.opts.StartLevel
	g.level = g.opts.StartLevel
	g.lines = 0
	g.won = false
	g.paused = false
	g.gameOver = false
	g.events = nil
}

// optionsFromConfig loads and validates options from the YAML config.
func optionsFromConfig(path string) (Options, error) {
	gc, err := config.Load(path)
	if err != nil {
		return Options{}, err
	}
	opts, err := OptionsFromConfig(gc)
	if err != nil {
		return Options{}, err
	}
	return opts, nil
}

// OptionsFromConfig maps the YAML schema onto engine options and validates
// them.
func OptionsFromConfig(gc config.GameConfig) (Options, error) {
	opts := DefaultOptions()
	opts.Width = gc.Board.Width
	opts.Height = gc.Board.Height
	opts.BufferRows = gc.Board.BufferRows
	opts.Preview = gc.Queue.Preview
	opts.StartLevel = gc.StartLevel
	opts.LockDelayMS = gc.Timing.LockDelayMS
	opts.MaxLockResets = gc.Timing.MaxLockResets
	opts.SpawnDelayMS = gc.Timing.SpawnDelayMS

	pieces, err := parsePieces(gc.Pieces)
	if err != nil {
		return Options{}, err
	}
	opts.Pieces = pieces

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// parsePieces maps config piece letters onto piece types.
func parsePieces(names []string) ([]PieceType, error) {
	byName := map[string]PieceType{
		"I": PieceI, "J": PieceJ, "L": PieceL, "O": PieceO,
		"S": PieceS, "T": PieceT, "Z": PieceZ,
	}
	pieces := make([]PieceType, 0, len(names))
	for _, n := range names {
		p, ok := byName[n]
		if !ok {
			return nil, &UnknownPieceError{Name: n}
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}

// UnknownPieceError reports a config piece name outside the known set.
type UnknownPieceError struct {
	Name string
}

func (e *UnknownPieceError) Error() string {
	return "tetris: unknown piece " + e.Name
}

func (e *UnknownPieceError) Unwrap() error {
	return ErrInvalidConfig
}

// Step advances the simulation by one tick: drain commands, advance the
// current phase's timer, evaluate transitions, in that fixed order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	g.tick++

	if in.Has(core.ActionRestart) && g.terminal() {
		// reseed so the restarted session draws a fresh sequence
		g.Reset(core.RuntimeConfig{
			Seed:     g.seed + int64(g.tick),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.terminal() {
		g.paused = !g.paused
	}

	if g.terminal() || g.paused {
		return g.result()
	}

	g.drainCommands(in)
	g.advancePhase()

	return g.result()
}

// drainCommands applies this tick's commands in a fixed order. Each command
// is validated against the board independently; a rejected command is a
// silent no-op and never disturbs the piece's current placement.
func (g *Game) drainCommands(in core.InputFrame) {
	if in.Has(core.ActionSoftDrop) {
		g.softDropHeld = true
	}
	if in.Has(core.ActionSoftDropUp) {
		g.softDropHeld = false
	}
	if in.Has(core.ActionHold) {
		g.tryHold()
	}
	if in.Has(core.ActionRotateCW) {
		g.tryRotate(true)
	}
	if in.Has(core.ActionRotateCCW) {
		g.tryRotate(false)
	}
	if in.Has(core.ActionMoveLeft) {
		g.tryShift(-1)
	}
	if in.Has(core.ActionMoveRight) {
		g.tryShift(1)
	}
	if in.Has(core.ActionHardDrop) {
		g.hardDrop()
	}
}

// advancePhase runs one tick of the current lifecycle phase.
func (g *Game) advancePhase() {
	switch g.phase {
	case PhaseSpawning:
		g.spawnStep()
	case PhaseFalling:
		g.fallStep()
	case PhaseLocking:
		g.lockStep()
	case PhaseClearing:
		g.clearStep()
	case PhaseGameOver:
	}
}

// terminal reports whether the session has ended.
func (g *Game) terminal() bool {
	return g.gameOver || g.won
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.terminal(),
		Paused:   g.paused,
	}
}

// --- piece supply ---

// nextPiece draws the next spawn type: the hold swap when one is pending,
// otherwise the head of the preview queue, refilled from the bag.
func (g *Game) nextPiece() PieceType {
	if g.pendingSpawn != nil {
		p := *g.pendingSpawn
		g.pendingSpawn = nil
		return p
	}
	p := g.queue[0]
	copy(g.queue, g.queue[1:])
	g.queue[len(g.queue)-1] = g.bag.Next()
	return p
}

// spawnPiece places a new piece at its canonical spawn transform: box
// horizontally centered, bottom rows inside the buffer zone.
func (g *Game) spawnPiece(t PieceType) ActivePiece {
	return ActivePiece{
		Type:        t,
		Orientation: Spawn,
		X:           (g.board.Width() - t.BoxSize()) / 2,
		Y:           g.board.BufferRows() - 2,
	}
}

// --- phase steps ---

// spawnStep waits out the spawn delay, then places the next piece. A spawn
// position blocked by locked cells ends the session; this is the one fatal
// condition and it is never retried.
func (g *Game) spawnStep() {
	if g.spawnDeferred {
		// a hold consumed this tick; the replacement arrives next update
		g.spawnDeferred = false
		return
	}
	g.phaseTicks++
	if !g.skipSpawnDelay && g.phaseTicks < g.spawnDelayTicks() {
		return
	}
	g.skipSpawnDelay = false

	piece := g.spawnPiece(g.nextPiece())
	if !g.board.CanPlace(piece.CellsAt()) {
		g.phase = PhaseGameOver
		g.gameOver = true
		g.events = append(g.events, core.Event{Kind: core.EventGameOver})
		return
	}

	g.active = piece
	g.hasActive = true
	g.lockResetsUsed = 0
	g.phase = PhaseFalling
	g.phaseTicks = 0
}

// fallStep applies gravity on the level's interval. A blocked step starts
// the lock window instead of erroring.
func (g *Game) fallStep() {
	g.phaseTicks++
	if g.phaseTicks < g.fallIntervalTicks() {
		return
	}
	g.phaseTicks = 0

	down := g.active.Shifted(0, 1)
	if !g.board.CanPlace(down.CellsAt()) {
		g.startLock()
		return
	}

	g.active = down
	if g.softDropHeld {
		g.score += softDropPointsPerRow
	}
	if !g.board.CanPlace(g.active.Shifted(0, 1).CellsAt()) {
		// landed exactly on the stack, open the lock window immediately
		g.startLock()
	}
}

// startLock enters the locking phase. A piece that already spent its lock
// resets gets no further grace time.
func (g *Game) startLock() {
	g.phase = PhaseLocking
	if g.lockResetsUsed >= g.opts.MaxLockResets {
		g.phaseTicks = g.lockWindowTicks()
	} else {
		g.phaseTicks = 0
	}
}

// lockStep counts down the lock-delay grace window. On expiry the piece is
// committed if it still cannot fall; a move that opened space below returns
// it to free fall instead.
func (g *Game) lockStep() {
	g.phaseTicks++
	if g.phaseTicks < g.lockWindowTicks() {
		return
	}
	if g.board.CanPlace(g.active.Shifted(0, 1).CellsAt()) {
		g.phase = PhaseFalling
		g.phaseTicks = 0
		return
	}
	g.lockPiece()
}

// lockPiece commits the active piece and moves to line-clear resolution.
// Locking a piece entirely above the visible playfield ends the session.
func (g *Game) lockPiece() {
	cells := g.active.CellsAt()
	g.board.Commit(cells, CellOf(g.active.Type))
	g.hasActive = false
	g.holdLocked = false
	g.events = append(g.events, core.Event{Kind: core.EventPieceLocked})

	aboveSkyline := true
	for _, c := range cells {
		if c.Y >= g.board.BufferRows() {
			aboveSkyline = false
			break
		}
	}
	if aboveSkyline {
		g.phase = PhaseGameOver
		g.gameOver = true
		g.events = append(g.events, core.Event{Kind: core.EventGameOver})
		return
	}

	g.phase = PhaseClearing
	g.phaseTicks = 0
}

// clearStep resolves full rows, scores the (single, combined) clear event
// and hands control back to the spawner.
func (g *Game) clearStep() {
	rows := g.board.FullRows()
	ev := ClearEvent{
		Rows:      rows,
		Lines:     len(rows),
		Difficult: len(rows) >= 4,
	}
	if ev.Lines > 0 {
		g.board.ClearRows(rows)
		g.events = append(g.events, core.Event{
			Kind:      core.EventLinesCleared,
			Lines:     ev.Lines,
			Difficult: ev.Difficult,
		})
	}

	g.score += g.scorer.Apply(ev, g.level)
	g.lines += ev.Lines

	if lineLevel := g.startLevel + g.lines/linesPerLevel; lineLevel > g.level {
		g.level = lineLevel
		g.events = append(g.events, core.Event{Kind: core.EventLevelUp, Level: g.level})
	}

	if g.mode == ModeSprint && g.lines >= sprintGoalLines {
		g.won = true
		g.phase = PhaseGameOver
		g.events = append(g.events, core.Event{Kind: core.EventGameOver})
		return
	}

	g.phase = PhaseSpawning
	g.phaseTicks = 0
}

// --- player commands ---

// tryShift moves the active piece horizontally if the target cells are free.
func (g *Game) tryShift(dx int) {
	if !g.hasActive {
		return
	}
	cand := g.active.Shifted(dx, 0)
	if !g.board.CanPlace(cand.CellsAt()) {
		return
	}
	g.applyMove(cand)
}

// tryRotate rotates the active piece, resolving collisions through the kick
// table. The first offset that fits wins; if none fit the piece keeps its
// prior orientation and position.
func (g *Game) tryRotate(clockwise bool) {
	if !g.hasActive {
		return
	}
	from := g.active.Orientation
	to := from.CW()
	if !clockwise {
		to = from.CCW()
	}

	for _, off := range kickOffsets(g.active.Type, from, to) {
		cand := g.active.Rotated(to).Shifted(off.X, off.Y)
		if g.board.CanPlace(cand.CellsAt()) {
			g.applyMove(cand)
			return
		}
	}
}

// applyMove commits a validated move. While the lock window is open each
// successful move refreshes it, up to the per-piece reset cap; past the cap
// the piece locks as soon as the window expires.
func (g *Game) applyMove(cand ActivePiece) {
	if g.phase == PhaseLocking {
		if g.lockResetsUsed >= g.opts.MaxLockResets {
			g.phaseTicks = g.lockWindowTicks()
			return
		}
		g.active = cand
		g.lockResetsUsed++
		if g.lockResetsUsed < g.opts.MaxLockResets {
			g.phaseTicks = 0
		} else {
			g.phaseTicks = g.lockWindowTicks()
		}
		return
	}
	g.active = cand
}

// hardDrop drops the active piece onto the stack and locks it on this same
// tick, independent of the fall timer.
func (g *Game) hardDrop() {
	if !g.hasActive || (g.phase != PhaseFalling && g.phase != PhaseLocking) {
		return
	}
	dist := g.dropDistance()
	g.active = g.active.Shifted(0, dist)
	g.score += dist * hardDropPointsPerRow
	g.skipSpawnDelay = true
	g.lockPiece()
}

// tryHold sets the active piece aside, activating the previously held piece
// or drawing a fresh one. Allowed at most once between successive locks.
// The replacement spawns on the tick after the hold, not on the hold tick.
func (g *Game) tryHold() {
	if !g.hasActive || g.holdLocked {
		return
	}
	if g.phase != PhaseFalling && g.phase != PhaseLocking {
		return
	}

	held := g.active.Type
	if g.hasHold {
		swap := g.holdPiece
		g.pendingSpawn = &swap
	}
	g.holdPiece = held
	g.hasHold = true
	g.holdLocked = true
	g.hasActive = false
	g.skipSpawnDelay = true
	g.spawnDeferred = true
	g.phase = PhaseSpawning
	g.phaseTicks = 0
}

// dropDistance returns how many rows the active piece can fall before
// resting on the stack or the floor.
func (g *Game) dropDistance() int {
	dist := 0
	for g.board.CanPlace(g.active.Shifted(0, dist+1).CellsAt()) {
		dist++
	}
	return dist
}

// GhostY returns the row the active piece would land on if hard-dropped.
func (g *Game) GhostY() int {
	return g.active.Y + g.dropDistance()
}

// --- timing ---

// fallIntervalTicks is the gravity interval for the current level, divided
// while soft drop is held. Never below one tick.
func (g *Game) fallIntervalTicks() int {
	t := gravityTicks(g.level, g.tickRate)
	if g.softDropHeld {
		t /= softDropFactor
	}
	if t < 1 {
		t = 1
	}
	return t
}

// lockWindowTicks is the lock-delay window, shortened while soft drop is
// held so held drops settle without the full grace period.
func (g *Game) lockWindowTicks() int {
	t := g.opts.LockDelayMS * g.tickRate / 1000
	if g.softDropHeld {
		t /= softDropLockFactor
	}
	if t < 1 {
		t = 1
	}
	return t
}

// spawnDelayTicks is the pause before the next piece appears: the gravity
// interval capped by the configured spawn delay, shortened under soft drop.
func (g *Game) spawnDelayTicks() int {
	t := gravityTicks(g.level, g.tickRate)
	if g.softDropHeld {
		t /= softDropSpawnFactor
	}
	cap := g.opts.SpawnDelayMS * g.tickRate / 1000
	if t > cap {
		t = cap
	}
	if t < 1 {
		t = 1
	}
	return t
}
