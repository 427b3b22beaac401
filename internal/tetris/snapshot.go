package tetris

// Snapshot contains the complete game state for replay/save and determinism
// testing. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Mode  string
	Phase int

	Score int
	Level int
	Lines int

	Won      bool
	GameOver bool
	Paused   bool

	HasActive   bool
	ActiveType  int
	ActiveOrien int
	ActiveX     int
	ActiveY     int

	HasHold    bool
	HoldPiece  int
	HoldLocked bool

	LockResetsUsed int
	SoftDropHeld   bool
	ComboCount     int

	// Next-queue piece ordinals, front first.
	QueueData []int

	// Board cells flattened row-major, buffer rows included.
	BoardWidth int
	BoardRows  int
	BoardData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	boardData := make([]int, g.board.Width()*g.board.Rows())
	for y := 0; y < g.board.Rows(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			boardData[y*g.board.Width()+x] = int(g.board.At(x, y))
		}
	}

	queueData := make([]int, len(g.queue))
	for i, p := range g.queue {
		queueData[i] = int(p)
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Phase: int(g.phase),

		Score: g.score,
		Level: g.level,
		Lines: g.lines,

		Won:      g.won,
		GameOver: g.gameOver,
		Paused:   g.paused,

		HasActive: g.hasActive,

		HasHold:    g.hasHold,
		HoldLocked: g.holdLocked,

		LockResetsUsed: g.lockResetsUsed,
		SoftDropHeld:   g.softDropHeld,
		ComboCount:     g.scorer.ComboCount(),

		QueueData: queueData,

		BoardWidth: g.board.Width(),
		BoardRows:  g.board.Rows(),
		BoardData:  boardData,
	}
	if g.hasActive {
		snap.ActiveType = int(g.active.Type)
		snap.ActiveOrien = int(g.active.Orientation)
		snap.ActiveX = g.active.X
		snap.ActiveY = g.active.Y
	}
	if g.hasHold {
		snap.HoldPiece = int(g.holdPiece)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LockResetsUsed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboCount)     //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Won)
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.HasActive)
	h = h*31 + boolBit(snap.HasHold)
	h = h*31 + boolBit(snap.HoldLocked)
	h = h*31 + boolBit(snap.SoftDropHeld)

	if snap.HasActive {
		h = h*31 + uint64(snap.ActiveType)        //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.ActiveOrien)       //#nosec G115 -- hash computation
		h = h*31 + uint64(int64(snap.ActiveX)+64) //#nosec G115 -- hash computation
		h = h*31 + uint64(int64(snap.ActiveY)+64) //#nosec G115 -- hash computation
	}
	if snap.HasHold {
		h = h*31 + uint64(snap.HoldPiece) //#nosec G115 -- hash computation
	}

	for _, v := range snap.QueueData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
