package core

// EventKind identifies a discrete engine event.
type EventKind int

const (
	EventPieceLocked  EventKind = iota // a piece was committed to the board
	EventLinesCleared                  // one or more rows were removed
	EventLevelUp                       // level increased
	EventGameOver                      // session ended
)

// Event is a fire-and-forget notification emitted by a game step.
// Consumers (audio, logging) must not feed anything back into the game.
type Event struct {
	Kind EventKind

	// Lines and Difficult are set for EventLinesCleared: the number of rows
	// removed simultaneously and whether the clear was a difficult one.
	Lines     int
	Difficult bool

	// Level is set for EventLevelUp.
	Level int
}

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPieceLocked:
		return "PieceLocked"
	case EventLinesCleared:
		return "LinesCleared"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
