package tetris

// ClearEvent describes the outcome of one lock resolution. It is produced
// once per locked piece and consumed immediately by scoring; simultaneous
// multi-row clears are always a single event, never several.
type ClearEvent struct {
	Rows      []int // removed row indices, top to bottom
	Lines     int   // simultaneous clear count
	Difficult bool  // four-line clears qualify for the back-to-back bonus
}
