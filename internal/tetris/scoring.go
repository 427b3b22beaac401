package tetris

import "math"

// Scoring constants. Base awards follow the common guideline table: a
// simultaneous clear is always worth strictly more than the same lines
// cleared across separate events.
const (
	linesPerLevel = 10

	singlePoints = 100
	doublePoints = 300
	triplePoints = 500
	tetrisPoints = 800

	comboPoints          = 50
	difficultMultiplier  = 1.5
	softDropPointsPerRow = 1
	hardDropPointsPerRow = 2
)

// gravityMillis is the fall interval per level, precomputed from
// 1000*(0.8 - 0.007*level)^level. Level 14 is the floor: gravity never gets
// faster than this, so the player always keeps at least one input tick.
var gravityMillis = [...]int{1000, 793, 618, 473, 355, 262, 190, 135, 94, 64, 43, 28, 18, 11, 7}

// gravityTicks converts the current level's fall interval to simulation
// ticks, never below one tick.
func gravityTicks(level, tickRate int) int {
	if level >= len(gravityMillis) {
		level = len(gravityMillis) - 1
	}
	t := gravityMillis[level] * tickRate / 1000
	if t < 1 {
		t = 1
	}
	return t
}

// combo tracks consecutive clearing locks. difficult stays true only while
// every clear in the streak is a difficult one.
type combo struct {
	count     int
	difficult bool
}

// Scorer converts clear events into score deltas, carrying combo and
// back-to-back state between locks.
type Scorer struct {
	combo *combo
}

// Apply scores a clear event at the given level and returns the score delta.
// A lock that clears nothing breaks the combo and awards nothing.
func (s *Scorer) Apply(ev ClearEvent, level int) int {
	var base int
	switch ev.Lines {
	case 0:
		s.combo = nil
		return 0
	case 1:
		base = singlePoints
	case 2:
		base = doublePoints
	case 3:
		base = triplePoints
	default:
		base = tetrisPoints
	}

	if s.combo == nil {
		s.combo = &combo{count: 0, difficult: ev.Difficult}
	} else {
		s.combo.count++
		s.combo.difficult = s.combo.difficult && ev.Difficult
	}

	multiplier := 1.0
	if s.combo.count > 0 && s.combo.difficult {
		// back-to-back difficult clears
		multiplier = difficultMultiplier
	}

	comboBonus := 0
	if s.combo.count > 0 {
		comboBonus = comboPoints * s.combo.count
	}

	delta := float64(base)*float64(level+1)*multiplier + float64(comboBonus)
	return int(math.Round(delta))
}

// Reset clears combo state for a new session.
func (s *Scorer) Reset() {
	s.combo = nil
}

// ComboCount returns the current combo streak length, zero when no streak is
// active.
func (s *Scorer) ComboCount() int {
	if s.combo == nil {
		return 0
	}
	return s.combo.count
}
