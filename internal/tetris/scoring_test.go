package tetris

import "testing"

func clear(lines int) ClearEvent {
	return ClearEvent{Lines: lines, Difficult: lines >= 4}
}

func TestScorerBaseAwards(t *testing.T) {
	cases := []struct {
		lines int
		want  int
	}{
		{1, singlePoints},
		{2, doublePoints},
		{3, triplePoints},
		{4, tetrisPoints},
	}
	for _, tc := range cases {
		var s Scorer
		if got := s.Apply(clear(tc.lines), 0); got != tc.want {
			t.Errorf("Apply(%d lines, level 0) = %d, want %d", tc.lines, got, tc.want)
		}
	}
}

func TestScorerSimultaneousBeatsSequential(t *testing.T) {
	// A four-line clear must outscore four separate singles even with the
	// combo bonuses the singles accumulate
	var s Scorer
	tetris := s.Apply(clear(4), 0)

	s.Reset()
	singles := 0
	for i := 0; i < 4; i++ {
		singles += s.Apply(clear(1), 0)
	}
	if tetris <= singles {
		t.Errorf("tetris = %d, four singles = %d, want tetris strictly greater", tetris, singles)
	}
}

func TestScorerLevelMultiplier(t *testing.T) {
	var s Scorer
	if got := s.Apply(clear(1), 2); got != singlePoints*3 {
		t.Errorf("single at level 2 = %d, want %d", got, singlePoints*3)
	}
}

func TestScorerBackToBack(t *testing.T) {
	var s Scorer
	first := s.Apply(clear(4), 0)
	if first != tetrisPoints {
		t.Fatalf("first tetris = %d, want %d", first, tetrisPoints)
	}

	// Second consecutive tetris: 800 * 1.5 back-to-back + 50 combo
	second := s.Apply(clear(4), 0)
	want := 1200 + comboPoints
	if second != want {
		t.Errorf("back-to-back tetris = %d, want %d", second, want)
	}
}

func TestScorerSingleBreaksBackToBack(t *testing.T) {
	var s Scorer
	s.Apply(clear(4), 0)
	s.Apply(clear(1), 0)

	// The streak continues for combo purposes but is no longer all
	// difficult, so the multiplier is gone
	third := s.Apply(clear(4), 0)
	want := tetrisPoints + comboPoints*2
	if third != want {
		t.Errorf("tetris after mixed streak = %d, want %d", third, want)
	}
}

func TestScorerComboBreaksOnEmptyLock(t *testing.T) {
	var s Scorer
	s.Apply(clear(1), 0)
	s.Apply(clear(1), 0)
	if s.ComboCount() != 1 {
		t.Fatalf("ComboCount() = %d, want 1", s.ComboCount())
	}

	if got := s.Apply(clear(0), 0); got != 0 {
		t.Errorf("empty lock scored %d, want 0", got)
	}
	if s.ComboCount() != 0 {
		t.Errorf("ComboCount() = %d after empty lock, want 0", s.ComboCount())
	}

	// Next clear starts a fresh streak with no combo bonus
	if got := s.Apply(clear(1), 0); got != singlePoints {
		t.Errorf("single after broken combo = %d, want %d", got, singlePoints)
	}
}

func TestGravityTicks(t *testing.T) {
	// One second per row at level 0 and 60fps
	if got := gravityTicks(0, 60); got != 60 {
		t.Errorf("gravityTicks(0, 60) = %d, want 60", got)
	}

	// Monotonically non-increasing with level
	prev := gravityTicks(0, 60)
	for level := 1; level < 30; level++ {
		cur := gravityTicks(level, 60)
		if cur > prev {
			t.Errorf("gravityTicks(%d) = %d > gravityTicks(%d) = %d", level, cur, level-1, prev)
		}
		prev = cur
	}

	// Floor: levels past the table end reuse the last entry, never below
	// one tick
	if got := gravityTicks(100, 60); got != gravityTicks(14, 60) {
		t.Errorf("gravityTicks(100) = %d, want the level 14 floor %d", got, gravityTicks(14, 60))
	}
	if got := gravityTicks(100, 10); got < 1 {
		t.Errorf("gravityTicks = %d, want at least 1", got)
	}
}
