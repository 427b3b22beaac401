package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, '█', ColorCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1,1) = %+v, want '█'/ColorCyan", cell)
	}

	// Clear resets color to default
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1,1) = %+v, want space/default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)
	if got := s.Get(2, 1); got != 'A' {
		t.Errorf("after shrink, Get(2,1) = %q, want 'A'", got)
	}
	// 'B' was outside the new bounds
	if got := s.Get(5, 3); got != ' ' {
		t.Errorf("after shrink, Get(5,3) = %q, want space", got)
	}

	s.Resize(8, 6)
	if got := s.Get(2, 1); got != 'A' {
		t.Errorf("after grow, Get(2,1) = %q, want 'A'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "hello") // clips at the edge

	if got := s.Row(0); !strings.HasSuffix(got, "hel") {
		t.Errorf("Row(0) = %q, want suffix \"hel\"", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(1, 1, 5, 3)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}
