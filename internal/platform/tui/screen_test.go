package tui

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x', ColorBall)

	cell := s.Get(3, 2)
	if cell.Rune != 'x' || cell.Color != ColorBall {
		t.Errorf("Get(3,2) = %+v, want {x ColorBall}", cell)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these should panic or change anything.
	s.Set(-1, 0, 'x', ColorDefault)
	s.Set(0, -1, 'x', ColorDefault)
	s.Set(10, 0, 'x', ColorDefault)
	s.Set(0, 5, 'x', ColorDefault)

	if got := s.Get(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get should return a blank cell, got %+v", got)
	}
	if strings.Trim(s.String(), " \n") != "" {
		t.Error("out-of-bounds writes must not land anywhere")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, 'x', ColorPaddle)

	s.Clear()

	if s.Get(1, 1).Rune != ' ' || s.Get(1, 1).Color != ColorDefault {
		t.Errorf("Clear should blank every cell, got %+v", s.Get(1, 1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Resize to (20,8) gave (%d,%d)", s.Width(), s.Height())
	}

	// A write at the new extent must work.
	s.Set(19, 7, 'x', ColorDefault)
	if s.Get(19, 7).Rune != 'x' {
		t.Error("write at the new extent failed after Resize")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", ColorScore)

	if s.Get(2, 1).Rune != 'h' || s.Get(3, 1).Rune != 'i' {
		t.Errorf("DrawText misplaced: %q %q", s.Get(2, 1).Rune, s.Get(3, 1).Rune)
	}
	if s.Get(2, 1).Color != ColorScore {
		t.Error("DrawText should carry the color")
	}

	// Clipping beyond the right edge must not panic.
	s.DrawText(8, 0, "long text", ColorDefault)
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(2, 1, 'b', ColorDefault)

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
