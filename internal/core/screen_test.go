package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with uncolored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.Get(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorBall)
	if c := s.Get(5, 5); c.Rune != 'X' || c.Color != ColorBall {
		t.Errorf("Get(5, 5) = %+v, expected 'X' in ball color", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', ColorAlert)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorText)

	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipping at the right edge
	s.DrawText(17, 2, "Hello", ColorText)
	if got := s.Row(2); got != "                 Hel" {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorText)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorBorder)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
	if s.Get(0, 0).Color != ColorBorder {
		t.Errorf("corner color = %v, expected border color", s.Get(0, 0).Color)
	}
}

func TestScreenRuns(t *testing.T) {
	s := NewScreen(6, 1)
	s.FillRect(NewRect(1, 0, 2, 1), '█', RGB(0xff0000))
	s.Set(4, 0, 'o', ColorBall)

	runs := s.Runs(0)
	expected := []Run{
		{Text: " ", Color: ColorDefault},
		{Text: "██", Color: RGB(0xff0000)},
		{Text: " ", Color: ColorDefault},
		{Text: "o", Color: ColorBall},
		{Text: " ", Color: ColorDefault},
	}
	if len(runs) != len(expected) {
		t.Fatalf("Runs() = %+v, expected %+v", runs, expected)
	}
	for i := range expected {
		if runs[i] != expected[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], expected[i])
		}
	}

	if s.Runs(5) != nil {
		t.Error("Runs out of range should be nil")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(2, 1, 'b', ColorDefault)

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X', ColorAlert)
	s.Set(4, 4, 'Y', ColorAlert)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.Get(1, 1); c.Rune != 'X' || c.Color != ColorAlert {
		t.Errorf("content not preserved, got %+v", c)
	}

	s.Resize(6, 4)
	if got := s.Row(3); got != strings.Repeat(" ", 6) {
		t.Errorf("new row = %q, expected spaces", got)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd", ColorText)

	if got := s.Row(0); got != "abcd" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(9); got != "    " {
		t.Errorf("Row(9) = %q, expected spaces", got)
	}
}
