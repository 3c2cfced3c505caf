package tui

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("width = %d, expected 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("height = %d, expected 5", s.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v, expected blank default", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '█', ColorPipe)
	if c := s.GetCell(3, 2); c.Rune != '█' || c.Color != ColorPipe {
		t.Errorf("cell = %+v, expected pipe block", c)
	}

	// Out of bounds is silently ignored / blank
	s.Set(-1, 0, 'x', ColorFlyer)
	s.Set(10, 0, 'x', ColorFlyer)
	s.Set(0, 5, 'x', ColorFlyer)
	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("out-of-bounds get = %+v, expected blank", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, '►', ColorFlyer)

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell after clear = %+v, expected blank default", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", ColorHUD)

	if s.Row(1) != "  hi      " {
		t.Errorf("row = %q, expected %q", s.Row(1), "  hi      ")
	}
	if c := s.GetCell(2, 1); c.Color != ColorHUD {
		t.Errorf("text color = %v, expected ColorHUD", c.Color)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawText(2, 0, "long", ColorDefault)

	if s.Row(0) != "  lo" {
		t.Errorf("row = %q, expected %q", s.Row(0), "  lo")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "ab", ColorDefault)

	if s.Row(1) != "    ab    " {
		t.Errorf("row = %q, expected %q", s.Row(1), "    ab    ")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(0, 0, 'x', ColorFlyer)

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("size after resize = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if c := s.GetCell(0, 0); c.Rune != ' ' {
		t.Errorf("resize should clear, cell = %+v", c)
	}

	// Same-size resize is a no-op and keeps content.
	s.Set(1, 1, 'y', ColorPipe)
	s.Resize(6, 2)
	if c := s.GetCell(1, 1); c.Rune != 'y' {
		t.Errorf("same-size resize should keep content, cell = %+v", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(2, 1, 'b', ColorDefault)

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q, expected %q", got, "a  \n  b")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 2)
	if got := s.Row(5); got != "   " {
		t.Errorf("out-of-bounds row = %q, expected blanks", got)
	}
}
