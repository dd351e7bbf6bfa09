package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := Wrap(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s, sim
}

func TestScreenFlushWritesCellsAtOrigin(t *testing.T) {
	s, sim := newSimScreen(t, 80, 25)

	w, h := 4, 2
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = DefaultCell
	}
	cells[1*w+2] = Cell{Glyph: 'P', Attrs: AttrBold | Fg(ColorYellow)}

	if err := s.Flush(cells, 10, 5, w, h); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	r, _, style, _ := sim.GetContent(12, 6)
	if r != 'P' {
		t.Errorf("Expected 'P' at (12,6), got %q", r)
	}
	if style == tcell.StyleDefault {
		t.Error("Expected non-default style for attributed cell")
	}

	r, _, _, _ = sim.GetContent(10, 5)
	if r != ' ' {
		t.Errorf("Expected blank at origin, got %q", r)
	}
}

func TestScreenFlushZeroGlyphRendersBlank(t *testing.T) {
	s, sim := newSimScreen(t, 10, 3)

	cells := make([]Cell, 10*3)
	cells[0] = Cell{Glyph: 'x'}
	if err := s.Flush(cells, 0, 0, 10, 3); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	cells[0] = Cell{}
	if err := s.Flush(cells, 0, 0, 10, 3); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	r, _, _, _ := sim.GetContent(0, 0)
	if r != ' ' {
		t.Errorf("Expected zero glyph to render as space, got %q", r)
	}
}

func TestScreenFlushRejectsShortGrid(t *testing.T) {
	s, _ := newSimScreen(t, 10, 3)

	if err := s.Flush(make([]Cell, 5), 0, 0, 10, 3); err == nil {
		t.Error("Expected error for undersized cell slice")
	}
}

func TestScreenFlushAfterFini(t *testing.T) {
	s, _ := newSimScreen(t, 10, 3)
	s.Fini()
	s.Fini()

	err := s.Flush(make([]Cell, 30), 0, 0, 10, 3)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestScreenFlushBeforeInit(t *testing.T) {
	s := Wrap(tcell.NewSimulationScreen("UTF-8"))

	err := s.Flush(make([]Cell, 1), 0, 0, 1, 1)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestScreenPollKeyEmpty(t *testing.T) {
	s, _ := newSimScreen(t, 10, 3)

	k, ok, err := s.PollKey()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok || k != KeyNone {
		t.Errorf("Expected no key, got %v (ok=%v)", k, ok)
	}
}

func TestScreenPollKeyQueued(t *testing.T) {
	s := Wrap(tcell.NewSimulationScreen("UTF-8"))

	s.keys <- KeyUp
	s.keys <- KeyEscape

	for _, want := range []Key{KeyUp, KeyEscape} {
		k, ok, err := s.PollKey()
		if err != nil || !ok {
			t.Fatalf("Expected queued key, got ok=%v err=%v", ok, err)
		}
		if k != want {
			t.Errorf("Expected %v, got %v", want, k)
		}
	}
}

func TestScreenPollKeyDrainsBeforeClosed(t *testing.T) {
	s := Wrap(tcell.NewSimulationScreen("UTF-8"))

	s.keys <- KeyLeft
	close(s.closed)

	k, ok, err := s.PollKey()
	if err != nil || !ok || k != KeyLeft {
		t.Fatalf("Expected pending Left before close, got %v ok=%v err=%v", k, ok, err)
	}

	_, ok, err = s.PollKey()
	if ok || !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after drain, got ok=%v err=%v", ok, err)
	}
}

func TestStyleForAttributes(t *testing.T) {
	if styleFor(AttrNone) != tcell.StyleDefault {
		t.Error("Expected AttrNone to map to default style")
	}
	if styleFor(AttrBold) == tcell.StyleDefault {
		t.Error("Expected bold to differ from default style")
	}
	if styleFor(Fg(ColorRed)) == styleFor(Fg(ColorBlue)) {
		t.Error("Expected different foreground colors to produce different styles")
	}
}
