package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hindsight/constants"
)

// Screen implements Terminal and KeySource on a tcell screen
// A pump goroutine moves key events into a queue so PollKey never blocks
type Screen struct {
	screen tcell.Screen

	keys   chan Key
	quit   chan struct{}
	closed chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewScreen creates a Screen on the process console
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap adapts an existing tcell screen, e.g. tcell.NewSimulationScreen
// The screen must not have been initialized yet
func Wrap(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		keys:   make(chan Key, constants.KeyQueueSize),
		quit:   make(chan struct{}),
		closed: make(chan struct{}),
	}
}

// Init enters the tcell screen and starts the key pump
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()

	go s.pump()

	s.initialized = true
	return nil
}

// Fini restores the console. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	close(s.quit)
	s.screen.Fini()
	s.finalized = true
}

// pump forwards key events until the screen stops delivering events
func (s *Screen) pump() {
	defer close(s.closed)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case s.keys <- keyFromTcell(ev.Key()):
			case <-s.quit:
				return
			}
		case *tcell.EventResize:
			s.mu.Lock()
			if !s.finalized {
				s.screen.Sync()
			}
			s.mu.Unlock()
		}
	}
}

// PollKey returns the next queued key without blocking
// Queued keys are still delivered after the event stream ends; ErrClosed follows
func (s *Screen) PollKey() (Key, bool, error) {
	select {
	case k := <-s.keys:
		return k, true, nil
	default:
	}

	select {
	case <-s.closed:
		return KeyNone, false, ErrClosed
	default:
		return KeyNone, false, nil
	}
}

// Size returns current console dimensions
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Flush draws the cell grid and shows it in a single update
// Cells outside the physical console are clipped by tcell
func (s *Screen) Flush(cells []Cell, originX, originY, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return ErrNotInitialized
	}
	if width < 0 || height < 0 || len(cells) < width*height {
		return fmt.Errorf("flush: %d cells for %dx%d grid", len(cells), width, height)
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			glyph := c.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			s.screen.SetContent(originX+x, originY+y, glyph, nil, styleFor(c.Attrs))
		}
	}
	s.screen.Show()
	return nil
}

// Clear blanks the visible screen
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.screen.Clear()
	s.screen.Show()
}

// SetCursorVisible shows the cursor at the top-left corner or hides it
func (s *Screen) SetCursorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	if visible {
		s.screen.ShowCursor(0, 0)
	} else {
		s.screen.HideCursor()
	}
	s.screen.Show()
}

// styleFor converts an attribute bitmask to a tcell style
func styleFor(a Attr) tcell.Style {
	st := tcell.StyleDefault
	if a == AttrNone {
		return st
	}
	if c, ok := a.Foreground(); ok {
		st = st.Foreground(tcell.PaletteColor(int(c)))
	}
	if a&AttrStyle == 0 {
		return st
	}
	return st.
		Bold(a&AttrBold != 0).
		Dim(a&AttrDim != 0).
		Italic(a&AttrItalic != 0).
		Underline(a&AttrUnderline != 0).
		Blink(a&AttrBlink != 0).
		Reverse(a&AttrReverse != 0)
}
