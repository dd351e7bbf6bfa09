package render

import (
	"testing"

	"github.com/lixenwraith/hindsight/terminal"
)

func assertAllDefault(t *testing.T, b *FrameBuffer) {
	t.Helper()
	w, h := b.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := b.Cell(x, y)
			if c != terminal.DefaultCell {
				t.Fatalf("Expected default cell at (%d,%d), got %+v", x, y, c)
			}
		}
	}
}

func TestNewFrameBufferIsCleared(t *testing.T) {
	b := NewFrameBuffer(80, 25)

	w, h := b.Size()
	if w != 80 || h != 25 {
		t.Fatalf("Expected 80x25, got %dx%d", w, h)
	}
	if len(b.cells) != 80*25 {
		t.Fatalf("Expected %d cells, got %d", 80*25, len(b.cells))
	}
	assertAllDefault(t, b)
}

func TestFrameBufferOutOfBoundsWritesAreNoOps(t *testing.T) {
	b := NewFrameBuffer(10, 5)

	coords := [][2]int{
		{-1, 0}, {0, -1}, {10, 0}, {0, 5}, {10, 5}, {-100, -100}, {1 << 20, 2},
	}
	for _, c := range coords {
		b.Set(c[0], c[1], 'X', terminal.AttrBold)
		if _, ok := b.Cell(c[0], c[1]); ok {
			t.Errorf("Expected (%d,%d) to be out of bounds", c[0], c[1])
		}
	}
	assertAllDefault(t, b)
}

func TestFrameBufferSetAndRead(t *testing.T) {
	b := NewFrameBuffer(10, 5)
	b.Set(9, 4, 'Z', terminal.AttrReverse)

	c, ok := b.Cell(9, 4)
	if !ok {
		t.Fatal("Expected (9,4) in bounds")
	}
	if c.Glyph != 'Z' || c.Attrs != terminal.AttrReverse {
		t.Errorf("Expected Z/reverse, got %+v", c)
	}
	if b.cells[4*10+9] != c {
		t.Error("Expected row-major storage")
	}
}

func TestFrameBufferClearIdempotent(t *testing.T) {
	b := NewFrameBuffer(13, 7)
	b.Set(3, 3, 'A', terminal.AttrBold)
	b.SetText(0, 0, "hello", terminal.AttrNone)

	b.Clear()
	once := make([]terminal.Cell, len(b.cells))
	copy(once, b.cells)

	b.Clear()
	for i := range once {
		if once[i] != b.cells[i] {
			t.Fatalf("Cell %d differs after second Clear: %+v vs %+v", i, once[i], b.cells[i])
		}
	}
	assertAllDefault(t, b)
}

func TestFrameBufferZeroSize(t *testing.T) {
	b := NewFrameBuffer(0, 0)
	b.Clear()
	b.Set(0, 0, 'x', 0)
	if _, ok := b.Cell(0, 0); ok {
		t.Error("Expected empty buffer to have no cells")
	}

	neg := NewFrameBuffer(-3, 4)
	if w, h := neg.Size(); w != 0 || h != 4 {
		t.Errorf("Expected negative width clamped to 0, got %dx%d", w, h)
	}
}

func TestFrameBufferSetText(t *testing.T) {
	b := NewFrameBuffer(20, 2)

	next := b.SetText(2, 1, "X: 3", terminal.AttrNone)
	if next != 6 {
		t.Errorf("Expected next column 6, got %d", next)
	}
	for i, r := range "X: 3" {
		c, _ := b.Cell(2+i, 1)
		if c.Glyph != r {
			t.Errorf("Expected %q at column %d, got %q", r, 2+i, c.Glyph)
		}
	}
}

func TestFrameBufferSetTextWideRune(t *testing.T) {
	b := NewFrameBuffer(10, 1)

	next := b.SetText(0, 0, "世a", terminal.AttrNone)
	if next != 3 {
		t.Errorf("Expected wide rune to advance two columns, next=%d", next)
	}
	c, _ := b.Cell(2, 0)
	if c.Glyph != 'a' {
		t.Errorf("Expected 'a' after wide rune, got %q", c.Glyph)
	}
}

func TestFrameBufferSetTextClipsAtEdge(t *testing.T) {
	b := NewFrameBuffer(5, 1)

	b.SetText(3, 0, "abcdef", terminal.AttrNone)

	c, _ := b.Cell(3, 0)
	if c.Glyph != 'a' {
		t.Errorf("Expected 'a' at column 3, got %q", c.Glyph)
	}
	c, _ = b.Cell(4, 0)
	if c.Glyph != 'b' {
		t.Errorf("Expected 'b' at column 4, got %q", c.Glyph)
	}

	b.SetText(-2, 0, "xyz", terminal.AttrNone)
	c, _ = b.Cell(0, 0)
	if c.Glyph != 'z' {
		t.Errorf("Expected only 'z' to land at column 0, got %q", c.Glyph)
	}
}

func TestFrameBufferFlushScenario(t *testing.T) {
	term := terminal.NewMemoryTerminal(80, 25)
	b := NewFrameBuffer(80, 25)

	b.Set(5, 5, 'P', terminal.AttrNone)
	if err := b.Flush(term, 0, 0); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	frame, ok := term.LastFrame()
	if !ok {
		t.Fatal("Expected a flushed frame")
	}
	if frame.Width != 80 || frame.Height != 25 || frame.OriginX != 0 || frame.OriginY != 0 {
		t.Fatalf("Unexpected frame geometry: %dx%d at (%d,%d)", frame.Width, frame.Height, frame.OriginX, frame.OriginY)
	}

	for y := 0; y < 25; y++ {
		for x := 0; x < 80; x++ {
			c := frame.At(x, y)
			if x == 5 && y == 5 {
				if c.Glyph != 'P' {
					t.Errorf("Expected 'P' at (5,5), got %q", c.Glyph)
				}
				continue
			}
			if c != terminal.DefaultCell {
				t.Fatalf("Expected default cell at (%d,%d), got %+v", x, y, c)
			}
		}
	}
}
