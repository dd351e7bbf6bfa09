package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hindsight/terminal"
)

// Cell is an alias to terminal.Cell so the buffer flushes without conversion
type Cell = terminal.Cell
type Attr = terminal.Attr

// FrameBuffer is the off-screen cell grid flushed to the terminal once per frame
// Size is fixed at construction
type FrameBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewFrameBuffer creates a cleared buffer with the specified dimensions
// Negative dimensions are treated as zero
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &FrameBuffer{
		cells:  make([]terminal.Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Size returns buffer dimensions
func (b *FrameBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to default using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.DefaultCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell; out-of-bounds writes are ignored
func (b *FrameBuffer) Set(x, y int, glyph rune, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = terminal.Cell{Glyph: glyph, Attrs: attrs}
}

// Cell returns the cell at (x, y), ok=false outside bounds
func (b *FrameBuffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// SetText draws text left to right from (x, y) and returns the column after the last rune
// Wide runes occupy their display width, the trailing columns are blanked
func (b *FrameBuffer) SetText(x, y int, text string, attrs Attr) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(x, y, r, attrs)
		for i := 1; i < w; i++ {
			b.Set(x+i, y, ' ', attrs)
		}
		x += w
	}
	return x
}

// Flush writes the whole buffer to the terminal at the given origin
func (b *FrameBuffer) Flush(term terminal.Terminal, originX, originY int) error {
	return term.Flush(b.cells, originX, originY, b.width, b.height)
}
