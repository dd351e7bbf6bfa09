package terminal

import "errors"

// Attr represents cell display attributes (bitmask)
// Low byte holds style flags, bits 8-12 hold an optional foreground palette color
type Attr uint16

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// AttrStyle masks only the style bits (excludes color)
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

const (
	fgShift = 8
	fgMask  = Attr(0x1F) << fgShift
)

// Color is one of the 16 standard console palette entries
type Color uint8

const (
	ColorBlack Color = iota
	ColorMaroon
	ColorGreen
	ColorOlive
	ColorNavy
	ColorPurple
	ColorTeal
	ColorSilver
	ColorGray
	ColorRed
	ColorLime
	ColorYellow
	ColorBlue
	ColorFuchsia
	ColorAqua
	ColorWhite
)

// Fg returns the attribute bits selecting c as foreground color
func Fg(c Color) Attr {
	return Attr(uint16(c&0x0F)+1) << fgShift
}

// Foreground reports the foreground color encoded in a, ok=false for terminal default
func (a Attr) Foreground() (Color, bool) {
	idx := (a & fgMask) >> fgShift
	if idx == 0 {
		return 0, false
	}
	return Color(idx - 1), true
}

// Cell represents a single console cell
type Cell struct {
	Glyph rune
	Attrs Attr
}

// DefaultCell is the blank cell every frame starts from
var DefaultCell = Cell{Glyph: ' ', Attrs: AttrNone}

var (
	// ErrNotInitialized is returned by writes before Init or after Fini
	ErrNotInitialized = errors.New("terminal: not initialized")
	// ErrClosed is returned by a key source whose event stream has ended
	ErrClosed = errors.New("terminal: closed")
)

// Terminal is the console write primitive
type Terminal interface {
	// Init takes over the console and hides the cursor
	Init() error

	// Fini restores console state. Safe to call multiple times
	Fini()

	// Size returns current console dimensions
	Size() (width, height int)

	// Flush writes a width*height grid of cells at (originX, originY) in one update
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, originX, originY, width, height int) error

	// Clear blanks the visible screen
	Clear()

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)
}

// KeySource is the keyboard input primitive
type KeySource interface {
	// PollKey consumes at most one pending key without blocking
	// ok is false when no key is available
	PollKey() (key Key, ok bool, err error)
}
