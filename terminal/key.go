package terminal

import "github.com/gdamore/tcell/v2"

// Key is a logical key code
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyOther
)

var keyNames = [...]string{
	KeyNone:   "None",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyEscape: "Escape",
	KeyOther:  "Other",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// keyFromTcell maps a tcell key code to a logical key
func keyFromTcell(k tcell.Key) Key {
	switch k {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape:
		return KeyEscape
	default:
		return KeyOther
	}
}
