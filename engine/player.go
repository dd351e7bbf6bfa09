package engine

import "sync/atomic"

// Player is the single movable entity
// Position lives in one atomic word so a reader never observes x from one move and y from another
type Player struct {
	pos   atomic.Uint64
	glyph rune
}

// NewPlayer creates a player at (x, y)
func NewPlayer(x, y int, glyph rune) *Player {
	p := &Player{glyph: glyph}
	p.pos.Store(packPosition(x, y))
	return p
}

// Glyph returns the rune drawn for the player
func (p *Player) Glyph() rune {
	return p.glyph
}

// Position returns a consistent (x, y) snapshot
func (p *Player) Position() (x, y int) {
	return unpackPosition(p.pos.Load())
}

// Move offsets the position by (dx, dy) without clamping
func (p *Player) Move(dx, dy int) {
	for {
		old := p.pos.Load()
		x, y := unpackPosition(old)
		if p.pos.CompareAndSwap(old, packPosition(x+dx, y+dy)) {
			return
		}
	}
}

// packPosition stores x in the high and y in the low 32 bits
func packPosition(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}

func unpackPosition(v uint64) (x, y int) {
	return int(int32(uint32(v >> 32))), int(int32(uint32(v)))
}
