package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/hindsight/terminal"
)

// Sounder plays feedback for accepted input
type Sounder interface {
	PlayStep()
	PlayQuit()
}

type silentSounder struct{}

func (silentSounder) PlayStep() {}
func (silentSounder) PlayQuit() {}

// InputLoop consumes at most one key per tick and applies it to the player
// It is the only writer of the player position
type InputLoop struct {
	LoopBase
	source terminal.KeySource
	player *Player
	sound  Sounder
	moves  *atomic.Int64
}

// NewInputLoop creates the input loop
func NewInputLoop(base LoopBase, source terminal.KeySource, player *Player, sound Sounder) *InputLoop {
	if sound == nil {
		sound = silentSounder{}
	}
	return &InputLoop{
		LoopBase: base,
		source:   source,
		player:   player,
		sound:    sound,
		moves:    base.counter("moves"),
	}
}

// Run polls until shutdown is requested or the key source fails
func (l *InputLoop) Run() error {
	l.log.Debug("started")
	defer l.log.Debug("stopped")

	for !l.state.Cancelled() {
		key, ok, err := l.source.PollKey()
		if err != nil {
			return fmt.Errorf("poll key: %w", err)
		}
		if ok {
			l.apply(key)
		}
		l.ticks.Add(1)

		if !l.wait() {
			break
		}
	}
	return nil
}

// apply maps one logical key to its effect
func (l *InputLoop) apply(key terminal.Key) {
	switch key {
	case terminal.KeyUp:
		l.player.Move(0, -1)
	case terminal.KeyDown:
		l.player.Move(0, 1)
	case terminal.KeyLeft:
		l.player.Move(-1, 0)
	case terminal.KeyRight:
		l.player.Move(1, 0)
	case terminal.KeyEscape:
		if l.state.Cancel() {
			l.log.Info("quit requested")
			l.sound.PlayQuit()
		}
		return
	default:
		return
	}
	l.moves.Add(1)
	l.sound.PlayStep()
}
