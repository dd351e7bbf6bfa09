package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hindsight/status"
)

// RecordingSounder counts feedback requests, for tests and headless runs
type RecordingSounder struct {
	Steps atomic.Int64
	Quits atomic.Int64
}

// PlayStep implements Sounder
func (r *RecordingSounder) PlayStep() { r.Steps.Add(1) }

// PlayQuit implements Sounder
func (r *RecordingSounder) PlayQuit() { r.Quits.Add(1) }

// NewTestLoopBase builds a loop base with its own registry and a real clock
func NewTestLoopBase(name string, interval time.Duration) (LoopBase, *RunState) {
	state := NewRunState(NewTimeProvider(), time.Second)
	return NewLoopBase(name, state, interval, status.NewRegistry()), state
}
