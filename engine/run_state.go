package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// RunState is the state shared by every loop for one run
// It is created before the loops start and passed to each of them
type RunState struct {
	cancelled atomic.Bool
	done      chan struct{}
	once      sync.Once

	FPS *FPSCounter
}

// NewRunState creates a running state with an FPS counter sampling over window
func NewRunState(clock Clock, window time.Duration) *RunState {
	return &RunState{
		done: make(chan struct{}),
		FPS:  NewFPSCounter(clock, window),
	}
}

// Cancel requests shutdown. Only the first call has an effect; it returns true for that call
// Cancellation is never reset
func (s *RunState) Cancel() bool {
	first := false
	s.once.Do(func() {
		s.cancelled.Store(true)
		close(s.done)
		first = true
	})
	return first
}

// Cancelled reports whether shutdown was requested
func (s *RunState) Cancelled() bool {
	return s.cancelled.Load()
}

// Done is closed once shutdown is requested
func (s *RunState) Done() <-chan struct{} {
	return s.done
}
