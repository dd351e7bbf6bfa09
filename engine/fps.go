package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hindsight/status"
)

// FPSCounter counts frames over a fixed sampling window
// The published FPS is the frame count of the last completed window, not a rolling average
// Tick is called from the render loop only; readers use the atomic accessors
type FPSCounter struct {
	clock  Clock
	window time.Duration

	frames  atomic.Int64
	total   atomic.Int64
	samples atomic.Int64
	fps     status.AtomicFloat

	lastSample time.Time
}

// NewFPSCounter creates a counter whose first window starts now
func NewFPSCounter(clock Clock, window time.Duration) *FPSCounter {
	return &FPSCounter{
		clock:      clock,
		window:     window,
		lastSample: clock.Now(),
	}
}

// Tick records one frame and returns true when the window closed and FPS was updated
func (c *FPSCounter) Tick() bool {
	now := c.clock.Now()
	c.frames.Add(1)
	c.total.Add(1)

	if now.Sub(c.lastSample) < c.window {
		return false
	}

	c.fps.Set(float64(c.frames.Swap(0)))
	c.lastSample = now
	c.samples.Add(1)
	return true
}

// FPS returns the frame count of the last completed window
func (c *FPSCounter) FPS() float64 {
	return c.fps.Get()
}

// Frames returns frames counted in the current window
func (c *FPSCounter) Frames() int64 {
	return c.frames.Load()
}

// Total returns frames counted since creation
func (c *FPSCounter) Total() int64 {
	return c.total.Load()
}

// Samples returns how many times FPS was updated
func (c *FPSCounter) Samples() int64 {
	return c.samples.Load()
}
