package engine

import (
	"runtime"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/hindsight/status"
)

// LoopBase provides the dependencies every loop shares
// Embed in loop struct to eliminate boilerplate
type LoopBase struct {
	name     string
	state    *RunState
	interval time.Duration
	log      *log.Entry
	ticks    *atomic.Int64
	timer    *time.Timer
	reg      *status.Registry
}

// NewLoopBase initializes a named loop paced by interval
// Tick counts are published to reg under loop.<name>.ticks
func NewLoopBase(name string, state *RunState, interval time.Duration, reg *status.Registry) LoopBase {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	return LoopBase{
		name:     name,
		state:    state,
		interval: interval,
		log:      log.WithField("loop", name),
		ticks:    reg.Ints.Get("loop." + name + ".ticks"),
		timer:    timer,
		reg:      reg,
	}
}

// counter returns the loop-scoped registry counter loop.<name>.<metric>
func (b *LoopBase) counter(metric string) *atomic.Int64 {
	return b.reg.Ints.Get("loop." + b.name + "." + metric)
}

// Name returns the loop name used in logs and metrics
func (b *LoopBase) Name() string {
	return b.name
}

// Ticks returns completed iterations
func (b *LoopBase) Ticks() int64 {
	return b.ticks.Load()
}

// wait suspends for the loop interval and returns false if shutdown was requested meanwhile
// A zero interval only yields the processor
func (b *LoopBase) wait() bool {
	if b.interval <= 0 {
		runtime.Gosched()
		return !b.state.Cancelled()
	}

	b.timer.Reset(b.interval)
	select {
	case <-b.timer.C:
		return !b.state.Cancelled()
	case <-b.state.Done():
		b.timer.Stop()
		return false
	}
}
