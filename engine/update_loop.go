package engine

import "fmt"

// Updater advances simulation state by one tick
// The update loop is its only caller, making it the single writer of simulation state
type Updater interface {
	Update() error
}

// UpdaterFunc adapts a function to Updater
type UpdaterFunc func() error

// Update calls f()
func (f UpdaterFunc) Update() error {
	return f()
}

// NopUpdater is the default placeholder step
type NopUpdater struct{}

// Update does nothing
func (NopUpdater) Update() error { return nil }

// UpdateLoop runs the Updater at a capped rate
type UpdateLoop struct {
	LoopBase
	updater Updater
}

// NewUpdateLoop creates the update loop, nil updater means NopUpdater
func NewUpdateLoop(base LoopBase, updater Updater) *UpdateLoop {
	if updater == nil {
		updater = NopUpdater{}
	}
	return &UpdateLoop{LoopBase: base, updater: updater}
}

// Run steps until shutdown is requested or an update fails
func (l *UpdateLoop) Run() error {
	l.log.Debug("started")
	defer l.log.Debug("stopped")

	for !l.state.Cancelled() {
		if err := l.updater.Update(); err != nil {
			return fmt.Errorf("update tick %d: %w", l.ticks.Load(), err)
		}
		l.ticks.Add(1)

		if !l.wait() {
			break
		}
	}
	return nil
}
