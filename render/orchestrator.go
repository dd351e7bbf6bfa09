package render

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/hindsight/terminal"
)

type rendererEntry struct {
	name     string
	renderer Renderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator composes a frame from registered renderers
type Orchestrator struct {
	buffer    *FrameBuffer
	renderers []rendererEntry
	regCount  int
	log       *log.Entry

	drawErrors atomic.Int64
}

// NewOrchestrator creates an orchestrator with a buffer of the given dimensions
func NewOrchestrator(width, height int) *Orchestrator {
	return &Orchestrator{
		buffer:    NewFrameBuffer(width, height),
		renderers: make([]rendererEntry, 0, 4),
		log:       log.WithField("component", "render"),
	}
}

// Buffer returns the frame buffer
func (o *Orchestrator) Buffer() *FrameBuffer {
	return o.buffer
}

// Register adds a named renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(name string, r Renderer, priority RenderPriority) {
	entry := rendererEntry{
		name:     name,
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Compose clears the buffer and runs every renderer in priority order
// Draw failures are logged and do not stop the remaining renderers
func (o *Orchestrator) Compose() {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if err := o.draw(entry); err != nil {
			o.drawErrors.Add(1)
			o.log.WithField("renderer", entry.name).WithError(err).Warn("draw failed")
		}
	}
}

// draw runs one renderer, converting a panic into an error
func (o *Orchestrator) draw(entry rendererEntry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			o.log.WithField("renderer", entry.name).Debugf("stack:\n%s", debug.Stack())
		}
	}()
	return entry.renderer.Render(o.buffer)
}

// DrawErrors returns the number of renderer failures since creation
func (o *Orchestrator) DrawErrors() int64 {
	return o.drawErrors.Load()
}

// Flush writes the composed buffer to the terminal at the given origin
func (o *Orchestrator) Flush(term terminal.Terminal, originX, originY int) error {
	return o.buffer.Flush(term, originX, originY)
}
