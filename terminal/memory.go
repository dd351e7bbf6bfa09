package terminal

import (
	"fmt"
	"sync"
)

// Frame is one grid received by MemoryTerminal.Flush
type Frame struct {
	Cells   []Cell
	OriginX int
	OriginY int
	Width   int
	Height  int
}

// At returns the cell at frame-local (x, y)
func (f Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// MemoryTerminal is a headless Terminal and KeySource
// Flushed frames are recorded and keys are served from a queue
type MemoryTerminal struct {
	mu sync.Mutex

	width, height int
	frames        []Frame
	keys          []Key
	keyErr        error
	flushErr      error

	initialized   bool
	finalized     bool
	cursorVisible bool
	clears        int
}

// NewMemoryTerminal creates a headless terminal of the given size
func NewMemoryTerminal(width, height int) *MemoryTerminal {
	return &MemoryTerminal{width: width, height: height, cursorVisible: true}
}

// Init marks the terminal active and hides the cursor
func (m *MemoryTerminal) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialized = true
	m.cursorVisible = false
	return nil
}

// Fini marks the terminal finalized
func (m *MemoryTerminal) Fini() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finalized = true
}

// Size returns the configured dimensions
func (m *MemoryTerminal) Size() (int, int) {
	return m.width, m.height
}

// Flush records a copy of the grid
func (m *MemoryTerminal) Flush(cells []Cell, originX, originY, width, height int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.flushErr != nil {
		return m.flushErr
	}
	if m.finalized {
		return ErrNotInitialized
	}
	if len(cells) < width*height {
		return fmt.Errorf("flush: %d cells for %dx%d grid", len(cells), width, height)
	}

	cp := make([]Cell, width*height)
	copy(cp, cells)
	m.frames = append(m.frames, Frame{Cells: cp, OriginX: originX, OriginY: originY, Width: width, Height: height})
	return nil
}

// Clear counts screen clears
func (m *MemoryTerminal) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
}

// SetCursorVisible records cursor visibility
func (m *MemoryTerminal) SetCursorVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorVisible = visible
}

// PollKey pops the next queued key; once the queue is empty a configured key error is returned
func (m *MemoryTerminal) PollKey() (Key, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.keys) > 0 {
		k := m.keys[0]
		m.keys = m.keys[1:]
		return k, true, nil
	}
	if m.keyErr != nil {
		return KeyNone, false, m.keyErr
	}
	return KeyNone, false, nil
}

// PushKeys appends keys to the input queue
func (m *MemoryTerminal) PushKeys(keys ...Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, keys...)
}

// PendingKeys returns the number of unconsumed keys
func (m *MemoryTerminal) PendingKeys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

// FailKeys makes PollKey return err once queued keys are drained
func (m *MemoryTerminal) FailKeys(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyErr = err
}

// FailFlush makes every subsequent Flush return err
func (m *MemoryTerminal) FailFlush(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushErr = err
}

// Frames returns the number of recorded frames
func (m *MemoryTerminal) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// LastFrame returns the most recent frame, ok=false if none
func (m *MemoryTerminal) LastFrame() (Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.frames) == 0 {
		return Frame{}, false
	}
	return m.frames[len(m.frames)-1], true
}

// CursorVisible reports the last cursor visibility set
func (m *MemoryTerminal) CursorVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorVisible
}

// Clears returns how many times Clear was called
func (m *MemoryTerminal) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}
