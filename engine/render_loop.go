package engine

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/hindsight/constants"
	"github.com/lixenwraith/hindsight/render"
	"github.com/lixenwraith/hindsight/status"
	"github.com/lixenwraith/hindsight/terminal"
)

// RenderLoop composes and flushes one frame per tick
// Each frame: FPS tick, compose all renderers, pace, flush
type RenderLoop struct {
	LoopBase
	term             terminal.Terminal
	orchestrator     *render.Orchestrator
	originX, originY int
	fps              *status.AtomicFloat
}

// NewRenderLoop creates the render loop drawing into a width x height buffer
func NewRenderLoop(base LoopBase, term terminal.Terminal, orchestrator *render.Orchestrator, originX, originY int) *RenderLoop {
	return &RenderLoop{
		LoopBase:     base,
		term:         term,
		orchestrator: orchestrator,
		originX:      originX,
		originY:      originY,
		fps:          base.reg.Floats.Get("render.fps"),
	}
}

// Run renders until shutdown is requested or a flush fails
func (l *RenderLoop) Run() error {
	l.log.Debug("started")
	defer l.log.Debug("stopped")

	for !l.state.Cancelled() {
		if l.state.FPS.Tick() {
			l.fps.Set(l.state.FPS.FPS())
		}
		l.orchestrator.Compose()
		l.ticks.Add(1)

		// Pacing happens before the flush, capping frames near 60Hz
		if !l.wait() {
			break
		}

		if err := l.orchestrator.Flush(l.term, l.originX, l.originY); err != nil {
			return fmt.Errorf("flush frame %d: %w", l.state.FPS.Total(), err)
		}
	}
	return nil
}

// HUDRenderer draws the frame counter, player position and FPS on the top row
type HUDRenderer struct {
	state  *RunState
	player *Player
	attrs  terminal.Attr
}

// NewHUDRenderer creates the status line renderer
func NewHUDRenderer(state *RunState, player *Player) *HUDRenderer {
	return &HUDRenderer{state: state, player: player, attrs: terminal.Fg(terminal.ColorSilver)}
}

// Render implements render.Renderer
func (r *HUDRenderer) Render(buf *render.FrameBuffer) error {
	x, y := r.player.Position()
	row := constants.HUDRow

	buf.SetText(constants.FrameCounterX, row, "Frame: "+strconv.FormatInt(r.state.FPS.Frames(), 10), r.attrs)
	buf.SetText(constants.PositionTextX, row, "X: "+strconv.Itoa(x)+" Y: "+strconv.Itoa(y), r.attrs)
	buf.SetText(constants.FPSTextX, row, "FPS: "+strconv.FormatFloat(r.state.FPS.FPS(), 'f', -1, 64), r.attrs)
	return nil
}

// PlayerRenderer draws the player glyph at its position
// Off-screen positions are dropped by the buffer
type PlayerRenderer struct {
	player *Player
	attrs  terminal.Attr
}

// NewPlayerRenderer creates the player renderer
func NewPlayerRenderer(player *Player) *PlayerRenderer {
	return &PlayerRenderer{player: player, attrs: terminal.AttrBold | terminal.Fg(terminal.ColorYellow)}
}

// Render implements render.Renderer
func (r *PlayerRenderer) Render(buf *render.FrameBuffer) error {
	x, y := r.player.Position()
	buf.Set(x, y, r.player.Glyph(), r.attrs)
	return nil
}
