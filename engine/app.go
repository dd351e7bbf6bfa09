package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hindsight/config"
	"github.com/lixenwraith/hindsight/core"
	"github.com/lixenwraith/hindsight/render"
	"github.com/lixenwraith/hindsight/status"
	"github.com/lixenwraith/hindsight/terminal"
)

// Exit codes returned by App.Run
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Loop is one supervised execution unit
type Loop interface {
	Name() string
	Run() error
}

// App owns the shared state and coordinates the input, update and render loops
type App struct {
	cfg  config.Config
	term terminal.Terminal
	keys terminal.KeySource

	clock   Clock
	sound   Sounder
	updater Updater

	Registry *status.Registry
	State    *RunState
	Player   *Player

	orchestrator *render.Orchestrator
	cleanupOnce  sync.Once
	log          *log.Entry
}

// NewApp creates an app for cfg writing to term and reading keys
// Setters must be called before Run
func NewApp(cfg config.Config, term terminal.Terminal, keys terminal.KeySource) *App {
	return &App{
		cfg:      cfg,
		term:     term,
		keys:     keys,
		clock:    NewTimeProvider(),
		sound:    silentSounder{},
		updater:  NopUpdater{},
		Registry: status.NewRegistry(),
		Player:   NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Glyph()),
		log:      log.WithField("component", "app"),
	}
}

// SetClock replaces the FPS clock
func (a *App) SetClock(c Clock) {
	a.clock = c
}

// SetSound enables input feedback sounds
func (a *App) SetSound(s Sounder) {
	if s != nil {
		a.sound = s
	}
}

// SetUpdater replaces the update step
func (a *App) SetUpdater(u Updater) {
	if u != nil {
		a.updater = u
	}
}

// Orchestrator returns the render pipeline, nil before Run
func (a *App) Orchestrator() *render.Orchestrator {
	return a.orchestrator
}

// loops builds the three loops over fresh shared state
func (a *App) loops() []Loop {
	a.State = NewRunState(a.clock, a.cfg.Loops.FPSWindow.Std())

	a.orchestrator = render.NewOrchestrator(a.cfg.Screen.Width, a.cfg.Screen.Height)
	// Player draws last so the glyph stays visible over the status line
	a.orchestrator.Register("hud", NewHUDRenderer(a.State, a.Player), render.PriorityUI)
	a.orchestrator.Register("player", NewPlayerRenderer(a.Player), render.PriorityOverlay)

	input := NewInputLoop(
		NewLoopBase("input", a.State, a.cfg.Loops.Input.Std(), a.Registry),
		a.keys, a.Player, a.sound,
	)
	rnd := NewRenderLoop(
		NewLoopBase("render", a.State, a.cfg.Loops.Render.Std(), a.Registry),
		a.term, a.orchestrator, a.cfg.Screen.OriginX, a.cfg.Screen.OriginY,
	)
	update := NewUpdateLoop(
		NewLoopBase("update", a.State, a.cfg.Loops.Update.Std(), a.Registry),
		a.updater,
	)
	return []Loop{input, rnd, update}
}

// Run starts the loops, waits for shutdown and returns the process exit code
// Shutdown is requested by Escape, by ctx cancellation or by any loop failing
// All loops are joined before the console is restored. Run must be called once
func (a *App) Run(ctx context.Context) (int, error) {
	loops := a.loops()

	a.term.SetCursorVisible(false)

	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() { a.State.Cancel() })
	defer stop()

	for _, l := range loops {
		run := core.Guard(l.Name(), l.Run)
		g.Go(func() error {
			err := run()
			if err != nil {
				a.log.WithField("loop", l.Name()).WithError(err).Error("loop failed")
			}
			return err
		})
	}

	a.log.WithFields(log.Fields{
		"width":  a.cfg.Screen.Width,
		"height": a.cfg.Screen.Height,
		"loops":  len(loops),
	}).Info("running")

	a.awaitCancel(a.cfg.Loops.Coordinator.Std())

	err := g.Wait()
	a.cleanup()
	a.log.WithFields(log.Fields(a.Registry.Snapshot())).Info("stopped")

	if err != nil {
		return ExitFailure, err
	}
	if ctxErr := context.Cause(ctx); ctxErr != nil && !errors.Is(ctxErr, context.Canceled) {
		return ExitFailure, ctxErr
	}
	return ExitOK, nil
}

// awaitCancel polls the shared cancellation flag at a coarse interval
func (a *App) awaitCancel(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !a.State.Cancelled() {
		select {
		case <-ticker.C:
		case <-a.State.Done():
		}
	}
}

// cleanup restores the console exactly once, after every writer has stopped
func (a *App) cleanup() {
	a.cleanupOnce.Do(func() {
		a.term.Clear()
		a.term.SetCursorVisible(true)
	})
}
