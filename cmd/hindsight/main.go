package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/hindsight/audio"
	"github.com/lixenwraith/hindsight/config"
	"github.com/lixenwraith/hindsight/constants"
	"github.com/lixenwraith/hindsight/core"
	"github.com/lixenwraith/hindsight/engine"
	"github.com/lixenwraith/hindsight/terminal"
)

var (
	configFlag = flag.String("config", "hindsight.toml", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/"+logFileName)
	soundFlag  = flag.Bool("sound", false, "Enable step and quit sounds")
	widthFlag  = flag.Int("width", 0, "Screen width in cells")
	heightFlag = flag.Int("height", 0, "Screen height in cells")
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic Recovery: restore the terminal even if startup or shutdown panics
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return engine.ExitFailure
	}
	cfg.ApplyEnv()
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		return engine.ExitFailure
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("configuration resolved")

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "hindsight requires an interactive terminal")
		return engine.ExitFailure
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		return engine.ExitFailure
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return engine.ExitFailure
	}
	core.RegisterCrashTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	app := engine.NewApp(cfg, screen, screen)

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		} else {
			defer func() {
				sm.Drain(constants.QuitSoundDrainTimeout)
				sm.Cleanup()
			}()
			app.SetSound(sm)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := app.Run(ctx)

	// Output below must land on the restored console
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hindsight: %v\n", err)
		return code
	}
	fmt.Println("Main thread ended")
	return code
}

// applyFlags overrides cfg with flags given explicitly on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "sound":
			cfg.Audio.Enabled = *soundFlag
		case "width":
			cfg.Screen.Width = *widthFlag
		case "height":
			cfg.Screen.Height = *heightFlag
		}
	})
}
