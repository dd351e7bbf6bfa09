// Package config loads runtime settings from defaults, an optional TOML file and
// environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/hindsight/constants"
)

// Duration is a time.Duration decoded from strings such as "16ms"
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Screen is the console area the frame buffer covers
type Screen struct {
	Width   int `toml:"width"`
	Height  int `toml:"height"`
	OriginX int `toml:"origin_x"`
	OriginY int `toml:"origin_y"`
}

// Player is the initial entity state
type Player struct {
	StartX int    `toml:"start_x"`
	StartY int    `toml:"start_y"`
	Glyph  string `toml:"glyph"`
}

// Loops holds per-loop pacing; 0 for Update means yield-only
type Loops struct {
	Input       Duration `toml:"input"`
	Update      Duration `toml:"update"`
	Render      Duration `toml:"render"`
	Coordinator Duration `toml:"coordinator"`
	FPSWindow   Duration `toml:"fps_window"`
}

// Audio controls the optional step sounds
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Config is the full runtime configuration
type Config struct {
	Screen Screen `toml:"screen"`
	Player Player `toml:"player"`
	Loops  Loops  `toml:"loops"`
	Audio  Audio  `toml:"audio"`
	Debug  bool   `toml:"debug"`
}

// DefaultConfig returns the fixed 80x25 console setup
func DefaultConfig() Config {
	return Config{
		Screen: Screen{
			Width:  constants.ScreenWidth,
			Height: constants.ScreenHeight,
		},
		Player: Player{
			StartX: constants.PlayerStartX,
			StartY: constants.PlayerStartY,
			Glyph:  string(constants.PlayerGlyph),
		},
		Loops: Loops{
			Input:       Duration(constants.InputPollInterval),
			Update:      Duration(constants.GameUpdateInterval),
			Render:      Duration(constants.FrameUpdateInterval),
			Coordinator: Duration(constants.CoordinatorPollInterval),
			FPSWindow:   Duration(constants.FPSSampleWindow),
		},
		Audio: Audio{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// Load reads a TOML file over the defaults
// A missing file yields defaults without error
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		log.WithField("key", key.String()).Warn("unknown config key ignored")
	}
	return cfg, nil
}

// ApplyEnv overrides fields from HINDSIGHT_* environment variables
// Unparseable values are logged and ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("HINDSIGHT_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Screen.Width = n
		} else {
			log.WithField("HINDSIGHT_WIDTH", v).Warn("ignoring invalid value")
		}
	}
	if v := os.Getenv("HINDSIGHT_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Screen.Height = n
		} else {
			log.WithField("HINDSIGHT_HEIGHT", v).Warn("ignoring invalid value")
		}
	}
	if v := os.Getenv("HINDSIGHT_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			log.WithField("HINDSIGHT_AUDIO", v).Warn("ignoring invalid value")
		}
	}
	if v := os.Getenv("HINDSIGHT_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else {
			log.WithField("HINDSIGHT_DEBUG", v).Warn("ignoring invalid value")
		}
	}
}

// Validate rejects configurations the loops cannot run with
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if utf8.RuneCountInString(c.Player.Glyph) != 1 {
		return fmt.Errorf("player glyph must be a single character, got %q", c.Player.Glyph)
	}
	if c.Loops.Render <= 0 {
		return fmt.Errorf("render interval must be positive, got %s", c.Loops.Render.Std())
	}
	if c.Loops.Coordinator <= 0 {
		return fmt.Errorf("coordinator interval must be positive, got %s", c.Loops.Coordinator.Std())
	}
	if c.Loops.FPSWindow <= 0 {
		return fmt.Errorf("fps window must be positive, got %s", c.Loops.FPSWindow.Std())
	}
	if c.Loops.Input < 0 || c.Loops.Update < 0 {
		return errors.New("input and update intervals must not be negative")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0,1], got %g", c.Audio.Volume)
	}
	return nil
}

// Glyph returns the player glyph as a rune
func (c Config) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Player.Glyph)
	return r
}
