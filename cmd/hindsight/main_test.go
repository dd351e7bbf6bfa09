package main

import (
	"flag"
	"testing"

	"github.com/lixenwraith/hindsight/config"
)

func TestApplyFlagsOnlyExplicit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Screen.Height = 40

	if err := flag.Set("width", "100"); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("sound", "true"); err != nil {
		t.Fatal(err)
	}
	applyFlags(&cfg)

	if cfg.Screen.Width != 100 {
		t.Errorf("Expected width 100, got %d", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 40 {
		t.Errorf("Expected unset height flag to keep 40, got %d", cfg.Screen.Height)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected -sound to enable audio")
	}
	if cfg.Debug {
		t.Error("Expected debug untouched")
	}
}
