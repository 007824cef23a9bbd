package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"grid-snake/game/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != types.DefaultConfig() {
		t.Errorf("empty path gave %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
width: 12
height: 10
tick_period: 250ms
head_cell:
  col: 3
  row: 2
seed: 99
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := types.DefaultConfig()
	want.Width, want.Height = 12, 10
	want.TickPeriod = 250 * time.Millisecond
	want.HeadCell = types.Cell{Col: 3, Row: 2}
	want.Seed = 99
	if cfg != want {
		t.Errorf("loaded %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("missing file: %v", err)
	}
	path := writeConfig(t, "widht: 12\n")
	if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("unknown key: %v", err)
	}
}

func TestOverridesOnlyExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	var opts overrides
	opts.register(fs)
	if err := fs.Parse([]string{"-period", "100ms", "-seed", "5"}); err != nil {
		t.Fatal(err)
	}

	cfg := types.DefaultConfig()
	cfg.Width = 12
	opts.apply(fs, &cfg)
	if cfg.TickPeriod != 100*time.Millisecond || cfg.Seed != 5 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Width != 12 {
		t.Errorf("unset -width clobbered the file value: %d", cfg.Width)
	}
}
