package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-squash/internal/config"
	"github.com/vovakirdan/tui-squash/internal/core"
	"github.com/vovakirdan/tui-squash/internal/registry"

	// Registers the built-in variants
	_ "github.com/vovakirdan/tui-squash/internal/games/squash"
)

// newLogger builds the CLI logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "squash",
		Level:           lvl,
	}), nil
}

// openLogOutput returns the log destination: the log file when set, else
// fallback. The returned close func is never nil.
func openLogOutput(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }, nil
}

// loadConfig resolves the effective config: file search, then the variant's
// policy when one is named, then the difficulty preset.
func loadConfig(path, variantID, difficulty string) (config.SquashConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.SquashConfig{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if variantID != "" {
		v, err := registry.Get(variantID)
		if err != nil {
			return cfg, err
		}
		cfg.Policy = v.Policy
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// runtimeConfig builds the engine runtime for a width x height viewport.
func runtimeConfig(width, height int, cfg config.SquashConfig) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:     width,
		ScreenH:     height,
		ScaleFactor: cfg.Display.ScaleFactor,
		TickRate:    flagFPS,
		Seed:        seed,
	}
}
