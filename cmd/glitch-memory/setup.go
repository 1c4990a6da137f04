package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/iamraziq/glitch-memory/internal/config"
	"github.com/iamraziq/glitch-memory/internal/core"
	"github.com/iamraziq/glitch-memory/internal/games/memory"
	"github.com/iamraziq/glitch-memory/internal/storage"
)

const logFileName = "glitch-memory.log"

// newLogger builds the process logger at --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// fileLogger logs to ~/.glitch-memory/glitch-memory.log, since the
// terminal belongs to the game while it runs. The returned func closes
// the file.
func fileLogger() (*log.Logger, func(), error) {
	path := config.UserPath(logFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f, "glitch-memory")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	memory.SetLogger(logger)
	return logger, func() { f.Close() }, nil
}

// openStore opens the database. Failures are reported and the game
// runs without saves or scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// checkConfig loads memory.yaml the way the game will and rejects it
// before the terminal is taken over.
func checkConfig() error {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Profile:  flagProfile,
	}
}
