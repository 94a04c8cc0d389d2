// Package logging configures zerolog. The TUI owns the terminal, so logs
// go to a file unless the destination is "-" (stderr).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPath returns $XDG_STATE_HOME/hangman/hangman.log, falling back to
// ~/.local/state/hangman/hangman.log.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "hangman", "hangman.log"), nil
}

// New returns a logger writing JSON lines to path at level. A path of "-"
// writes human-readable output to stderr. The returned closer releases
// the file.
func New(path, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	if path == "-" {
		cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nopCloser{}, nil
	}

	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	log := zerolog.New(f).Level(lvl).With().Timestamp().Int("pid", os.Getpid()).Logger()
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
