// Package logging builds the slog logger used across pokeroll
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/KirkDiggler/pokeroll/internal/errors"
)

// Levels accepted by Config.Level
var Levels = []string{"debug", "info", "warn", "error"}

// Config controls the logger
type Config struct {
	// Level is one of Levels (optional, defaults to warn)
	Level string
	// Writer receives log lines (optional, defaults to stderr)
	Writer io.Writer
	// NoColor disables ANSI colors
	NoColor bool
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	if cfg.Level == "" {
		cfg.Level = "warn"
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Level", cfg.Level, Levels, vb)
	return vb.Build()
}

// NewLogger creates the logger and installs it as the slog default.
// Stdout is never used; it carries program output only.
func NewLogger(cfg *Config) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid logging config")
	}

	logger := slog.New(tint.NewHandler(cfg.Writer, &tint.Options{
		Level:      parseLevel(cfg.Level),
		TimeFormat: time.RFC3339,
		NoColor:    cfg.NoColor,
	}))
	slog.SetDefault(logger)

	return logger, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
