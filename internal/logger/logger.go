package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/console-banking-ledger/internal/config"
)

// NewLogger creates and configures a new slog.Logger writing to the configured output
func NewLogger(cfg *config.Config) *slog.Logger {
	return NewLoggerWithWriter(cfg, outputWriter(cfg.Logging.Output))
}

// NewLoggerWithWriter creates a JSON slog.Logger at the configured level writing to w
func NewLoggerWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
		// Add source code location to log output
		AddSource: level == slog.LevelDebug,
	}

	logger := slog.New(slog.NewJSONHandler(w, opts)).With(
		"app", cfg.Application.Name,
		"env", cfg.Application.Env,
	)

	logger.Debug("logger initialized", "level", level)

	return logger
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case config.LogOutputStdout:
		return os.Stdout
	case config.LogOutputNone:
		return io.Discard
	default:
		return os.Stderr
	}
}
