package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"pronotes/internal/config"
)

// New returns the logger for the given environment and level: pretty text
// for local development, JSON elsewhere. Unknown levels fall back to INFO.
func New(env, level string) *slog.Logger {
	lvl := parseLevel(level)

	switch env {
	case config.EnvLocal:
		return setupPrettySlog(lvl)
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: lvl,
		}))
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupPrettySlog(lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
}
