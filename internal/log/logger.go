// Package log provides the application's slog-based logging with a small
// configuration surface. Values can come from the environment:
//
//	SCREENPLY_LOG_LEVEL=debug|info|warn|error
//	SCREENPLY_LOG_FORMAT=console|json
//	SCREENPLY_LOG_FILE=<path> (enables rotating file logging)
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level  string
	Format string // "console" or "json"
	File   string // optional path for rotated file logging
}

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

// L returns the default logger, initializing it from the environment on
// first use.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// FromEnv builds Options from SCREENPLY_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:  os.Getenv("SCREENPLY_LOG_LEVEL"),
		Format: os.Getenv("SCREENPLY_LOG_FORMAT"),
		File:   os.Getenv("SCREENPLY_LOG_FILE"),
	}
}

// Init configures the default logger and slog.Default.
func Init(opts Options) {
	var w io.Writer = os.Stderr
	if opts.File != "" {
		w = &lj.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	l := slog.New(h)
	mu.Lock()
	logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
