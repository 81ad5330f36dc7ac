package log

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLReturnsLogger(t *testing.T) {
	if L() == nil {
		t.Fatal("L returned nil")
	}
	if L() != L() {
		t.Error("L not stable across calls")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SCREENPLY_LOG_LEVEL", "debug")
	t.Setenv("SCREENPLY_LOG_FORMAT", "json")
	t.Setenv("SCREENPLY_LOG_FILE", "")
	opts := FromEnv()
	if opts.Level != "debug" || opts.Format != "json" || opts.File != "" {
		t.Errorf("FromEnv = %+v", opts)
	}
}
