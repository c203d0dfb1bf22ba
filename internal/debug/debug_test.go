package debug

import (
	"log/slog"
	"strings"
	"testing"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		level   int
		wantErr bool
	}{
		{name: "unset", set: false, level: 0},
		{name: "empty", value: "", set: true, level: 0},
		{name: "zero", value: "0", set: true, level: 0},
		{name: "positive", value: "2", set: true, level: 2},
		{name: "garbage", value: "verbose", set: true, level: 0, wantErr: true},
		{name: "negative", value: "-1", set: true, level: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("DEBUG", tt.value)
			}

			cfg, err := FromEnv()
			if tt.wantErr && err == nil {
				t.Fatalf("FromEnv() with DEBUG=%q should report an error", tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("FromEnv() failed: %v", err)
			}
			if cfg.Level != tt.level {
				t.Errorf("FromEnv() level = %d, want %d", cfg.Level, tt.level)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	if got := (Config{Level: 0}).SlogLevel(); got != slog.LevelInfo {
		t.Errorf("level 0 → %v, want info", got)
	}
	if got := (Config{Level: 1}).SlogLevel(); got != slog.LevelDebug {
		t.Errorf("level 1 → %v, want debug", got)
	}
}

func TestNewLoggerFiltersDebug(t *testing.T) {
	var quiet strings.Builder
	NewLogger(&quiet, Config{Level: 0}).Debug("hidden")
	if quiet.Len() != 0 {
		t.Errorf("level 0 logger emitted debug output: %q", quiet.String())
	}

	var chatty strings.Builder
	NewLogger(&chatty, Config{Level: 1}).Debug("shown", "key", "value")
	if !strings.Contains(chatty.String(), "shown") {
		t.Errorf("level 1 logger swallowed debug output: %q", chatty.String())
	}
}
