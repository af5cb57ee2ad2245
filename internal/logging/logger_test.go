package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestErrorKeyRenamed(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)
	log.Error("compute failed", "error", errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "err=boom") {
		t.Errorf("expected err key, got %q", out)
	}
	if strings.Contains(out, "error=boom") {
		t.Errorf("error key should be renamed, got %q", out)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelWarn)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
}
