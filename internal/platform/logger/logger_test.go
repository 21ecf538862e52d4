package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Expected JSON log output, got %v", err)
	}
	if entry["msg"] != "visible" {
		t.Errorf("Expected msg 'visible', got %v", entry["msg"])
	}
	if entry["level"] != "WARN" {
		t.Errorf("Expected level WARN, got %v", entry["level"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"fatal":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q): expected %v, got %v", input, want, got)
		}
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info").With("trace_id", "abc123")

	ctx := WithLogger(context.Background(), log)
	if FromContext(ctx) != log {
		t.Error("Expected FromContext to return the stored logger")
	}

	// Without a stored logger, fall back to the supplied default.
	def := New(&buf, "info")
	if FromContextOrDefault(context.Background(), def) != def {
		t.Error("Expected FromContextOrDefault to fall back to the default logger")
	}
}
