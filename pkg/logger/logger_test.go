package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSeverityHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newSeverityHandler(&buf, slog.LevelInfo)).With("request_id", "r-1")

	log.Debug("hidden")
	log.Warn("tool fault", "tool", "calculator", "error", errors.New("boom"))

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not a single JSON line: %v (%q)", err, buf.String())
	}
	if event["severity"] != "WARNING" || event["message"] != "tool fault" {
		t.Fatalf("unexpected event: %v", event)
	}
	data, ok := event["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data: %v", event)
	}
	if data["request_id"] != "r-1" || data["tool"] != "calculator" || data["error"] != "boom" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestContextLogger(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Fatalf("expected default logger without one in context")
	}

	base := slog.New(NewTestHandler(slog.LevelInfo))
	ctx := ToContext(context.Background(), base)
	if FromContext(ctx) != base {
		t.Fatalf("expected stored logger")
	}

	enriched, ctx := With(ctx, "intent", "time")
	if FromContext(ctx) != enriched {
		t.Fatalf("With did not store the enriched logger")
	}
	if FromContextOr(context.Background(), nil) != slog.Default() {
		t.Fatalf("nil fallback should resolve to the default logger")
	}
}

func TestForFormat(t *testing.T) {
	if _, ok := ForFormat("text")(slog.LevelInfo).(*slog.TextHandler); !ok {
		t.Fatalf("text format should use slog's text handler")
	}
	if _, ok := ForFormat("json")(slog.LevelInfo).(*severityHandler); !ok {
		t.Fatalf("json format should use the severity handler")
	}
}
