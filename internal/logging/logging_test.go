package logging

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"nba-chat-service/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.raw); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatal("expected a usable logger from a zero config")
	}
	if NewLogger(Config{Level: "debug", Format: "json", Service: "svc", Version: "dev"}) == nil {
		t.Fatal("expected a usable logger")
	}
}

func TestFromContext(t *testing.T) {
	fallback, _ := testutil.NewBufferLogger()

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback when no logger stored")
	}

	scoped, _ := testutil.NewBufferLogger()
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatal("expected the stored logger")
	}

	if got := FromContext(nil, fallback); got != fallback {
		t.Fatal("expected fallback for a nil context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
}

func TestErrorHelperAppendsError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()

	Error(logger, "lookup failed", errors.New("boom"), FieldPlayer, "Kobe Bryant")

	out := buf.String()
	for _, want := range []string{"lookup failed", "error=boom", "Kobe Bryant"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}
