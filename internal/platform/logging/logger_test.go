package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesServiceAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:          LevelInfo,
		ServiceName:    "campus-league-api",
		ServiceVersion: "test",
		Output:         &buf,
	})

	logger.InfoContext(context.Background(), "standings computed", "teams", 4, "error", errors.New("boom"))

	var entry map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("unmarshal log entry: %v (raw=%s)", err, buf.String())
	}
	if entry["msg"] != "standings computed" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["service"] != "campus-league-api" {
		t.Fatalf("unexpected service: %v", entry["service"])
	}
	if entry["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entry["error"])
	}
	if _, ok := entry["trace_id"]; ok {
		t.Fatalf("did not expect trace_id without a span")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn entry missing: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", raw, got, want)
		}
	}
}

func TestSetMirror_ReceivesEnabledEntries(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf})
	logger.Debug("skipped")
	logger.WarnContext(context.Background(), "team delete refused", "team_id", 3)

	if len(got) != 1 || got[0] != "warn:team delete refused" {
		t.Fatalf("unexpected mirrored entries: %v", got)
	}
}
