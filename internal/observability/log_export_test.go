package observability

import (
	"errors"
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsHealthProbeLog(t *testing.T) {
	if !isHealthProbeLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health probe log to be skipped")
	}
	if isHealthProbeLog("http request", []any{"path", "/v1/standings"}) {
		t.Fatalf("did not expect standings request to be skipped")
	}
	if isHealthProbeLog("list standings failed", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-access log to be skipped")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"team_id", int64(4), "error", errors.New("boom"), 7, "x", "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "team_id" || attrs[0].Value.AsInt64() != 4 {
		t.Fatalf("unexpected team_id attribute: %+v", attrs[0])
	}
	if attrs[1].Value.AsString() != "boom" {
		t.Fatalf("unexpected error attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "arg_2" {
		t.Fatalf("expected positional key for non-string key, got %q", attrs[2].Key)
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute: %+v", attrs[3])
	}
}

func TestOTelSeverity(t *testing.T) {
	cases := map[zapcore.Level]otellog.Severity{
		zapcore.DebugLevel: otellog.SeverityDebug,
		zapcore.InfoLevel:  otellog.SeverityInfo,
		zapcore.WarnLevel:  otellog.SeverityWarn,
		zapcore.ErrorLevel: otellog.SeverityError,
		zapcore.FatalLevel: otellog.SeverityFatal,
	}
	for level, want := range cases {
		if got := otelSeverity(level); got != want {
			t.Fatalf("otelSeverity(%s)=%v want %v", level, got, want)
		}
	}
}
