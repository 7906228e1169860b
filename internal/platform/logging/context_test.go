package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace ID, got %q", got)
	}
	ctx := withTraceID(context.Background(), "trace-abc")
	if got := TraceIDFromContext(ctx); got != "trace-abc" {
		t.Fatalf("expected trace-abc, got %q", got)
	}
	if got := withTraceID(ctx, ""); got != ctx {
		t.Fatal("expected empty ID to leave context untouched")
	}
}

func TestLoggerFromContextFallsBackToShared(t *testing.T) {
	if got := LoggerFromContext(context.Background()); got != Logger() {
		t.Fatal("expected shared logger when context has none")
	}
	//nolint:staticcheck // nil context is handled explicitly
	if got := LoggerFromContext(nil); got != Logger() {
		t.Fatal("expected shared logger for nil context")
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogError(ctx, "failed", errors.New("boom"), zap.String("foo", "bar"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["foo"] != "bar" {
		t.Fatalf("expected foo field, got %+v", fields)
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error field, got %+v", fields)
	}
}

func TestLogErrorWithoutError(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogError(ctx, "failed", nil)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["error"]; ok {
		t.Fatal("did not expect error field")
	}
}

func TestLogInfoAndWarnLevels(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogInfo(ctx, "info message")
	LogWarn(ctx, "warn message")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != "info message" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != "warn message" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}
