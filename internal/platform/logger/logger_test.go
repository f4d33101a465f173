package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"recordkeeper/internal/platform/logger"
)

func TestInitAndRequestScoping(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: &buf, Service: "test"})

	ctx := logger.WithRequest(context.Background(), "req-123")
	logger.C(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Fatalf("expected request_id in output, got %q", out)
	}
	if !strings.Contains(out, `"service":"test"`) {
		t.Fatalf("expected service field in output, got %q", out)
	}
}

func TestCWithoutRequestID(t *testing.T) {
	// no request id on the context: C falls back to the root logger
	if logger.C(context.Background()) == nil {
		t.Fatalf("C must never return nil")
	}
}

func TestNamed(t *testing.T) {
	if logger.Named("batch") == nil {
		t.Fatalf("Named must never return nil")
	}
}
