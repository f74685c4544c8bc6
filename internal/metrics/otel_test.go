package metrics

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabledReturnsNoopComponents(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("expected nil handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "test-service",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil || handler == nil {
		t.Fatal("expected recorder and handler")
	}

	// Instruments should accept recordings without panicking.
	rec.RecordFeedAttempt("drivers", 10*time.Millisecond, nil)
	rec.RecordProbe(1, true)
	rec.RecordCascadeExhausted()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}
