package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(failureThreshold, halfOpenMaxReq int) *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: failureThreshold,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   halfOpenMaxReq,
	})
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(3, 1)

	for i := 0; i < 2; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("expected closed breaker to allow, got %v", err)
		}
		b.RecordFailure()
	}
	if b.State() != StateClosed {
		t.Fatalf("expected closed below threshold, got %s", b.State())
	}

	b.RecordFailure()
	if b.State() != StateOpen {
		t.Fatalf("expected open at threshold, got %s", b.State())
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen while open, got %v", err)
	}
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(2, 1)

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	if b.State() != StateClosed {
		t.Fatalf("expected success to reset the failure streak, got %s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(1, 1)
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected rejection right after opening, got %v", err)
	}

	now = now.Add(16 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}

	b.RecordSuccess()
	if b.State() != StateClosed {
		t.Fatalf("expected probe success to close the breaker, got %s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(1, 1)
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(16 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected probe failure to reopen the breaker, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenLimitsInFlight(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(1, 2)
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(16 * time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("first probe should pass, got %v", err)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("second probe should pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected third probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	b.RecordSuccess()
	if b.State() != StateClosed {
		t.Fatalf("expected breaker to close after all probes succeed, got %s", b.State())
	}
}

func TestCircuitBreaker_ZeroConfigGetsDefaults(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{})

	for i := 0; i < defaultFailureThreshold-1; i++ {
		b.RecordFailure()
	}
	if b.State() != StateClosed {
		t.Fatalf("expected closed below the default threshold, got %s", b.State())
	}

	b.RecordFailure()
	if b.State() != StateOpen {
		t.Fatalf("expected open at the default threshold, got %s", b.State())
	}
}
