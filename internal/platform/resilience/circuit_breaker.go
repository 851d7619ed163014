package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// CircuitBreaker sheds load from a struggling upstream. A streak of
// consecutive failures trips it open; after the open timeout a limited
// number of probe requests decide whether it closes again.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig

	mu        sync.Mutex
	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	probeWins int
	now       func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		cfg: cfg.withDefaults(),
		now: time.Now,
	}
}

// Allow reports whether a request may proceed. Half-open admits at
// most HalfOpenMaxReq probes at a time.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.advance() {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.probes >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probes++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.advance() {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		if b.probes > 0 {
			b.probes--
		}
		b.probeWins++
		if b.probeWins >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.reset()
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.advance() {
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	case StateHalfOpen:
		// One failed probe sends it straight back to open.
		b.trip()
	case StateOpen:
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.advance()
}

// advance applies the open -> half-open timeout transition and returns
// the effective state. Callers hold the lock.
func (b *CircuitBreaker) advance() CircuitState {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		b.state = StateHalfOpen
		b.probes = 0
		b.probeWins = 0
	}
	return b.state
}

func (b *CircuitBreaker) trip() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.probes = 0
	b.probeWins = 0
}

func (b *CircuitBreaker) reset() {
	b.state = StateClosed
	b.failures = 0
	b.probes = 0
	b.probeWins = 0
	b.openedAt = time.Time{}
}
