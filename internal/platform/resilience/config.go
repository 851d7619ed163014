package resilience

import "time"

// Defaults sized for a single rate-limited fixtures provider: trip
// after a burst of consecutive failures, back off briefly, then let a
// couple of probe requests through.
const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

// CircuitBreakerConfig tunes the breaker sitting in front of an
// upstream client. Enabled is read by the client that owns the
// breaker; the breaker itself consumes only the thresholds.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaultFailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}
	return c
}
