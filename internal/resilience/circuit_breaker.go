// Package resilience provides a resilient HTTP client wrapper with a circuit
// breaker, timeouts, and retry logic for outbound feed calls.
package resilience

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// Trip thresholds for DefaultReadyToTrip.
const (
	tripMinRequests  = 5
	tripFailureRatio = 0.5
)

// CircuitBreakerConfig holds configuration for the circuit breaker.
type CircuitBreakerConfig struct {
	// Name identifies the circuit breaker for logging.
	Name string

	// MaxRequests is the maximum number of requests allowed in half-open
	// state. Default: 1
	MaxRequests uint32

	// Interval is the cyclic period for clearing internal counts when
	// closed. Default: 0 (disabled)
	Interval time.Duration

	// Timeout is the period of open state before switching to half-open.
	// Default: 60 seconds
	Timeout time.Duration

	// ReadyToTrip determines when to trip the circuit breaker. If nil, uses
	// DefaultReadyToTrip.
	ReadyToTrip func(counts gobreaker.Counts) bool

	// OnStateChange is called when the circuit breaker state changes.
	OnStateChange func(name string, from gobreaker.State, to gobreaker.State)
}

// DefaultCircuitBreakerConfig returns a sensible default configuration.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:        name,
		MaxRequests: 1,
		Timeout:     60 * time.Second,
		ReadyToTrip: DefaultReadyToTrip,
	}
}

// DefaultReadyToTrip trips once at least tripMinRequests requests have been
// seen and at least half of them failed.
func DefaultReadyToTrip(counts gobreaker.Counts) bool {
	if counts.Requests < tripMinRequests {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= tripFailureRatio
}

// NewCircuitBreaker creates a new circuit breaker with the given
// configuration.
func NewCircuitBreaker[T any](cfg CircuitBreakerConfig) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:          cfg.Name,
		MaxRequests:   cfg.MaxRequests,
		Interval:      cfg.Interval,
		Timeout:       cfg.Timeout,
		ReadyToTrip:   cfg.ReadyToTrip,
		OnStateChange: cfg.OnStateChange,
	})
}
