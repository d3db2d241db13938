// Package circuit provides a two-state circuit breaker for remote calls.
package circuit

import "sync"

// Breaker trips after a run of consecutive failures and closes again after
// a run of consecutive successes. While open, callers should skip the call
// and fall back to deferred retry.
type Breaker struct {
	mu               sync.Mutex
	open             bool
	failureCount     int
	successCount     int
	failureThreshold int
	successThreshold int
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithFailureThreshold sets how many consecutive failures open the circuit.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failureThreshold = n
		}
	}
}

// WithSuccessThreshold sets how many consecutive successes close it again.
func WithSuccessThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.successThreshold = n
		}
	}
}

// New returns a closed breaker. Defaults: 5 failures to open, 1 success to close.
func New(opts ...Option) *Breaker {
	b := &Breaker{
		failureThreshold: 5,
		successThreshold: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// IsOpen reports whether the circuit has tripped.
func (b *Breaker) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// RecordFailure counts a failed call. It returns true when this failure
// transitioned the circuit from closed to open.
func (b *Breaker) RecordFailure() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount++
	b.successCount = 0

	if b.open {
		return false
	}
	if b.failureCount >= b.failureThreshold {
		b.open = true
		return true
	}
	return false
}

// RecordSuccess counts a successful call. It returns true when this success
// transitioned the circuit from open to closed.
func (b *Breaker) RecordSuccess() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		b.failureCount = 0
		return false
	}
	b.successCount++
	if b.successCount >= b.successThreshold {
		b.open = false
		b.failureCount = 0
		b.successCount = 0
		return true
	}
	return false
}

// Reset forces the circuit closed and clears all counts.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.open = false
	b.failureCount = 0
	b.successCount = 0
}
