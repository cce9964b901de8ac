// Package retry holds the two retry mechanisms of the sync engine: a
// per-record attempt counter for push rejections, and the exponential
// backoff used around whole push/pull operations inside a background sync.
package retry

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultMaxAttempts is the push retry budget per record. A record that is
// rejected this many times in a row is parked in error status until the
// user retries it explicitly.
const DefaultMaxAttempts = 3

// Policy counts consecutive push rejections per record id. Counters live in
// memory only: a process restart grants a fresh budget, which is acceptable
// because the authoritative state (pending/error) is persisted with the
// record itself.
type Policy struct {
	attempts map[string]int
	max      int
}

// NewPolicy creates a policy with the given per-record budget.
// maxAttempts <= 0 falls back to DefaultMaxAttempts.
func NewPolicy(maxAttempts int) *Policy {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Policy{
		attempts: make(map[string]int),
		max:      maxAttempts,
	}
}

// Fail records one more rejection for the record and reports the attempt
// number together with whether budget remains. Once the budget is gone the
// counter is dropped: an explicit user retry starts over.
func (p *Policy) Fail(id string) (attempt int, exhausted bool) {
	p.attempts[id]++
	attempt = p.attempts[id]
	if attempt >= p.max {
		delete(p.attempts, id)
		return attempt, true
	}
	return attempt, false
}

// Reset clears the counter after a successful push or an explicit user retry.
func (p *Policy) Reset(id string) {
	delete(p.attempts, id)
}

// MaxAttempts returns the per-record budget.
func (p *Policy) MaxAttempts() int {
	return p.max
}

// NewBackOff builds the whole-operation backoff used by background sync:
// exponential starting at base, doubling per attempt, capped at maxRetries
// retries. Zero values pick the defaults (500ms base, 2 retries).
func NewBackOff(base time.Duration, maxRetries uint64) backoff.BackOff {
	if base <= 0 {
		base = 500 * time.Millisecond
	}
	if maxRetries == 0 {
		maxRetries = 2
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = base
	bo.Multiplier = 2
	bo.RandomizationFactor = 0

	return backoff.WithMaxRetries(bo, maxRetries)
}
