// Package ratelimit enforces per-route, per-key request quotas over fixed
// time windows with pluggable storage. Policy resolution (how many requests,
// over which window, keyed by what) belongs to configuration; the limiter
// only consumes the resolved policy. Implementations are safe for
// concurrent use.
package ratelimit

import (
	"context"
	"errors"
	"time"
)

// KeyBy selects how callers derive the subject key for a route.
type KeyBy string

const (
	// KeyByIP keys windows on the caller's network address.
	KeyByIP KeyBy = "ip"

	// KeyBySubject keys windows on the authenticated subject identifier.
	KeyBySubject KeyBy = "subject"
)

// Policy is the resolved quota for one named route.
type Policy struct {
	// Max is the number of requests admitted per window.
	Max int64

	// Window is the quota interval length. Zero falls back to the store
	// default.
	Window time.Duration

	// KeyBy names the subject key strategy the route was resolved with.
	// The store treats keys as opaque; callers must supply keys consistent
	// with this strategy.
	KeyBy KeyBy
}

// Validate rejects policies that can never admit a request.
func (p Policy) Validate() error {
	if p.Max <= 0 {
		return errors.New("ratelimit: policy max must be positive")
	}
	if p.Window < 0 {
		return errors.New("ratelimit: policy window must not be negative")
	}
	return nil
}

// Result describes the window state after a Record call.
type Result struct {
	// Count is the number of requests observed in the current window,
	// including this one.
	Count int64

	// Limit echoes the policy maximum.
	Limit int64

	// Remaining is the number of requests left before the window is over
	// budget.
	Remaining int64

	// ResetAt is when the current window expires.
	ResetAt time.Time

	// RetryAfter is how long to wait before a request would be admitted
	// again. Zero while the window is within budget.
	RetryAfter time.Duration
}

// Stats describes store occupancy for operational introspection.
type Stats struct {
	// Size is the number of tracked windows across all routes.
	Size int

	// MaxSize is the per-route window capacity.
	MaxSize int

	// Window is the store's default window length.
	Window time.Duration
}

// Store is the interface for rate limit storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Record counts one request against the (route, key) window. An
	// expired window restarts at count 1; a full route bucket evicts its
	// oldest key to admit the new one.
	Record(ctx context.Context, route, key string, policy Policy) (Result, error)

	// IsLimited reports whether the (route, key) window is over budget.
	// Absent or expired windows are never limited. A window is over
	// budget once its count exceeds policy.Max, so with the
	// record-then-check call order, exactly policy.Max requests pass per
	// window.
	IsLimited(ctx context.Context, route, key string, policy Policy) (bool, error)

	// Stats reports current occupancy.
	Stats() Stats

	// Clear drops every tracked window. Intended for tests and
	// operational resets.
	Clear()

	// Close releases any resources used by the store.
	Close() error
}
