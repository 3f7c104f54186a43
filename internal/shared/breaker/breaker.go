// Package breaker implements a circuit breaker guarding calls to an
// unreliable remote dependency. The breaker tracks consecutive failures,
// short-circuits calls while the dependency is considered unhealthy, and
// probes for recovery after a cooldown period.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrOpen is returned by Execute when the breaker rejects a call without
// invoking the operation.
var ErrOpen = errors.New("breaker: circuit is open")

// State identifies the breaker position in its lifecycle.
type State int

const (
	// StateClosed allows all calls through.
	StateClosed State = iota
	// StateOpen rejects all calls until the cooldown elapses.
	StateOpen
	// StateHalfOpen allows a bounded number of trial calls to probe recovery.
	StateHalfOpen
)

// String returns the lowercase state name used in logs and metrics.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

const (
	defaultFailureThreshold    = 5
	defaultCooldown            = 30 * time.Second
	defaultHalfOpenMaxAttempts = 1
)

// Config controls breaker thresholds and hooks.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the
	// breaker. Defaults to 5.
	FailureThreshold int

	// Cooldown is how long the breaker stays open before admitting trial
	// calls. Defaults to 30s.
	Cooldown time.Duration

	// HalfOpenMaxAttempts is the number of consecutive successful trial
	// calls required to close the breaker again. It also bounds how many
	// trial calls may run at once while half-open. Defaults to 1.
	HalfOpenMaxAttempts int

	// IsFailure classifies an operation error for breaker accounting.
	// Errors it rejects release their trial slot without moving the state
	// machine. When nil, every non-nil error counts as a failure.
	IsFailure func(error) bool

	// OnStateChange is invoked after every state transition. It runs
	// outside the breaker lock and may block without stalling other calls.
	OnStateChange func(from, to State)

	// Clock overrides the time source. Defaults to time.Now.
	Clock func() time.Time
}

// Breaker is a three-state circuit breaker. The zero value is not usable;
// construct instances with New. Methods are safe for concurrent use.
type Breaker struct {
	cfg Config

	mu             sync.Mutex
	state          State
	failures       int
	lastFailure    time.Time
	halfOpenProbes int // consecutive successful trial calls
	inFlightProbes int // trial calls currently executing
}

// New returns a breaker in the closed state.
func New(cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultCooldown
	}
	if cfg.HalfOpenMaxAttempts <= 0 {
		cfg.HalfOpenMaxAttempts = defaultHalfOpenMaxAttempts
	}
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return err != nil }
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Breaker{cfg: cfg}
}

// State reports the effective state, promoting an open breaker to half-open
// once the cooldown has elapsed.
func (b *Breaker) State() State {
	b.mu.Lock()
	state, promoted := b.currentStateLocked()
	b.mu.Unlock()

	if promoted {
		b.notify(StateOpen, StateHalfOpen)
	}
	return state
}

// Execute runs op if the breaker admits the call. When the breaker is open,
// or half-open with no free trial slot, Execute returns ErrOpen without
// invoking op. Otherwise the operation's error is returned as observed and
// breaker accounting happens as a side effect.
func (b *Breaker) Execute(ctx context.Context, op func(context.Context) error) error {
	probe, err := b.beforeAttempt()
	if err != nil {
		return err
	}

	opErr := op(ctx)

	b.afterAttempt(probe, opErr)
	return opErr
}

// beforeAttempt admits or rejects a call. It reports whether the admitted
// call occupies a half-open trial slot.
func (b *Breaker) beforeAttempt() (probe bool, err error) {
	b.mu.Lock()
	state, promoted := b.currentStateLocked()

	switch state {
	case StateOpen:
		b.mu.Unlock()
		return false, ErrOpen
	case StateHalfOpen:
		if b.inFlightProbes >= b.cfg.HalfOpenMaxAttempts {
			b.mu.Unlock()
			if promoted {
				b.notify(StateOpen, StateHalfOpen)
			}
			return false, ErrOpen
		}
		b.inFlightProbes++
		b.mu.Unlock()
		if promoted {
			b.notify(StateOpen, StateHalfOpen)
		}
		return true, nil
	default:
		b.mu.Unlock()
		return false, nil
	}
}

func (b *Breaker) afterAttempt(probe bool, opErr error) {
	success := opErr == nil
	failed := !success && b.cfg.IsFailure(opErr)

	b.mu.Lock()
	if probe {
		b.inFlightProbes--
	}

	var from, to State
	transitioned := false

	switch {
	case failed:
		b.failures++
		b.lastFailure = b.cfg.Clock()
		if b.state == StateHalfOpen {
			from, to, transitioned = StateHalfOpen, StateOpen, true
			b.state = StateOpen
			b.halfOpenProbes = 0
		} else if b.state == StateClosed && b.failures >= b.cfg.FailureThreshold {
			from, to, transitioned = StateClosed, StateOpen, true
			b.state = StateOpen
		}
	case success:
		if b.state == StateHalfOpen && probe {
			b.halfOpenProbes++
			if b.halfOpenProbes >= b.cfg.HalfOpenMaxAttempts {
				from, to, transitioned = StateHalfOpen, StateClosed, true
				b.state = StateClosed
				b.failures = 0
				b.halfOpenProbes = 0
			}
		} else if b.state == StateClosed {
			b.failures = 0
		}
	}
	b.mu.Unlock()

	if transitioned {
		b.notify(from, to)
	}
}

// currentStateLocked promotes an expired open state to half-open. Callers
// hold b.mu; a reported promotion must be notified after unlocking.
func (b *Breaker) currentStateLocked() (State, bool) {
	if b.state == StateOpen && b.cfg.Clock().Sub(b.lastFailure) >= b.cfg.Cooldown {
		b.state = StateHalfOpen
		b.halfOpenProbes = 0
		b.inFlightProbes = 0
		return b.state, true
	}
	return b.state, false
}

func (b *Breaker) notify(from, to State) {
	if b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(from, to)
	}
}
