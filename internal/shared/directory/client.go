package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aldisptr/backoffice-api/internal/shared/breaker"
	"github.com/aldisptr/backoffice-api/internal/shared/retry"
)

const defaultTimeout = 5 * time.Second

// Config carries the endpoint, service credentials, and resilience policy
// for a Client.
type Config struct {
	// URL is the directory endpoint, e.g. "ldap://dir.internal:389".
	URL string

	// BindDN and BindPassword are the service principal used for search
	// binds. Leave empty for anonymous search access.
	BindDN       string
	BindPassword string

	// BaseDN is the default search base applied to requests that do not
	// carry their own.
	BaseDN string

	// Timeout bounds each individual attempt. Callers without their own
	// context deadline fall back to it. Defaults to 5s.
	Timeout time.Duration

	// Retry policy. MaxRetries is the budget after the first attempt.
	MaxRetries int
	BaseDelay  time.Duration
	DelayCap   time.Duration

	// Breaker policy.
	FailureThreshold    int
	Cooldown            time.Duration
	HalfOpenMaxAttempts int

	// Dialer overrides how connections are opened. Defaults to the LDAP
	// dialer bound by Timeout.
	Dialer Dialer

	// Observe receives best-effort operational events ("connect", "bind",
	// "search", "retry", "timeout", "teardown") with the attempt error, if
	// any. It must not block.
	Observe func(op string, err error)

	// OnStateChange is forwarded to the circuit breaker.
	OnStateChange func(from, to breaker.State)
}

// Client exposes connect, authenticate, and search against one directory
// dependency. A single connection handle is shared by searches and rebuilt
// after transport failures; authenticate binds always use a short-lived
// dedicated connection so credential checks never poison the shared handle.
// All methods are safe for concurrent use.
type Client struct {
	cfg     Config
	breaker *breaker.Breaker

	connMu sync.Mutex
	conn   Conn
}

// New validates cfg and returns a client with a closed breaker. No network
// activity happens until the first call.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("directory: server url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Dialer == nil {
		cfg.Dialer = NewLDAPDialer(cfg.Timeout)
	}

	return &Client{
		cfg: cfg,
		breaker: breaker.New(breaker.Config{
			FailureThreshold:    cfg.FailureThreshold,
			Cooldown:            cfg.Cooldown,
			HalfOpenMaxAttempts: cfg.HalfOpenMaxAttempts,
			IsFailure: func(err error) bool {
				// Caller cancellations prove nothing about dependency
				// health. Credential rejections do count: the round
				// trip failed from the caller's point of view.
				return err != nil && !errors.Is(err, context.Canceled)
			},
			OnStateChange: cfg.OnStateChange,
		}),
	}, nil
}

// Connect tears down any previously held connection and establishes a
// fresh one, including the service bind when configured. Searches dial
// lazily, so calling Connect is only required to force a reconnect.
func (c *Client) Connect(ctx context.Context) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return retry.Do(ctx, c.retryConfig(), func(ctx context.Context) error {
			c.teardown()
			_, err := c.ensureConn(ctx)
			return err
		})
	})
	return c.mapError(err)
}

// Authenticate verifies a principal's secret with a dedicated bind. Empty
// principals or secrets are rejected locally: an empty secret would turn
// the bind into an anonymous one that the directory happily accepts.
func (c *Client) Authenticate(ctx context.Context, principal, secret string) error {
	if strings.TrimSpace(principal) == "" || secret == "" {
		return fmt.Errorf("%w: empty principal or secret", ErrInvalidCredentials)
	}

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return retry.Do(ctx, c.retryConfig(), func(ctx context.Context) error {
			return c.authenticateAttempt(ctx, principal, secret)
		})
	})
	return c.mapError(err)
}

// Search runs a whole-subtree search over the shared connection, dialing
// and binding on demand.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Entry, error) {
	if req.BaseDN == "" {
		req.BaseDN = c.cfg.BaseDN
	}

	var entries []Entry
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return retry.Do(ctx, c.retryConfig(), func(ctx context.Context) error {
			found, err := c.searchAttempt(ctx, req)
			if err != nil {
				return err
			}
			entries = found
			return nil
		})
	})
	if err != nil {
		return nil, c.mapError(err)
	}
	return entries, nil
}

// BreakerState reports the current circuit breaker state.
func (c *Client) BreakerState() breaker.State {
	return c.breaker.State()
}

// Close releases the shared connection. The client stays usable; the next
// search redials.
func (c *Client) Close() error {
	c.teardown()
	return nil
}

func (c *Client) authenticateAttempt(ctx context.Context, principal, secret string) error {
	err := c.runAttempt(ctx, func() error {
		conn, err := c.cfg.Dialer.Dial(ctx, c.cfg.URL)
		if err != nil {
			return classify(err)
		}
		defer conn.Close()

		conn.SetTimeout(c.cfg.Timeout)
		if err := conn.Bind(principal, secret); err != nil {
			return classify(err)
		}
		return nil
	})
	c.observe("bind", err)
	return err
}

func (c *Client) searchAttempt(ctx context.Context, req SearchRequest) ([]Entry, error) {
	conn, err := c.ensureConn(ctx)
	if err != nil {
		return nil, err
	}

	var found []Entry
	err = c.runAttempt(ctx, func() error {
		entries, err := conn.Search(req)
		if err != nil {
			return classify(err)
		}
		found = entries
		return nil
	})
	c.observe("search", err)
	if err != nil {
		// A timed-out or transport-broken connection may still be consumed
		// by the abandoned call; drop it so the next attempt redials.
		if !errors.Is(err, ErrInvalidFilter) && !errors.Is(err, ErrInvalidCredentials) {
			c.teardown()
		}
		return nil, err
	}
	return found, nil
}

// ensureConn returns the shared connection, dialing and service-binding a
// new one when none is held.
func (c *Client) ensureConn(ctx context.Context) (Conn, error) {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		return c.conn, nil
	}

	conn, err := c.cfg.Dialer.Dial(ctx, c.cfg.URL)
	c.observe("connect", err)
	if err != nil {
		return nil, classify(err)
	}
	conn.SetTimeout(c.cfg.Timeout)

	if c.cfg.BindDN != "" {
		if err := conn.Bind(c.cfg.BindDN, c.cfg.BindPassword); err != nil {
			_ = conn.Close()
			c.observe("bind", err)
			return nil, classify(err)
		}
	}

	c.conn = conn
	return conn, nil
}

// teardown drops the shared connection, if any.
func (c *Client) teardown() {
	c.connMu.Lock()
	conn := c.conn
	c.conn = nil
	c.connMu.Unlock()

	if conn != nil {
		c.observe("teardown", conn.Close())
	}
}

// runAttempt races fn against the per-attempt budget. On expiry the attempt
// is abandoned, not interrupted: fn keeps running in its goroutine until the
// transport call returns, and the buffered channel lets it finish without
// leaking.
func (c *Client) runAttempt(ctx context.Context, fn func() error) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-attemptCtx.Done():
		err := attemptCtx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			c.observe("timeout", err)
		}
		return err
	}
}

func (c *Client) retryConfig() retry.Config {
	return retry.Config{
		MaxRetries: c.cfg.MaxRetries,
		BaseDelay:  c.cfg.BaseDelay,
		DelayCap:   c.cfg.DelayCap,
		RetryIf: func(err error) bool {
			return err != nil &&
				!errors.Is(err, ErrInvalidCredentials) &&
				!errors.Is(err, ErrInvalidFilter) &&
				!errors.Is(err, context.Canceled)
		},
		OnRetry: func(attempt int, delay time.Duration, err error) {
			c.observe("retry", err)
		},
	}
}

// mapError collapses composition-level errors into the package vocabulary.
// Classified credential and filter errors pass through; caller
// cancellations propagate; everything else, including breaker rejections
// and exhausted retries, surfaces as ErrUnavailable with the cause
// stringified rather than wrapped.
func (c *Client) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidFilter):
		return err
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("directory: request canceled: %w", context.Canceled)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func (c *Client) observe(op string, err error) {
	if c.cfg.Observe != nil {
		c.cfg.Observe(op, err)
	}
}
