// Package directory provides a resilient client for an external LDAP
// directory service. Calls are guarded by a circuit breaker, retried with
// exponential backoff, and bounded by per-attempt timeouts; transport
// errors are collapsed into a small classified vocabulary so raw protocol
// failures never reach callers.
package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// Classified errors returned by the client. Callers branch with errors.Is;
// anything not listed here is wrapped into ErrUnavailable.
var (
	// ErrUnavailable reports that the directory could not serve the call:
	// network failure after the retry budget, an attempt timeout, or the
	// circuit breaker rejecting the call outright.
	ErrUnavailable = errors.New("directory: service unavailable")

	// ErrInvalidCredentials reports that the directory rejected the bind
	// principal or secret. Never retried.
	ErrInvalidCredentials = errors.New("directory: invalid credentials")

	// ErrInvalidFilter reports a malformed search filter. Never retried.
	ErrInvalidFilter = errors.New("directory: invalid search filter")
)

// Entry is one directory object returned by Search.
type Entry struct {
	DN         string
	Attributes map[string][]string
}

// SearchRequest describes a whole-subtree search.
type SearchRequest struct {
	BaseDN     string
	Filter     string
	Attributes []string

	// SizeLimit caps the number of returned entries. Zero means no
	// client-requested cap.
	SizeLimit int
}

// Conn is the subset of a directory connection the client depends on.
type Conn interface {
	Bind(username, password string) error
	Search(req SearchRequest) ([]Entry, error)
	SetTimeout(d time.Duration)
	Close() error
}

// Dialer opens directory connections.
type Dialer interface {
	Dial(ctx context.Context, url string) (Conn, error)
}

// EscapeFilter escapes a value for safe embedding inside a search filter.
func EscapeFilter(value string) string {
	return ldap.EscapeFilter(value)
}

// classify maps a transport-level error into the package taxonomy. Errors
// already carrying a sentinel pass through unchanged; unknown errors stay
// retryable and keep their cause for logging.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidFilter):
		return err
	case ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials):
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	case ldap.IsErrorWithCode(err, ldap.ErrorFilterCompile):
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	default:
		return fmt.Errorf("directory: operation failed: %w", err)
	}
}
