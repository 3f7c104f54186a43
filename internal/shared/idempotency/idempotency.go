// Package idempotency deduplicates retried mutating requests. A client
// supplies a key per logical operation; the first submission acquires the
// key and publishes its response, duplicates replay it, and reuse of a key
// for a different payload is a conflict.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

type Request struct {
	Scope       string
	Key         string
	RequestHash string

	// TTL bounds how long a stored response stays replayable. Zero uses
	// the store default.
	TTL time.Duration

	// LockTTL bounds how long an in-flight first submission may hold the
	// key before a duplicate is allowed to take over. Zero uses the store
	// default.
	LockTTL time.Duration
}

type Decision struct {
	Type        DecisionType
	StatusCode  int
	Body        []byte
	ContentType string

	// Ready is set for DecisionInProgress and is closed once the holder
	// publishes or abandons its result. Waiters must re-Check afterwards.
	Ready <-chan struct{}
}

type StoredResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Stats describes store occupancy for operational introspection.
type Stats struct {
	Size    int
	MaxSize int
	TTL     time.Duration
}

type Store interface {
	// Check resolves what the caller should do for a key: proceed
	// (acquired), replay the stored response, wait for an in-flight
	// holder, or reject a conflicting reuse.
	Check(ctx context.Context, request Request) (Decision, error)

	// Store publishes the response for an acquired key and wakes any
	// waiters. Existing entries for the key are overwritten; conflict
	// detection is Check's job.
	Store(ctx context.Context, request Request, response StoredResponse) error

	// Release abandons an acquired key without publishing, letting one
	// waiter take over. Safe to call when nothing is held.
	Release(ctx context.Context, request Request) error

	Stats() Stats
	Clear()
	Close() error
}

// Fingerprint hashes the request identity an idempotency key binds to, so
// key reuse across different logical requests is detectable.
func Fingerprint(method, path string, body []byte) string {
	sum := sha256.New()
	sum.Write([]byte(strings.ToUpper(method)))
	sum.Write([]byte("\n"))
	sum.Write([]byte(path))
	sum.Write([]byte("\n"))
	sum.Write(body)
	return hex.EncodeToString(sum.Sum(nil))
}
