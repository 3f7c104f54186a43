// Package revocation tracks revoked access tokens until their natural
// expiry, so a logout invalidates a token before its signature does.
package revocation

import (
	"context"
	"time"
)

// Store records revoked token identifiers.
type Store interface {
	// Revoke marks a token identifier as revoked for ttl. A non-positive
	// ttl is a no-op: the token is already past its own expiry.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether the token identifier has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
