package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
)

// defaultRevocationTTL bounds the revocation record for tokens that carry
// no expiry claim.
const defaultRevocationTTL = 24 * time.Hour

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type AuthLogoutService struct {
	revoker TokenRevoker
}

func NewAuthLogoutService(revoker TokenRevoker) *AuthLogoutService {
	return &AuthLogoutService{revoker: revoker}
}

// Logout revokes the presented token until its natural expiry. Tokens
// without a token id cannot be tracked and are rejected.
func (s *AuthLogoutService) Logout(ctx context.Context, claims *sharedjwt.Claims) error {
	if claims == nil || strings.TrimSpace(claims.ID) == "" {
		return vo.ErrTokenNotRevocable
	}

	ttl := defaultRevocationTTL
	if !claims.ExpiresAt.IsZero() {
		ttl = time.Until(claims.ExpiresAt)
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("service: failed to revoke token: %w", err)
	}

	return nil
}
