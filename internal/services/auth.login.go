package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aldisptr/backoffice-api/internal/domain"
	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
	sharedhash "github.com/aldisptr/backoffice-api/internal/shared/hash"
	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
	shareduid "github.com/aldisptr/backoffice-api/internal/shared/uid"
)

// LoginStrategy selects where operator credentials are verified.
type LoginStrategy string

const (
	// LoginStrategyDirectory resolves the operator in the LDAP directory
	// by uid or mail, then binds as the resolved entry.
	LoginStrategyDirectory LoginStrategy = "directory"

	// LoginStrategyLocal verifies credentials against the local
	// operator accounts table.
	LoginStrategyLocal LoginStrategy = "local"
)

const defaultTokenTTL = 15 * time.Minute

type DirectoryAuthenticator interface {
	Authenticate(ctx context.Context, principal, secret string) error
	Search(ctx context.Context, req directory.SearchRequest) ([]directory.Entry, error)
}

type AuthLocalRepository interface {
	GetOperatorAuthByEmail(ctx context.Context, email string) (domain.OperatorAuth, error)
}

type AuthLoginService struct {
	directory    DirectoryAuthenticator
	repository   AuthLocalRepository
	hasher       sharedhash.Hasher
	tokenManager sharedjwt.TokenManager
	tokenIDs     shareduid.UIDGenerator
	strategy     LoginStrategy
	tokenTTL     time.Duration
}

func NewAuthLoginService(
	directory DirectoryAuthenticator,
	repository AuthLocalRepository,
	hasher sharedhash.Hasher,
	tokenManager sharedjwt.TokenManager,
	tokenIDs shareduid.UIDGenerator,
	strategy LoginStrategy,
	tokenTTL time.Duration,
) *AuthLoginService {
	return &AuthLoginService{
		directory:    directory,
		repository:   repository,
		hasher:       hasher,
		tokenManager: tokenManager,
		tokenIDs:     tokenIDs,
		strategy:     strategy,
		tokenTTL:     tokenTTL,
	}
}

func (s *AuthLoginService) Login(ctx context.Context, username, password string) (vo.AuthLogin, error) {
	normalized := strings.TrimSpace(username)
	if normalized == "" || strings.TrimSpace(password) == "" {
		return vo.AuthLogin{}, vo.ErrInvalidCredentials
	}

	var (
		subject string
		err     error
	)
	switch s.strategy {
	case LoginStrategyLocal:
		subject, err = s.loginLocal(ctx, normalized, password)
	default:
		subject, err = s.loginDirectory(ctx, normalized, password)
	}
	if err != nil {
		return vo.AuthLogin{}, err
	}

	return s.issueToken(ctx, subject)
}

func (s *AuthLoginService) loginLocal(ctx context.Context, email, password string) (string, error) {
	user, err := s.repository.GetOperatorAuthByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		return "", vo.ErrInvalidCredentials
	}

	return user.ID, nil
}

func (s *AuthLoginService) loginDirectory(ctx context.Context, username, password string) (string, error) {
	escaped := directory.EscapeFilter(username)
	entries, err := s.directory.Search(ctx, directory.SearchRequest{
		Filter:     fmt.Sprintf("(|(uid=%s)(mail=%s))", escaped, escaped),
		Attributes: []string{"uid"},
		SizeLimit:  1,
	})
	if err != nil {
		return "", mapDirectoryError(err)
	}
	if len(entries) == 0 {
		return "", vo.ErrInvalidCredentials
	}

	entry := entries[0]
	if err := s.directory.Authenticate(ctx, entry.DN, password); err != nil {
		return "", mapDirectoryError(err)
	}

	if uid := firstAttribute(entry, "uid"); uid != "" {
		return uid, nil
	}
	return entry.DN, nil
}

func (s *AuthLoginService) issueToken(ctx context.Context, subject string) (vo.AuthLogin, error) {
	tokenID, err := s.tokenIDs.Generate(ctx)
	if err != nil {
		return vo.AuthLogin{}, fmt.Errorf("service: failed to generate token id: %w", err)
	}

	ttl := s.tokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	token, err := s.tokenManager.Sign(ctx, sharedjwt.Claims{
		Subject:   subject,
		ID:        tokenID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	})
	if err != nil {
		return vo.AuthLogin{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return vo.AuthLogin{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
