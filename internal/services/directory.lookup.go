package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
)

type DirectorySearcher interface {
	Search(ctx context.Context, req directory.SearchRequest) ([]directory.Entry, error)
}

type DirectoryLookupService struct {
	directory DirectorySearcher
}

func NewDirectoryLookupService(directory DirectorySearcher) *DirectoryLookupService {
	return &DirectoryLookupService{directory: directory}
}

func (s *DirectoryLookupService) LookupUser(ctx context.Context, username string) (vo.DirectoryUser, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return vo.DirectoryUser{}, errors.New("username is required")
	}

	escaped := directory.EscapeFilter(trimmed)
	entries, err := s.directory.Search(ctx, directory.SearchRequest{
		Filter:     fmt.Sprintf("(|(uid=%s)(mail=%s))", escaped, escaped),
		Attributes: []string{"uid", "cn", "mail", "memberOf"},
		SizeLimit:  1,
	})
	if err != nil {
		return vo.DirectoryUser{}, mapDirectoryError(err)
	}
	if len(entries) == 0 {
		return vo.DirectoryUser{}, vo.ErrDirectoryUserNotFound
	}

	entry := entries[0]
	user := vo.DirectoryUser{
		Username:    firstAttribute(entry, "uid"),
		DN:          entry.DN,
		DisplayName: firstAttribute(entry, "cn"),
		Email:       firstAttribute(entry, "mail"),
		Groups:      entry.Attributes["memberOf"],
	}
	if user.Username == "" {
		user.Username = trimmed
	}

	return user, nil
}

// mapDirectoryError translates the directory client's classified errors
// into the vocabulary callers of this package branch on. Anything not
// classified passes through unchanged.
func mapDirectoryError(err error) error {
	switch {
	case errors.Is(err, directory.ErrInvalidCredentials):
		return vo.ErrInvalidCredentials
	case errors.Is(err, directory.ErrUnavailable):
		return vo.ErrDependencyUnavailable
	default:
		return err
	}
}

func firstAttribute(entry directory.Entry, name string) string {
	values := entry.Attributes[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
