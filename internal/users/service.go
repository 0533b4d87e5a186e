package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errNotConfigured = errors.New("users service not configured")

// Service owns user profiles created by sign-in.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth records the identity returned by the OAuth provider. Emails
// are stored lower-cased and profile fields trimmed.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errNotConfigured
	}
	user.ID = strings.TrimSpace(user.ID)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Name = strings.TrimSpace(user.Name)
	user.Picture = strings.TrimSpace(user.Picture)

	switch {
	case user.ID == "":
		return fmt.Errorf("%w: id is required", ErrValidation)
	case strings.HasPrefix(user.ID, "guest:"):
		return fmt.Errorf("%w: guests are not stored", ErrValidation)
	case user.Email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.Repo.GetByID(ctx, userID)
}
