package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrValidation = errors.New("invalid user")
)

// Repo stores signed-in users keyed by "<provider>:<subject>".
type Repo interface {
	// Upsert inserts the user or refreshes its profile fields. CreatedAt is
	// kept from the first insert and LastLoginAt is set to now.
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
}
