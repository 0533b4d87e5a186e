package interviews

import "context"

// Repo persists interview history.
type Repo interface {
	Create(ctx context.Context, e Entry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error)
}
