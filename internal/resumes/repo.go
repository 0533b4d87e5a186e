package resumes

import "context"

// Repo persists analysis records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, userID, id string) (Record, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Record, error)
}
