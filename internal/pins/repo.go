package pins

import "context"

// Repo persists pins. Create is a no-op when the (user, job) pair exists.
type Repo interface {
	Create(ctx context.Context, p Pin) (Pin, error)
	Delete(ctx context.Context, userID, jobID string) error
	ListByUser(ctx context.Context, userID string) ([]Pin, error)
	Exists(ctx context.Context, userID, jobID string) (bool, error)
}
