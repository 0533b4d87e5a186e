package pins

import (
	"errors"
	"time"

	"jobprep-backend/internal/jobs"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Pin is a job bookmarked by a user. The listing is snapshotted at pin time
// since providers drop old postings.
type Pin struct {
	ID        string
	UserID    string
	JobID     string
	Job       jobs.Job
	CreatedAt time.Time
}
