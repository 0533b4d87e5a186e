package pins

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobprep-backend/internal/jobs"
)

// Service manages a user's pinned jobs.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// Pin bookmarks job for userID. Pinning the same job twice returns the first pin.
func (s *Service) Pin(ctx context.Context, userID string, job jobs.Job) (Pin, error) {
	job.ID = strings.TrimSpace(job.ID)
	if job.ID == "" {
		return Pin{}, fmt.Errorf("%w: job id is required", ErrValidation)
	}
	if strings.TrimSpace(job.Title) == "" {
		job.Title = jobs.UnknownTitle
	}
	if strings.TrimSpace(job.Company) == "" {
		job.Company = jobs.UnknownCompany
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Repo.Create(ctx, Pin{
		ID:        uuid.NewString(),
		UserID:    userID,
		JobID:     job.ID,
		Job:       job,
		CreatedAt: now().UTC(),
	})
}

// Unpin removes a bookmark. ErrNotFound when it did not exist.
func (s *Service) Unpin(ctx context.Context, userID, jobID string) error {
	return s.Repo.Delete(ctx, userID, strings.TrimSpace(jobID))
}

// List returns pins newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Pin, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// IsPinned reports whether userID has bookmarked jobID.
func (s *Service) IsPinned(ctx context.Context, userID, jobID string) (bool, error) {
	return s.Repo.Exists(ctx, userID, strings.TrimSpace(jobID))
}
