package interviews

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobprep-backend/internal/aiparse"
	"jobprep-backend/internal/shared/telemetry"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

// Service runs the mock-interview loop.
type Service struct {
	Coach *Coach
	Repo  Repo
	Now   func() time.Time
}

// Submit grades an answer and appends it to the caller's history.
func (s *Service) Submit(ctx context.Context, userID, question, answer, jobTitle string) (Entry, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	jobTitle = strings.TrimSpace(jobTitle)
	if question == "" {
		return Entry{}, fmt.Errorf("%w: question is required", ErrValidation)
	}
	if answer == "" {
		return Entry{}, fmt.Errorf("%w: answer is required", ErrValidation)
	}
	if jobTitle == "" {
		jobTitle = DefaultJobTitle
	}

	fb, err := s.Coach.Feedback(ctx, question, answer, jobTitle)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		JobTitle:  jobTitle,
		Feedback:  fb,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("save interview entry: %w", err)
	}

	telemetry.Info("interviews.answer_scored", map[string]any{
		"recordId":   e.ID,
		"user_id":    userID,
		"score":      int(fb.Score),
		"confidence": string(fb.Confidence),
	})
	return e, nil
}

// History returns the caller's answered questions newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

// Questions drafts practice questions for a role.
func (s *Service) Questions(ctx context.Context, jobTitle, jobDescription string) ([]string, aiparse.Confidence) {
	return s.Coach.Questions(ctx, jobTitle, jobDescription)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
