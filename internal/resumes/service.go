package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobprep-backend/internal/shared/storage/object"
	"jobprep-backend/internal/shared/telemetry"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 50
)

// Service runs the upload → extract → analyze → persist pipeline.
type Service struct {
	Store    object.ObjectStore
	Repo     Repo
	Analyzer *Analyzer
	Now      func() time.Time
}

// UploadAndAnalyze validates the file, extracts its text, asks the model for
// an analysis, then keeps the original and records the result.
func (s *Service) UploadAndAnalyze(ctx context.Context, userID, fileName, contentType string, body io.Reader) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("user id required")
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxFileSize+1))
	if err != nil {
		return Record{}, fmt.Errorf("read upload: %w", err)
	}
	contentType = detectContentType(contentType, data)
	if err := Validate(fileName, contentType, int64(len(data))); err != nil {
		return Record{}, err
	}

	text, err := ExtractText(ctx, data)
	if err != nil {
		return Record{}, err
	}

	analysis, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		return Record{}, err
	}

	// Only analyses that will be recorded keep their original.
	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Record{}, fmt.Errorf("store upload: %w", err)
	}

	rec := Record{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		StorageKey: storageKey,
		ResumeText: text,
		Analysis:   analysis,
		CreatedAt:  s.now(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("save analysis: %w", err)
	}

	telemetry.Info("resumes.analyzed", map[string]any{
		"recordId":   rec.ID,
		"user_id":    userID,
		"text_chars": len(text),
		"confidence": string(analysis.Confidence),
	})
	return rec, nil
}

// List returns the caller's analyses newest first.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

// Get returns one analysis owned by userID.
func (s *Service) Get(ctx context.Context, userID, id string) (Record, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// OpenFile streams the stored original of an analysis.
func (s *Service) OpenFile(ctx context.Context, userID, id string) (Record, io.ReadCloser, error) {
	rec, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Record{}, nil, err
	}
	if rec.StorageKey == "" {
		return Record{}, nil, ErrNotFound
	}
	body, err := s.Store.Open(ctx, rec.StorageKey)
	if errors.Is(err, object.ErrNotFound) {
		return Record{}, nil, ErrNotFound
	}
	if err != nil {
		return Record{}, nil, fmt.Errorf("open stored file: %w", err)
	}
	return rec, body, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
