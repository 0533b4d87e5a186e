package pins

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]Pin // userId -> jobId -> pin
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]map[string]Pin)}
}

func (r *MemoryRepo) Create(ctx context.Context, p Pin) (Pin, error) {
	if err := ctx.Err(); err != nil {
		return Pin{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byJob, ok := r.data[p.UserID]
	if !ok {
		byJob = make(map[string]Pin)
		r.data[p.UserID] = byJob
	}
	if existing, ok := byJob[p.JobID]; ok {
		return existing, nil
	}
	byJob[p.JobID] = p
	return p, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[userID][jobID]; !ok {
		return ErrNotFound
	}
	delete(r.data[userID], jobID)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Pin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Pin, 0, len(r.data[userID]))
	for _, p := range r.data[userID] {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].JobID < out[j].JobID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[userID][jobID]
	return ok, nil
}

var _ Repo = (*MemoryRepo)(nil)
