package pins

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, p Pin) (Pin, error) {
	const insert = `
INSERT INTO pinned_jobs (id, user_id, job_id, job_data, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, job_id) DO NOTHING`
	const existing = `
SELECT id, user_id, job_id, job_data, created_at
FROM pinned_jobs
WHERE user_id = $1 AND job_id = $2`

	payload, err := json.Marshal(p.Job)
	if err != nil {
		return Pin{}, fmt.Errorf("encode job: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, insert, p.ID, p.UserID, p.JobID, payload, p.CreatedAt)
	if err != nil {
		return Pin{}, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return p, nil
	}
	return scanPin(r.DB.QueryRowContext(ctx, existing, p.UserID, p.JobID))
}

func (r *PGRepo) Delete(ctx context.Context, userID, jobID string) error {
	const query = `DELETE FROM pinned_jobs WHERE user_id = $1 AND job_id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, jobID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Pin, error) {
	const query = `
SELECT id, user_id, job_id, job_data, created_at
FROM pinned_jobs
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Pin{}
	for rows.Next() {
		p, err := scanPin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM pinned_jobs WHERE user_id = $1 AND job_id = $2)`
	var ok bool
	if err := r.DB.QueryRowContext(ctx, query, userID, jobID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPin(row rowScanner) (Pin, error) {
	var p Pin
	var payload []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.JobID, &payload, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pin{}, ErrNotFound
		}
		return Pin{}, err
	}
	if err := json.Unmarshal(payload, &p.Job); err != nil {
		return Pin{}, fmt.Errorf("decode job: %w", err)
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)
