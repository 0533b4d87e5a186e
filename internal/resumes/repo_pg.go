package resumes

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

const selectColumns = `id, user_id, file_name, storage_key, resume_text, analysis, created_at`

func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resume_analyses (id, user_id, file_name, storage_key, resume_text, analysis, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	payload, err := json.Marshal(rec.Analysis)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	var storageKey sql.NullString
	if rec.StorageKey != "" {
		storageKey = sql.NullString{String: rec.StorageKey, Valid: true}
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.FileName,
		storageKey,
		rec.ResumeText,
		payload,
		rec.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Record, error) {
	query := `SELECT ` + selectColumns + `
FROM resume_analyses
WHERE user_id = $1 AND id = $2`
	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// ListByUser lists records newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query := `SELECT ` + selectColumns + `
FROM resume_analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var storageKey sql.NullString
	var analysis []byte
	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.FileName,
		&storageKey,
		&rec.ResumeText,
		&analysis,
		&rec.CreatedAt,
	); err != nil {
		return Record{}, err
	}
	if storageKey.Valid {
		rec.StorageKey = storageKey.String
	}
	if len(analysis) > 0 {
		if err := json.Unmarshal(analysis, &rec.Analysis); err != nil {
			return Record{}, fmt.Errorf("decode analysis: %w", err)
		}
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
