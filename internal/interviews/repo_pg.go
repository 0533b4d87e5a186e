package interviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, e Entry) error {
	const query = `
INSERT INTO interview_history (id, user_id, question, answer, job_title, feedback, score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	payload, err := json.Marshal(e.Feedback)
	if err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Question,
		e.Answer,
		nullableString(e.JobTitle),
		payload,
		int(e.Feedback.Score),
		e.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	const query = `
SELECT id, user_id, question, answer, job_title, feedback, created_at
FROM interview_history
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		var jobTitle sql.NullString
		var feedback []byte
		if err := rows.Scan(&e.ID, &e.UserID, &e.Question, &e.Answer, &jobTitle, &feedback, &e.CreatedAt); err != nil {
			return nil, err
		}
		if jobTitle.Valid {
			e.JobTitle = jobTitle.String
		}
		if err := json.Unmarshal(feedback, &e.Feedback); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
