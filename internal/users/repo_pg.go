package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, name, picture, created_at, last_login_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  name = EXCLUDED.name,
  picture = EXCLUDED.picture,
  last_login_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		nullableString(user.Email),
		nullableString(user.Name),
		nullableString(user.Picture),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, name, picture, created_at, last_login_at
FROM users
WHERE id = $1
LIMIT 1`
	var user User
	var email, name, picture sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&email,
		&name,
		&picture,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.Email = email.String
	user.Name = name.String
	user.Picture = picture.String
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
