package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO users").
		WithArgs("google:1", "a@b.test", "Ada", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Upsert(context.Background(), User{ID: "google:1", Email: "a@b.test", Name: "Ada"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("google:1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "picture", "created_at", "last_login_at"}).
			AddRow("google:1", "a@b.test", nil, "https://pic", now, now))
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	user, err := repo.GetByID(context.Background(), "google:1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Email != "a@b.test" || user.Name != "" || user.Picture != "https://pic" {
		t.Fatalf("unexpected user %+v", user)
	}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
