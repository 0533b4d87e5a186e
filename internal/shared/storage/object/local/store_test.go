package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"jobprep-backend/internal/shared/storage/object"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	payload := []byte("%PDF-1.4\nhello resume")

	key, size, mimeType, err := store.Save(context.Background(), "guest:abc", "my/resume.pdf", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len(payload)) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}
	if mimeType != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", mimeType)
	}
	if !strings.HasSuffix(key, "_my_resume.pdf") {
		t.Fatalf("expected sanitized file name in key, got %q", key)
	}
	if strings.Contains(key, "guest:abc") {
		t.Fatalf("key must not contain raw user id: %q", key)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Open(context.Background(), "../etc/passwd"); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
}

func TestSaveRejectsTraversalName(t *testing.T) {
	store := New(t.TempDir())
	if _, _, _, err := store.Save(context.Background(), "u", "../x.pdf", strings.NewReader("x")); err == nil {
		t.Fatalf("expected invalid file name error")
	}
}

func TestOpenMissingIsNotFound(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "abc/missing.pdf")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
