package resumes

import (
	"context"
	"errors"
	"testing"
)

func TestExtractTextJoinsPages(t *testing.T) {
	data := buildPDF("Jane Doe", "Go Engineer")

	text, err := ExtractText(context.Background(), data)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Jane Doe\nGo Engineer" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractTextSkipsBlankPages(t *testing.T) {
	data := buildPDF("Jane Doe", " ", "Go Engineer")

	text, err := ExtractText(context.Background(), data)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Jane Doe\nGo Engineer" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "not a pdf", data: []byte("hello world"), want: ErrUnreadable},
		{name: "blank pages", data: buildPDF(" ", ""), want: ErrNoText},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractText(context.Background(), tt.data)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestExtractTextHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExtractText(ctx, buildPDF("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
