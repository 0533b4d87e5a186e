package s3

import (
	"io"
	"strings"
	"testing"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/file.pdf", want: "user/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/user/file.pdf", want: "root/user/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "user/file.pdf", want: "root/sub/user/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"  resumes/ ": "resumes",
		"/a/b/":       "a/b",
		"uploads":     "uploads",
	}
	for in, want := range tests {
		if got := normalizePrefix(in); got != want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCountingReaderCountsBytes(t *testing.T) {
	c := &countingReader{r: strings.NewReader("%PDF-1.4 resume")}
	if _, err := io.Copy(io.Discard, c); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if c.n != int64(len("%PDF-1.4 resume")) {
		t.Fatalf("expected %d bytes, got %d", len("%PDF-1.4 resume"), c.n)
	}
}
