package util

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFileNameLen bounds stored résumé file names, counted in bytes.
const MaxFileNameLen = 200

// ErrInvalidFileName is returned for empty names and traversal attempts.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens path separators, drops control characters and
// truncates long names while keeping the extension.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}

	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(name))
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidFileName
	}

	if len(s) > MaxFileNameLen {
		ext := ""
		if i := strings.LastIndexByte(s, '.'); i > 0 && len(s)-i <= 10 {
			ext = s[i:]
		}
		s = TruncateUTF8(s[:len(s)-len(ext)], MaxFileNameLen-len(ext)) + ext
	}
	return s, nil
}

// TruncateUTF8 cuts s to at most n bytes without splitting a rune.
func TruncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
