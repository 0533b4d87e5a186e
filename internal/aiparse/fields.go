package aiparse

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func pattern(kind, label string) *regexp.Regexp {
	key := kind + "|" + label
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[key]; ok {
		return re
	}
	quoted := regexp.QuoteMeta(label)
	var expr string
	switch kind {
	case "list":
		expr = `(?i)` + quoted + `s?"?[:\s]+\[([^\]]+)\]`
	case "sentence":
		expr = `(?i)` + quoted + `"?[:\s]+([^.]+)`
	default:
		expr = `(?i)` + quoted + `"?[:\s]+(-?\d+)`
	}
	re := regexp.MustCompile(expr)
	patternCache[key] = re
	return re
}

// ListField finds `label: [a, b, c]` in text and returns the trimmed,
// unquoted items.
func ListField(text, label string) ([]string, bool) {
	m := pattern("list", label).FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	var out []string
	for _, part := range strings.Split(m[1], ",") {
		if item := cleanItem(part); item != "" {
			out = append(out, item)
		}
	}
	return out, len(out) > 0
}

// SentenceField finds `label: value` in text and returns value up to the
// first period.
func SentenceField(text, label string) (string, bool) {
	m := pattern("sentence", label).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := cleanItem(m[1])
	return value, value != ""
}

// IntField finds `label: N` in text.
func IntField(text, label string) (int, bool) {
	m := pattern("int", label).FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ListOr returns the list found for label, or def.
func ListOr(text, label string, def []string) ([]string, bool) {
	if list, ok := ListField(text, label); ok {
		return list, true
	}
	return append([]string(nil), def...), false
}

// SentenceOr returns the sentence found for label, or def.
func SentenceOr(text, label, def string) (string, bool) {
	if s, ok := SentenceField(text, label); ok {
		return s, true
	}
	return def, false
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'`,")
	return strings.TrimSpace(s)
}
