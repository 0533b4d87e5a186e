package jobs

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidFilter is returned by ParseFilter for malformed query values.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter narrows a job list. Empty fields and a nil Remote impose no constraint.
type Filter struct {
	Keywords string `json:"keywords,omitempty"`
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
	Remote   *bool  `json:"remote,omitempty"`
}

// IsEmpty reports whether f constrains nothing.
func (f *Filter) IsEmpty() bool {
	return f == nil || (f.Keywords == "" && f.Category == "" && f.Location == "" && f.Remote == nil)
}

// Matches reports whether job satisfies every populated field of f.
// Comparisons are case-insensitive substring tests.
func Matches(job Job, f *Filter) bool {
	if f.IsEmpty() {
		return true
	}

	if kw := strings.ToLower(f.Keywords); kw != "" {
		if !containsFold(job.Title, kw) &&
			!containsFold(job.Company, kw) &&
			!containsFold(job.Description, kw) &&
			!anyTagContains(job.Tags, kw) {
			return false
		}
	}

	if cat := strings.ToLower(f.Category); cat != "" {
		if !anyTagContains(job.Tags, cat) {
			return false
		}
	}

	if loc := strings.ToLower(f.Location); loc != "" {
		if !containsFold(job.Location, loc) {
			return false
		}
	}

	if f.Remote != nil && IsRemote(job) != *f.Remote {
		return false
	}

	return true
}

// FilterJobs returns the jobs matching f, preserving order.
func FilterJobs(list []Job, f *Filter) []Job {
	out := make([]Job, 0, len(list))
	for _, job := range list {
		if Matches(job, f) {
			out = append(out, job)
		}
	}
	return out
}

// ParseFilter builds a Filter from query parameters. Blank values are absent.
func ParseFilter(values url.Values) (*Filter, error) {
	f := &Filter{
		Keywords: strings.TrimSpace(values.Get("keywords")),
		Category: strings.TrimSpace(values.Get("category")),
		Location: strings.TrimSpace(values.Get("location")),
	}
	if f.Keywords == "" {
		f.Keywords = strings.TrimSpace(values.Get("q"))
	}

	switch raw := strings.ToLower(strings.TrimSpace(values.Get("remote"))); raw {
	case "":
	case "true", "1", "yes":
		v := true
		f.Remote = &v
	case "false", "0", "no":
		v := false
		f.Remote = &v
	default:
		return nil, fmt.Errorf("%w: remote must be true or false, got %q", ErrInvalidFilter, raw)
	}
	return f, nil
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func anyTagContains(tags []string, lowerNeedle string) bool {
	for _, tag := range tags {
		if containsFold(tag, lowerNeedle) {
			return true
		}
	}
	return false
}
