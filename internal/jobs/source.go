package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobprep-backend/internal/shared/metrics"
	"jobprep-backend/internal/shared/telemetry"
)

// Source is one listing provider. Implementations never fail: transport and
// decode problems are logged and surface as an empty result or a miss.
type Source interface {
	Name() string
	Fetch(ctx context.Context, f *Filter) []Job
	FetchByID(ctx context.Context, id string) (Job, bool)
}

const (
	userAgent       = "jobprep-backend/1.0 (+https://github.com/jobprep)"
	maxResponseSize = 16 << 20
)

var nowFunc = time.Now

// httpSource is the transport shared by the provider adapters.
type httpSource struct {
	name    string
	baseURL string
	client  *http.Client
}

func newHTTPSource(name, baseURL string, client *http.Client) httpSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return httpSource{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (s httpSource) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", s.name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", s.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return fmt.Errorf("%s http status %d", s.name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read %s response: %w", s.name, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s response: %w", s.name, err)
	}
	return nil
}

func (s httpSource) logFailure(op string, err error) {
	metrics.IncJobSourceFailure()
	telemetry.Warn("jobs.source.fetch_failed", map[string]any{
		"source": s.name,
		"op":     op,
		"error":  err.Error(),
	})
}

// flexString decodes any JSON scalar into its text form. Arrays, objects and
// null decode to the empty string.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
	case '[', '{', 'n':
		*f = ""
	default:
		*f = flexString(string(b))
	}
	return nil
}

// flexStrings decodes a JSON array of scalars, or a single comma-separated
// string, into a list.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '[':
		var items []flexString
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				out = append(out, string(item))
			}
		}
		*f = out
	case '"':
		var s flexString
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		var out []string
		for _, part := range strings.Split(string(s), ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*f = out
	default:
		*f = nil
	}
	return nil
}

func firstNonEmpty(values ...flexString) string {
	for _, v := range values {
		if s := strings.TrimSpace(string(v)); s != "" {
			return s
		}
	}
	return ""
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func tagsOrEmpty(tags flexStrings) []string {
	if len(tags) == 0 {
		return []string{}
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func nowRFC3339() string {
	return nowFunc().UTC().Format(time.RFC3339)
}

func applyFilter(list []Job, f *Filter) []Job {
	if f.IsEmpty() {
		return list
	}
	return FilterJobs(list, f)
}
