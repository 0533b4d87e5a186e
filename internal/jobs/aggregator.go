package jobs

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jobprep-backend/internal/shared/telemetry"
)

// Aggregator merges listings from several sources. Source order is
// significant: it decides dedup winners and the by-id probe order.
type Aggregator struct {
	sources []Source
}

func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{sources: sources}
}

// Sources returns the configured source names in priority order.
func (a *Aggregator) Sources() []string {
	names := make([]string, 0, len(a.sources))
	for _, s := range a.sources {
		names = append(names, s.Name())
	}
	return names
}

// GetJobs fetches every source concurrently, waits for all of them, then
// dedups by id (first seen wins) and sorts newest first. It never returns nil.
func (a *Aggregator) GetJobs(ctx context.Context, f *Filter) []Job {
	results := make([][]Job, len(a.sources))

	var g errgroup.Group
	for i, src := range a.sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = src.Fetch(ctx, f)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}

	merged := make([]Job, 0, total)
	seen := make(map[string]struct{}, total)
	for _, batch := range results {
		for _, job := range batch {
			if _, dup := seen[job.ID]; dup {
				continue
			}
			seen[job.ID] = struct{}{}
			merged = append(merged, job)
		}
	}

	SortByPostedDate(merged)

	telemetry.Info("jobs.aggregate", map[string]any{
		"sources":    len(a.sources),
		"fetched":    total,
		"returned":   len(merged),
		"filtered":   !f.IsEmpty(),
		"duplicates": total - len(merged),
	})
	return merged
}

// GetJobByID probes sources in priority order and returns the first hit.
func (a *Aggregator) GetJobByID(ctx context.Context, id string) (Job, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Job{}, false
	}
	for _, src := range a.sources {
		if err := ctx.Err(); err != nil {
			return Job{}, false
		}
		if job, ok := src.FetchByID(ctx, id); ok {
			return job, true
		}
	}
	return Job{}, false
}

// SortByPostedDate orders jobs newest first. Unparseable dates sort last and
// ties keep their input order.
func SortByPostedDate(list []Job) {
	keys := make([]time.Time, len(list))
	for i, job := range list {
		keys[i] = ParsePostedDate(job.PostedDate)
	}
	sort.Stable(byPostedDesc{jobs: list, keys: keys})
}

type byPostedDesc struct {
	jobs []Job
	keys []time.Time
}

func (b byPostedDesc) Len() int           { return len(b.jobs) }
func (b byPostedDesc) Less(i, j int) bool { return b.keys[i].After(b.keys[j]) }
func (b byPostedDesc) Swap(i, j int) {
	b.jobs[i], b.jobs[j] = b.jobs[j], b.jobs[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePostedDate reads the date formats providers use. It returns the zero
// time when nothing matches.
func ParsePostedDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}
	return time.Time{}
}
