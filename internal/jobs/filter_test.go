package jobs

import (
	"errors"
	"net/url"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestMatches(t *testing.T) {
	pythonJob := Job{
		ID:          "1",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote, Anywhere",
		Tags:        []string{"Backend", "Django"},
		Description: "We are hiring a Python developer.",
	}
	onsite := Job{
		ID:       "2",
		Title:    "Designer",
		Company:  "Studio",
		Location: "Berlin, Germany",
		Tags:     []string{},
	}

	tests := []struct {
		name   string
		job    Job
		filter *Filter
		want   bool
	}{
		{name: "nil filter", job: onsite, filter: nil, want: true},
		{name: "empty filter", job: onsite, filter: &Filter{}, want: true},
		{name: "keyword in description and remote", job: pythonJob, filter: &Filter{Keywords: "python", Remote: boolPtr(true)}, want: true},
		{name: "keyword miss", job: pythonJob, filter: &Filter{Keywords: "java", Remote: boolPtr(true)}, want: false},
		{name: "keyword in tag", job: pythonJob, filter: &Filter{Keywords: "DJANGO"}, want: true},
		{name: "keyword in company", job: pythonJob, filter: &Filter{Keywords: "acme"}, want: true},
		{name: "category matches tag substring", job: pythonJob, filter: &Filter{Category: "back"}, want: true},
		{name: "category without tags fails", job: onsite, filter: &Filter{Category: "design"}, want: false},
		{name: "location substring", job: onsite, filter: &Filter{Location: "berlin"}, want: true},
		{name: "location miss", job: onsite, filter: &Filter{Location: "paris"}, want: false},
		{name: "remote false on onsite", job: onsite, filter: &Filter{Remote: boolPtr(false)}, want: true},
		{name: "remote true on onsite", job: onsite, filter: &Filter{Remote: boolPtr(true)}, want: false},
		{name: "remote false on remote", job: pythonJob, filter: &Filter{Remote: boolPtr(false)}, want: false},
		{name: "all fields anded", job: pythonJob, filter: &Filter{Keywords: "engineer", Category: "django", Location: "anywhere", Remote: boolPtr(true)}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.job, tt.filter); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoteFlagTracksLocation(t *testing.T) {
	locations := map[string]bool{
		"Remote":             true,
		"REMOTE - US only":   true,
		"Anywhere in Europe": true,
		"Worldwide":          false,
		"New York, NY":       false,
		"":                   false,
	}
	for loc, remote := range locations {
		job := Job{ID: "x", Location: loc}
		if got := Matches(job, &Filter{Remote: boolPtr(true)}); got != remote {
			t.Fatalf("location %q: remote filter = %v, want %v", loc, got, remote)
		}
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter(url.Values{
		"q":        {"  golang "},
		"category": {"Software"},
		"location": {"  "},
		"remote":   {"TRUE"},
	})
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}
	if f.Keywords != "golang" {
		t.Fatalf("expected q alias to populate keywords, got %q", f.Keywords)
	}
	if f.Category != "Software" {
		t.Fatalf("unexpected category %q", f.Category)
	}
	if f.Location != "" {
		t.Fatalf("expected blank location to be absent, got %q", f.Location)
	}
	if f.Remote == nil || !*f.Remote {
		t.Fatalf("expected remote=true")
	}

	f, err = ParseFilter(url.Values{"keywords": {"go"}, "q": {"ignored"}})
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}
	if f.Keywords != "go" || f.Remote != nil {
		t.Fatalf("unexpected filter %+v", f)
	}

	if _, err := ParseFilter(url.Values{"remote": {"maybe"}}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}

	f, err = ParseFilter(url.Values{})
	if err != nil || !f.IsEmpty() {
		t.Fatalf("expected empty filter, got %+v (%v)", f, err)
	}
}
