package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// RemotiveName identifies jobs mapped from Remotive.
const RemotiveName = "remotive"

// Remotive adapts the remotive.com remote-jobs API.
type Remotive struct {
	httpSource
}

type remotiveRecord struct {
	ID                        flexString  `json:"id"`
	Title                     flexString  `json:"title"`
	CompanyName               flexString  `json:"company_name"`
	CandidateRequiredLocation flexString  `json:"candidate_required_location"`
	Tags                      flexStrings `json:"tags"`
	URL                       flexString  `json:"url"`
	Description               flexString  `json:"description"`
	Salary                    flexString  `json:"salary"`
	PublicationDate           flexString  `json:"publication_date"`
}

type remotiveListing struct {
	Jobs []remotiveRecord `json:"jobs"`
}

func NewRemotive(baseURL string, client *http.Client) *Remotive {
	return &Remotive{httpSource: newHTTPSource(RemotiveName, baseURL, client)}
}

func (s *Remotive) Name() string { return s.name }

func (s *Remotive) Fetch(ctx context.Context, f *Filter) []Job {
	var listing remotiveListing
	if err := s.getJSON(ctx, s.baseURL, &listing); err != nil {
		s.logFailure("list", err)
		return []Job{}
	}
	out := make([]Job, 0, len(listing.Jobs))
	for _, rec := range listing.Jobs {
		if job, ok := rec.toJob(); ok {
			out = append(out, job)
		}
	}
	return applyFilter(out, f)
}

// FetchByID accepts either a bare job object or a listing envelope.
func (s *Remotive) FetchByID(ctx context.Context, id string) (Job, bool) {
	if id == "" {
		return Job{}, false
	}
	var raw json.RawMessage
	if err := s.getJSON(ctx, s.baseURL+"/"+url.PathEscape(id), &raw); err != nil {
		s.logFailure("get", err)
		return Job{}, false
	}

	var envelope struct {
		Jobs []remotiveRecord `json:"jobs"`
		remotiveRecord
	}
	if err := json.Unmarshal(bytes.TrimSpace(raw), &envelope); err != nil {
		s.logFailure("get", err)
		return Job{}, false
	}

	candidates := envelope.Jobs
	if len(candidates) == 0 {
		candidates = []remotiveRecord{envelope.remotiveRecord}
	}
	for _, rec := range candidates {
		if job, ok := rec.toJob(); ok && job.ID == id {
			return job, true
		}
	}
	return Job{}, false
}

func (r remotiveRecord) toJob() (Job, bool) {
	id := firstNonEmpty(r.ID)
	if id == "" {
		return Job{}, false
	}
	return Job{
		ID:          id,
		Title:       orDefault(firstNonEmpty(r.Title), UnknownTitle),
		Company:     orDefault(firstNonEmpty(r.CompanyName), UnknownCompany),
		Location:    orDefault(firstNonEmpty(r.CandidateRequiredLocation), DefaultLocation),
		Tags:        tagsOrEmpty(r.Tags),
		ApplyURL:    firstNonEmpty(r.URL),
		Description: firstNonEmpty(r.Description),
		Salary:      optional(firstNonEmpty(r.Salary)),
		PostedDate:  orDefault(firstNonEmpty(r.PublicationDate), nowRFC3339()),
		Source:      RemotiveName,
	}, true
}

var _ Source = (*Remotive)(nil)
