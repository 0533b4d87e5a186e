package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// RemoteOKName identifies jobs mapped from RemoteOK.
const RemoteOKName = "remoteok"

// RemoteOK adapts the remoteok.com public API. Its listing is a JSON array
// whose first element is a legal notice without an id.
type RemoteOK struct {
	httpSource
}

type remoteOKRecord struct {
	ID          flexString  `json:"id"`
	Position    flexString  `json:"position"`
	Title       flexString  `json:"title"`
	Company     flexString  `json:"company"`
	Location    flexString  `json:"location"`
	Tags        flexStrings `json:"tags"`
	URL         flexString  `json:"url"`
	ApplyURL    flexString  `json:"apply_url"`
	Description flexString  `json:"description"`
	Salary      flexString  `json:"salary"`
	SalaryMin   flexString  `json:"salary_min"`
	SalaryMax   flexString  `json:"salary_max"`
	Date        flexString  `json:"date"`
}

func NewRemoteOK(baseURL string, client *http.Client) *RemoteOK {
	return &RemoteOK{httpSource: newHTTPSource(RemoteOKName, baseURL, client)}
}

func (s *RemoteOK) Name() string { return s.name }

func (s *RemoteOK) Fetch(ctx context.Context, f *Filter) []Job {
	var records []remoteOKRecord
	if err := s.getJSON(ctx, s.baseURL, &records); err != nil {
		s.logFailure("list", err)
		return []Job{}
	}
	return applyFilter(s.convertAll(records), f)
}

func (s *RemoteOK) FetchByID(ctx context.Context, id string) (Job, bool) {
	if id == "" {
		return Job{}, false
	}
	var raw json.RawMessage
	if err := s.getJSON(ctx, s.baseURL+"/"+url.PathEscape(id), &raw); err != nil {
		s.logFailure("get", err)
		return Job{}, false
	}

	var records []remoteOKRecord
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var one remoteOKRecord
		if err := json.Unmarshal(trimmed, &one); err != nil {
			s.logFailure("get", err)
			return Job{}, false
		}
		records = append(records, one)
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		s.logFailure("get", err)
		return Job{}, false
	}

	for _, job := range s.convertAll(records) {
		if job.ID == id {
			return job, true
		}
	}
	return Job{}, false
}

func (s *RemoteOK) convertAll(records []remoteOKRecord) []Job {
	out := make([]Job, 0, len(records))
	for _, rec := range records {
		if job, ok := rec.toJob(); ok {
			out = append(out, job)
		}
	}
	return out
}

func (r remoteOKRecord) toJob() (Job, bool) {
	id := firstNonEmpty(r.ID)
	if id == "" {
		return Job{}, false
	}
	salary := firstNonEmpty(r.Salary)
	if salary == "" {
		salary = salaryRange(firstNonEmpty(r.SalaryMin), firstNonEmpty(r.SalaryMax))
	}
	return Job{
		ID:          id,
		Title:       orDefault(firstNonEmpty(r.Position, r.Title), UnknownTitle),
		Company:     orDefault(firstNonEmpty(r.Company), UnknownCompany),
		Location:    orDefault(firstNonEmpty(r.Location), DefaultLocation),
		Tags:        tagsOrEmpty(r.Tags),
		ApplyURL:    firstNonEmpty(r.URL, r.ApplyURL),
		Description: firstNonEmpty(r.Description),
		Salary:      optional(salary),
		PostedDate:  orDefault(firstNonEmpty(r.Date), nowRFC3339()),
		Source:      RemoteOKName,
	}, true
}

// salaryRange renders numeric bounds; zero means the provider left it unset.
func salaryRange(min, max string) string {
	if min == "0" {
		min = ""
	}
	if max == "0" {
		max = ""
	}
	switch {
	case min != "" && max != "":
		return min + " - " + max
	case min != "":
		return min + "+"
	default:
		return max
	}
}

var _ Source = (*RemoteOK)(nil)
