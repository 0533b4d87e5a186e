package jobs

import "strings"

// Job is the canonical listing every provider record is mapped into.
// Fields other than Salary are never left unset.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	ApplyURL    string   `json:"apply_url"`
	Description string   `json:"description"`
	Salary      *string  `json:"salary,omitempty"`
	PostedDate  string   `json:"posted_date"`
	Source      string   `json:"source"`
}

// Placeholders used when a provider omits a field.
const (
	UnknownTitle    = "Unknown Position"
	UnknownCompany  = "Unknown Company"
	DefaultLocation = "Remote"
)

// IsRemote reports whether the location reads as remote work.
func IsRemote(job Job) bool {
	loc := strings.ToLower(job.Location)
	return strings.Contains(loc, "remote") || strings.Contains(loc, "anywhere")
}

var categories = []string{
	"Software Development",
	"Design",
	"Marketing",
	"Sales",
	"Customer Service",
	"Data Science",
	"DevOps",
	"Product Management",
	"Content Writing",
	"Translation",
	"Finance",
	"Legal",
	"Healthcare",
	"Education",
	"Other",
}

// Categories returns the fixed category list offered to clients.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
