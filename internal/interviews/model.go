package interviews

import (
	"time"

	"jobprep-backend/internal/aiparse"
)

// DefaultJobTitle is used when the caller does not name a role.
const DefaultJobTitle = "Software Developer"

// Feedback is the model's evaluation of one answer.
type Feedback struct {
	Score               aiparse.Int        `json:"score"`
	Feedback            aiparse.Text       `json:"feedback"`
	Suggestions         aiparse.StringList `json:"suggestions"`
	Strengths           aiparse.StringList `json:"strengths"`
	AreasForImprovement aiparse.StringList `json:"areasForImprovement"`
	Confidence          aiparse.Confidence `json:"confidence"`
}

// Entry is one answered question in a user's practice history.
type Entry struct {
	ID        string
	UserID    string
	Question  string
	Answer    string
	JobTitle  string
	Feedback  Feedback
	CreatedAt time.Time
}
