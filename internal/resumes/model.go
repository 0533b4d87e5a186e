package resumes

import (
	"time"

	"jobprep-backend/internal/aiparse"
)

// Analysis is the structured view of a résumé returned by the model.
type Analysis struct {
	Skills             aiparse.StringList `json:"skills"`
	Experience         aiparse.StringList `json:"experience"`
	Education          aiparse.StringList `json:"education"`
	Summary            aiparse.Text       `json:"summary"`
	Suggestions        aiparse.StringList `json:"suggestions"`
	GeneratedQuestions GeneratedQuestions `json:"generated_questions"`
	Confidence         aiparse.Confidence `json:"confidence"`
}

// GeneratedQuestions are interview prompts derived from the résumé.
type GeneratedQuestions struct {
	Technical  aiparse.StringList `json:"technical"`
	Behavioral aiparse.StringList `json:"behavioral"`
}

// Record is one persisted analysis run.
type Record struct {
	ID         string
	UserID     string
	FileName   string
	StorageKey string
	ResumeText string
	Analysis   Analysis
	CreatedAt  time.Time
}
