package interviews

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"jobprep-backend/internal/aiparse"
	"jobprep-backend/internal/llm"
	"jobprep-backend/internal/shared/metrics"
	"jobprep-backend/internal/shared/telemetry"
)

const (
	fallbackScore    = 75
	maxQuestions     = 5
	fallbackFeedback = "Good response with room for improvement"
)

var (
	fallbackSuggestions = []string{"Provide more specific examples", "Include quantifiable results"}
	fallbackStrengths   = []string{"Clear communication", "Relevant experience"}
	fallbackAreas       = []string{"Add more technical details", "Quantify achievements"}

	listMarker = regexp.MustCompile(`^(?:\d+[.)]|[-*•])\s*`)
)

const feedbackPrompt = `Evaluate this interview response for a %s position:

Question: %s
Answer: %s

Provide feedback in the following JSON format:
{
  "score": 85,
  "feedback": "Overall good response with specific examples",
  "suggestions": ["Be more specific about outcomes", "Include metrics"],
  "strengths": ["Clear communication", "Relevant experience"],
  "areasForImprovement": ["Quantify achievements", "More technical details"]
}

Score should be 0-100.
Be constructive and specific.`

const questionsPrompt = `Generate 5 relevant interview questions for a %s position.

Job Description: %s

Include a mix of:
- Technical questions
- Behavioral questions
- Problem-solving scenarios

Return only the questions as a simple list, one per line.`

// Coach asks the model to grade answers and draft questions.
type Coach struct {
	Client llm.Client
}

// Feedback grades one answer. A failed model call returns aiparse.ErrModelCall.
func (c *Coach) Feedback(ctx context.Context, question, answer, jobTitle string) (Feedback, error) {
	if strings.TrimSpace(jobTitle) == "" {
		jobTitle = DefaultJobTitle
	}
	raw, err := c.Client.Complete(ctx, fmt.Sprintf(feedbackPrompt, jobTitle, question, answer))
	if err != nil {
		return Feedback{}, fmt.Errorf("%w: %w", aiparse.ErrModelCall, err)
	}
	return ParseFeedback(raw), nil
}

// ParseFeedback normalizes raw model output into Feedback.
func ParseFeedback(raw string) Feedback {
	var out Feedback
	if aiparse.ExtractObject(raw, &out) {
		out.Confidence = aiparse.High
		return out
	}

	metrics.IncLLMFallback()
	score := fallbackScore
	if n, ok := aiparse.IntField(raw, "score"); ok {
		score = aiparse.Clamp(n, 0, 100)
	}
	text, _ := aiparse.SentenceOr(raw, "feedback", fallbackFeedback)
	suggestions, _ := aiparse.ListOr(raw, "suggestion", fallbackSuggestions)
	strengths, _ := aiparse.ListOr(raw, "strength", fallbackStrengths)
	areas, _ := aiparse.ListOr(raw, "areasForImprovement", fallbackAreas)

	return Feedback{
		Score:               aiparse.Int(score),
		Feedback:            aiparse.Text(text),
		Suggestions:         suggestions,
		Strengths:           strengths,
		AreasForImprovement: areas,
		Confidence:          aiparse.Low,
	}
}

// Questions drafts up to five questions for a role. Any model failure yields
// the canned list with low confidence.
func (c *Coach) Questions(ctx context.Context, jobTitle, jobDescription string) ([]string, aiparse.Confidence) {
	if strings.TrimSpace(jobTitle) == "" {
		jobTitle = DefaultJobTitle
	}
	raw, err := c.Client.Complete(ctx, fmt.Sprintf(questionsPrompt, jobTitle, jobDescription))
	if err != nil {
		telemetry.Warn("interviews.questions_fallback", map[string]any{
			"job_title": jobTitle,
			"error":     err.Error(),
		})
		metrics.IncLLMFallback()
		return canned(), aiparse.Low
	}
	questions := ParseQuestions(raw)
	if len(questions) == 0 {
		metrics.IncLLMFallback()
		return canned(), aiparse.Low
	}
	return questions, aiparse.High
}

// ParseQuestions keeps up to five non-empty lines with list markers removed.
func ParseQuestions(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		line = strings.Trim(line, "*")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == maxQuestions {
			break
		}
	}
	return out
}

func canned() []string {
	out := make([]string, len(cannedQuestions))
	copy(out, cannedQuestions)
	return out
}
