package resumes

import (
	"context"
	"fmt"

	"jobprep-backend/internal/aiparse"
	"jobprep-backend/internal/llm"
	"jobprep-backend/internal/shared/metrics"
	"jobprep-backend/internal/shared/util"
)

const maxPromptChars = 20000

var (
	defaultSkills      = []string{"JavaScript", "React", "Node.js", "TypeScript"}
	defaultExperience  = []string{"Experience details not found"}
	defaultEducation   = []string{"Education details not found"}
	defaultSummary     = "Professional summary not found"
	defaultSuggestions = []string{"Add more quantifiable achievements", "Include specific technologies used"}

	technicalQuestions = []string{
		"What programming languages are you most proficient in?",
		"Describe a complex technical problem you solved.",
		"How do you approach debugging production issues?",
		"What's your experience with cloud platforms?",
		"How do you stay updated with new technologies?",
	}
	behavioralQuestions = []string{
		"Tell me about a time you had to work with a difficult team member.",
		"Describe a project where you had to learn something new quickly.",
		"How do you handle competing priorities and deadlines?",
		"Tell me about a time you failed and what you learned from it.",
		"Describe a situation where you had to explain a technical concept to a non-technical person.",
	}
)

const analysisPrompt = `Analyze the following resume and provide a structured analysis:

%s

Please provide the analysis in the following JSON format:
{
  "skills": ["skill1", "skill2", "skill3"],
  "experience": ["Summary of work experience"],
  "education": ["Summary of education"],
  "summary": "Overall professional summary",
  "suggestions": ["suggestion1", "suggestion2", "suggestion3"],
  "generated_questions": {
    "technical": ["question1", "question2"],
    "behavioral": ["question1", "question2"]
  }
}

Focus on:
- Technical skills and technologies
- Years of experience
- Key achievements
- Areas for improvement
- Suggestions for enhancement`

// Analyzer turns résumé text into an Analysis using the configured model.
type Analyzer struct {
	Client llm.Client
}

// Analyze calls the model once. A failed call returns aiparse.ErrModelCall;
// unparseable output falls back to field scraping and canned defaults.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Analysis, error) {
	raw, err := a.Client.Complete(ctx, BuildPrompt(text))
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %w", aiparse.ErrModelCall, err)
	}
	return ParseAnalysis(raw), nil
}

// BuildPrompt embeds the résumé text in the analysis instruction.
func BuildPrompt(text string) string {
	return fmt.Sprintf(analysisPrompt, util.TruncateUTF8(text, maxPromptChars))
}

// ParseAnalysis normalizes raw model output. A decodable JSON object is
// returned as-is; otherwise fields are scraped from the text.
func ParseAnalysis(raw string) Analysis {
	var out Analysis
	if aiparse.ExtractObject(raw, &out) {
		out.Confidence = aiparse.High
		return out
	}

	metrics.IncLLMFallback()
	skills, _ := aiparse.ListOr(raw, "skill", defaultSkills)
	suggestions, _ := aiparse.ListOr(raw, "suggestion", defaultSuggestions)
	summary, _ := aiparse.SentenceOr(raw, "summary", defaultSummary)

	experience := defaultExperience
	if s, ok := aiparse.SentenceField(raw, "experience"); ok {
		experience = []string{s}
	}
	education := defaultEducation
	if s, ok := aiparse.SentenceField(raw, "education"); ok {
		education = []string{s}
	}

	return Analysis{
		Skills:      clone(skills),
		Experience:  clone(experience),
		Education:   clone(education),
		Summary:     aiparse.Text(summary),
		Suggestions: clone(suggestions),
		GeneratedQuestions: GeneratedQuestions{
			Technical:  clone(technicalQuestions),
			Behavioral: clone(behavioralQuestions),
		},
		Confidence: aiparse.Low,
	}
}

func clone(in []string) aiparse.StringList {
	out := make(aiparse.StringList, len(in))
	copy(out, in)
	return out
}
