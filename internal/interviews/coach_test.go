package interviews

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"jobprep-backend/internal/aiparse"
	"jobprep-backend/internal/llm"
)

func TestParseFeedback(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantScore  int
		wantConf   aiparse.Confidence
		wantFirst  string
		wantReview string
	}{
		{
			name:       "structured verbatim",
			raw:        `Sure! {"score": 140, "feedback": "Great", "suggestions": ["More metrics"], "strengths": ["Clarity"], "areasForImprovement": "Depth"}`,
			wantScore:  140,
			wantConf:   aiparse.High,
			wantFirst:  "More metrics",
			wantReview: "Great",
		},
		{
			name:       "string score",
			raw:        `{"score": "82", "feedback": "Solid"}`,
			wantScore:  82,
			wantConf:   aiparse.High,
			wantReview: "Solid",
		},
		{
			name:       "null score keeps structured feedback",
			raw:        `{"score": null, "feedback": "Solid STAR answer", "suggestions": ["x"]}`,
			wantScore:  0,
			wantConf:   aiparse.High,
			wantFirst:  "x",
			wantReview: "Solid STAR answer",
		},
		{
			name:       "scraped score clamped",
			raw:        "Score: 130\nFeedback: Strong answer. Keep it up",
			wantScore:  100,
			wantConf:   aiparse.Low,
			wantFirst:  fallbackSuggestions[0],
			wantReview: "Strong answer",
		},
		{
			name:       "all defaults",
			raw:        "no structure at all",
			wantScore:  fallbackScore,
			wantConf:   aiparse.Low,
			wantFirst:  fallbackSuggestions[0],
			wantReview: fallbackFeedback,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFeedback(tt.raw)
			if int(got.Score) != tt.wantScore {
				t.Fatalf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Confidence != tt.wantConf {
				t.Fatalf("confidence = %s, want %s", got.Confidence, tt.wantConf)
			}
			if string(got.Feedback) != tt.wantReview {
				t.Fatalf("feedback = %q, want %q", got.Feedback, tt.wantReview)
			}
			if tt.wantFirst != "" && (len(got.Suggestions) == 0 || got.Suggestions[0] != tt.wantFirst) {
				t.Fatalf("suggestions = %v, want first %q", got.Suggestions, tt.wantFirst)
			}
		})
	}
}

func TestParseFeedbackFallbackLists(t *testing.T) {
	got := ParseFeedback("score: -4")
	if got.Score != 0 {
		t.Fatalf("expected clamp to 0, got %d", got.Score)
	}
	if !reflect.DeepEqual([]string(got.Strengths), fallbackStrengths) {
		t.Fatalf("unexpected strengths %v", got.Strengths)
	}
	if !reflect.DeepEqual([]string(got.AreasForImprovement), fallbackAreas) {
		t.Fatalf("unexpected areas %v", got.AreasForImprovement)
	}
}

func TestFeedbackDefaultsJobTitleAndWrapsErrors(t *testing.T) {
	var prompt string
	c := &Coach{Client: llm.ClientFunc(func(ctx context.Context, p string) (string, error) {
		prompt = p
		return `{"score": 90}`, nil
	})}
	if _, err := c.Feedback(context.Background(), "Q?", "A.", " "); err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	if !strings.Contains(prompt, "for a Software Developer position") {
		t.Fatalf("expected default job title in prompt: %q", prompt)
	}

	failing := &Coach{Client: llm.PlaceholderClient{}}
	if _, err := failing.Feedback(context.Background(), "Q?", "A.", "SRE"); !errors.Is(err, aiparse.ErrModelCall) {
		t.Fatalf("expected ErrModelCall, got %v", err)
	}
}

func TestParseQuestionsStripsMarkers(t *testing.T) {
	raw := "1. What is Go?\n\n2) Explain channels.\n- Describe a outage you handled.\n* **Why this team?**\n• How do you test?\n6. Extra question"
	got := ParseQuestions(raw)
	want := []string{
		"What is Go?",
		"Explain channels.",
		"Describe a outage you handled.",
		"Why this team?",
		"How do you test?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseQuestions = %#v, want %#v", got, want)
	}
}

func TestQuestionsSoftFails(t *testing.T) {
	c := &Coach{Client: llm.PlaceholderClient{}}
	got, conf := c.Questions(context.Background(), "Backend Engineer", "Go")
	if conf != aiparse.Low || !reflect.DeepEqual(got, cannedQuestions) {
		t.Fatalf("expected canned questions, got %v (%s)", got, conf)
	}
	got[0] = "mutated"
	if cannedQuestions[0] == "mutated" {
		t.Fatalf("canned questions must not be shared")
	}

	blank := &Coach{Client: llm.ClientFunc(func(ctx context.Context, p string) (string, error) {
		return "\n  \n", nil
	})}
	if _, conf := blank.Questions(context.Background(), "", ""); conf != aiparse.Low {
		t.Fatalf("expected canned questions for empty output")
	}
}

func TestRandomQuestionFromBank(t *testing.T) {
	bank := map[string]bool{}
	for _, q := range SampleQuestions() {
		bank[q] = true
	}
	if len(bank) != 10 {
		t.Fatalf("expected 10 sample questions, got %d", len(bank))
	}
	for i := 0; i < 50; i++ {
		if q := RandomQuestion(); !bank[q] {
			t.Fatalf("question %q not in bank", q)
		}
	}
}
