package interviews

import "math/rand/v2"

var sampleQuestions = []string{
	"Tell me about a challenging project you worked on and how you overcame obstacles.",
	"Describe a time when you had to learn a new technology quickly.",
	"How do you handle working with difficult team members?",
	"What's your approach to debugging complex issues?",
	"Tell me about a time when you had to make a difficult technical decision.",
	"How do you stay updated with the latest industry trends?",
	"Describe a situation where you had to explain a complex technical concept to a non-technical person.",
	"What's your experience with agile development methodologies?",
	"How do you prioritize tasks when you have multiple deadlines?",
	"Tell me about a time when you failed and what you learned from it.",
}

var cannedQuestions = []string{
	"Tell me about your experience with this role.",
	"What are your strengths and weaknesses?",
	"Why are you interested in this position?",
	"Describe a challenging project you worked on.",
	"Where do you see yourself in 5 years?",
}

// SampleQuestions returns a copy of the practice question bank.
func SampleQuestions() []string {
	out := make([]string, len(sampleQuestions))
	copy(out, sampleQuestions)
	return out
}

// RandomQuestion picks one practice question uniformly.
func RandomQuestion() string {
	return sampleQuestions[rand.IntN(len(sampleQuestions))]
}
