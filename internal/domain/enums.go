package domain

// ReviewOutcome is the learner's answer for one review of a word.
type ReviewOutcome string

const (
	ReviewOutcomeCorrect   ReviewOutcome = "correct"
	ReviewOutcomeIncorrect ReviewOutcome = "incorrect"
)

func (o ReviewOutcome) String() string { return string(o) }

func (o ReviewOutcome) IsValid() bool {
	switch o {
	case ReviewOutcomeCorrect, ReviewOutcomeIncorrect:
		return true
	}
	return false
}

// ParseReviewOutcome converts a wire token into a ReviewOutcome. Tokens are
// case-sensitive.
func ParseReviewOutcome(s string) (ReviewOutcome, error) {
	o := ReviewOutcome(s)
	if !o.IsValid() {
		return "", NewValidationError("result", "must be correct or incorrect")
	}
	return o, nil
}

// LLMProvider names a supported language model backend.
type LLMProvider string

const (
	LLMProviderAnthropic LLMProvider = "anthropic"
	LLMProviderOpenAI    LLMProvider = "openai"
)

func (p LLMProvider) String() string { return string(p) }

func (p LLMProvider) IsValid() bool {
	switch p {
	case LLMProviderAnthropic, LLMProviderOpenAI:
		return true
	}
	return false
}
