package chat

import (
	"time"

	"HealthCoach/pkg/nlp"
)

type AskRequest struct {
	UserInput string `json:"user_input" validate:"required,min=1,max=500"`
	Feedback  string `json:"feedback,omitempty" validate:"omitempty,max=500"`
}

type AskResponse struct {
	Response string `json:"response"`
}

// RuleMatch is the rule engine's verdict for one turn. Context and
// Alternatives feed the enhancement stage: the full advice bucket doubles
// as a QA passage and as re-ranking candidates.
type RuleMatch struct {
	Matched      bool
	IntentType   string
	Template     string
	Advice       string
	Confidence   float64
	Context      string
	Alternatives []string
}

// RuleResponse is the rendered rule-based reply.
type RuleResponse struct {
	Response     string
	IntentType   string
	Confidence   float64
	Matched      bool
	Context      string
	Alternatives []string
	Entities     nlp.EntitySet
}

type HistoryEntry struct {
	ID         string    `json:"id"`
	UserInput  string    `json:"user_input"`
	IntentType string    `json:"intent_type"`
	Confidence float64   `json:"confidence"`
	Response   string    `json:"response"`
	Matched    bool      `json:"matched"`
	Enhanced   bool      `json:"enhanced"`
	CreatedAt  time.Time `json:"created_at"`
}

type NLPTestRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type NLPTestResponse struct {
	Input      string        `json:"input"`
	Tokens     []string      `json:"tokens"`
	Intent     string        `json:"intent"`
	Confidence float64       `json:"confidence"`
	Entities   nlp.EntitySet `json:"entities"`
}
