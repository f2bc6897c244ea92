package entity

import "time"

// ChatTurn is the persisted record of one conversation turn.
type ChatTurn struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserInput  string    `json:"user_input"`
	IntentType string    `json:"intent_type"`
	Confidence float64   `json:"confidence"`
	Response   string    `json:"response"`
	Matched    bool      `json:"matched"`
	Enhanced   bool      `json:"enhanced"`
	Feedback   string    `json:"feedback"`
	CreatedAt  time.Time `json:"created_at"`
}
