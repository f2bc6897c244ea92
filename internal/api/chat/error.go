package chat

import "HealthCoach/pkg/response"

var (
	ErrTurnNotFound       = response.NewError(404, "chat turn not found")
	ErrHistoryUnavailable = response.NewError(500, "failed to load chat history")
	ErrProcessingFailed   = response.NewError(500, "failed to process message")
)

// EmptyInputPrompt is returned by the front end without invoking the
// pipeline when the trimmed input is empty.
const EmptyInputPrompt = "Please enter a question about health, nutrition, or fitness."
