package profiles

import "HealthCoach/pkg/response"

var (
	ErrInvalidFitnessLevel = response.NewError(400, "invalid fitness level")
	ErrGoalNotFound        = response.NewError(404, "goal not found")
)
