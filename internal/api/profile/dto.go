package profiles

import (
	"time"

	"HealthCoach/internal/entity"
)

type UpdatePreferencesRequest struct {
	FitnessLevel        string          `json:"fitness_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DietaryRestrictions []string        `json:"dietary_restrictions,omitempty" validate:"omitempty,dive,min=1,max=50"`
	Notifications       map[string]bool `json:"notification_preferences,omitempty"`
}

type AddGoalRequest struct {
	Goal string `json:"goal" validate:"required,min=1,max=200"`
}

type AchieveGoalRequest struct {
	Goal string `json:"goal" validate:"required,min=1,max=200"`
}

type ProfileResponse struct {
	UserID      string                 `json:"user_id"`
	Preferences entity.Preferences     `json:"preferences"`
	Progress    entity.ProgressMetrics `json:"progress"`
	CreatedAt   time.Time              `json:"created_at"`
}

type GoalResponse struct {
	Goals         []string              `json:"goals"`
	AchievedGoals []entity.AchievedGoal `json:"achieved_goals"`
}
