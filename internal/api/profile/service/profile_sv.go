package profileService

import (
	"context"

	profiles "HealthCoach/internal/api/profile"
	"HealthCoach/internal/entity"
)

func (s *profileService) GetProfile(_ context.Context, userID string) (*profiles.ProfileResponse, error) {
	var resp profiles.ProfileResponse
	s.store.WithProfile(userID, func(p *entity.UserProfile) {
		resp = makeProfileResponse(p)
	})
	return &resp, nil
}

func (s *profileService) UpdatePreferences(_ context.Context, userID string, req profiles.UpdatePreferencesRequest) (*profiles.ProfileResponse, error) {
	if req.FitnessLevel != "" && !isValidFitnessLevel(req.FitnessLevel) {
		return nil, profiles.ErrInvalidFitnessLevel
	}

	var resp profiles.ProfileResponse
	s.store.WithProfile(userID, func(p *entity.UserProfile) {
		p.UpdatePreferences(req.FitnessLevel, req.DietaryRestrictions, req.Notifications)
		resp = makeProfileResponse(p)
	})
	return &resp, nil
}

func (s *profileService) AddGoal(_ context.Context, userID string, req profiles.AddGoalRequest) (*profiles.GoalResponse, error) {
	var resp profiles.GoalResponse
	s.store.WithProfile(userID, func(p *entity.UserProfile) {
		p.AddHealthGoal(req.Goal)
		resp = makeGoalResponse(p)
	})
	return &resp, nil
}

func (s *profileService) AchieveGoal(_ context.Context, userID string, req profiles.AchieveGoalRequest) (*profiles.GoalResponse, error) {
	var resp profiles.GoalResponse
	var achieved bool
	s.store.WithProfile(userID, func(p *entity.UserProfile) {
		achieved = p.MarkGoalAchieved(req.Goal, s.store.Now())
		resp = makeGoalResponse(p)
	})
	if !achieved {
		return nil, profiles.ErrGoalNotFound
	}
	return &resp, nil
}

func (s *profileService) GetContext(_ context.Context, userID string) (*entity.PersonalizationContext, error) {
	var pctx entity.PersonalizationContext
	s.store.WithProfile(userID, func(p *entity.UserProfile) {
		pctx = p.GetPersonalizationContext()
	})
	return &pctx, nil
}

func makeProfileResponse(p *entity.UserProfile) profiles.ProfileResponse {
	return profiles.ProfileResponse{
		UserID:      p.UserID,
		Preferences: p.Preferences,
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt,
	}
}

func makeGoalResponse(p *entity.UserProfile) profiles.GoalResponse {
	return profiles.GoalResponse{
		Goals:         p.Preferences.HealthGoals,
		AchievedGoals: p.Progress.GoalsAchieved,
	}
}

func isValidFitnessLevel(level string) bool {
	switch level {
	case entity.FitnessLevelBeginner, entity.FitnessLevelIntermediate, entity.FitnessLevelAdvanced:
		return true
	}
	return false
}
