package profileService

import (
	"context"

	profiles "HealthCoach/internal/api/profile"
	"HealthCoach/internal/entity"
	"HealthCoach/internal/profile"

	"github.com/sirupsen/logrus"
)

type IProfileService interface {
	GetProfile(ctx context.Context, userID string) (*profiles.ProfileResponse, error)
	UpdatePreferences(ctx context.Context, userID string, req profiles.UpdatePreferencesRequest) (*profiles.ProfileResponse, error)
	AddGoal(ctx context.Context, userID string, req profiles.AddGoalRequest) (*profiles.GoalResponse, error)
	AchieveGoal(ctx context.Context, userID string, req profiles.AchieveGoalRequest) (*profiles.GoalResponse, error)
	GetContext(ctx context.Context, userID string) (*entity.PersonalizationContext, error)
}

type profileService struct {
	log   *logrus.Logger
	store *profile.Store
}

func New(log *logrus.Logger, store *profile.Store) IProfileService {
	return &profileService{
		log:   log,
		store: store,
	}
}
