package profileHandler

import (
	profileService "HealthCoach/internal/api/profile/service"
	"HealthCoach/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	profileService profileService.IProfileService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps profileService.IProfileService,
) *ProfileHandler {
	return &ProfileHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		profileService: ps,
	}
}

func (h *ProfileHandler) Start(srv fiber.Router) {
	profile := srv.Group("/profile")

	profile.Use(h.middleware.NewSessionMiddleware)

	profile.Get("/", h.GetProfile)
	profile.Put("/preferences", h.UpdatePreferences)
	profile.Post("/goals", h.AddGoal)
	profile.Post("/goals/achieved", h.AchieveGoal)
	profile.Get("/context", h.GetContext)
}
