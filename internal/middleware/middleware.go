package middleware

import (
	"HealthCoach/pkg/redis"
	"HealthCoach/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewSessionMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
	GetUserID(ctx *fiber.Ctx) string
}

type middleware struct {
	session             *sessionMiddleware
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, sessions redis.ISessionStore, utilsInstance utils.IUtils) Middleware {
	rateLimit := newRateLimiter(50, 100)
	session := newSessionMiddleware(logger, sessions, utilsInstance)
	requestID := NewRequestIDMiddleware()

	return &middleware{
		session:             session,
		rateLimitter:        rateLimit,
		requestIDMiddleware: requestID,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
