package middleware

import (
	"errors"
	"time"

	"HealthCoach/pkg/redis"
	"HealthCoach/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	SessionCookieName = "coach_session"
	UserIDKey         = "user_id"

	sessionTTL = 30 * 24 * time.Hour
)

type sessionMiddleware struct {
	log      *logrus.Logger
	sessions redis.ISessionStore
	utils    utils.IUtils
}

func newSessionMiddleware(log *logrus.Logger, sessions redis.ISessionStore, utilsInstance utils.IUtils) *sessionMiddleware {
	return &sessionMiddleware{
		log:      log,
		sessions: sessions,
		utils:    utilsInstance,
	}
}

// NewSessionMiddleware identifies the caller via an opaque cookie. First
// contact mints a fresh session and user id; known sessions resolve to their
// bound user and get the binding TTL refreshed. There is no login: the
// cookie is the whole identity.
func (m *middleware) NewSessionMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)

	sessionID := ctx.Cookies(SessionCookieName)
	if sessionID == "" {
		sessionID = m.session.utils.NewSessionID()
		ctx.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			Expires:  time.Now().Add(sessionTTL),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	userID, err := m.session.sessions.ResolveUser(ctx.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, redis.ErrSessionNotFound) {
			m.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Session lookup failed, minting a fresh identity")
		}
		userID = m.session.utils.NewSessionID()
	}

	if err := m.session.sessions.BindUser(ctx.Context(), sessionID, userID, sessionTTL); err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to refresh session binding")
	}

	ctx.Locals(UserIDKey, userID)

	return ctx.Next()
}

func (m *middleware) GetUserID(ctx *fiber.Ctx) string {
	userID, ok := ctx.Locals(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
