package middleware

import (
	"HealthCoach/pkg/log"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestMiddleware(reqRate rate.Limit, burst int) *middleware {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &middleware{
		rateLimitter:        newRateLimiter(reqRate, burst),
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
	}
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	m := newTestMiddleware(rate.Every(time.Hour), 2)

	app := fiber.New()
	app.Use(m.NewRateLimiter)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiterReusesBucketPerIP(t *testing.T) {
	limiter := newRateLimiter(rate.Every(time.Hour), 1)

	first := limiter.GetLimiterFrom("10.0.0.1")
	second := limiter.GetLimiterFrom("10.0.0.1")
	other := limiter.GetLimiterFrom("10.0.0.2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestLoggerConfigPassesRequestThrough(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	log.NewLogger()

	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Use(LoggerConfig())
	app.Get("/", func(c *fiber.Ctx) error {
		requestID, _ := c.Locals("request_id").(string)
		return c.SendString(requestID)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestSanitizeRequestBodyMasksSensitiveFields(t *testing.T) {
	out := sanitizeRequestBody("/api/v1/chat/ask", `{"user_input":"hi","token":"abc"}`)

	assert.Contains(t, out, `"token":"[SECRET]"`)
	assert.Contains(t, out, `"user_input":"hi"`)
}

func TestSanitizeRequestBodyMasksProfileHealthFields(t *testing.T) {
	out := sanitizeRequestBody("/api/v1/profile/preferences", `{"dietary_restrictions":["vegan"],"fitness_level":"beginner"}`)

	assert.Contains(t, out, `"dietary_restrictions":"[SECRET]"`)
	assert.Contains(t, out, `"fitness_level":"beginner"`)
}

func TestSanitizeRequestBodyNonJSON(t *testing.T) {
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("/api/v1/chat/ask", "user_input=hi"))
}
