package chatHandler

import (
	chatService "HealthCoach/internal/api/chat/service"
	"HealthCoach/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")

	// Every chat endpoint needs a resolved conversation identity.
	chat.Use(h.middleware.NewSessionMiddleware)

	chat.Post("/ask", h.Ask)
	chat.Get("/history", h.GetHistory)
	chat.Get("/history/:id", h.GetTurn)
	chat.Get("/ws", h.UpgradeWebsocket, h.Websocket())

	nlp := chat.Group("/nlp")
	nlp.Post("/test", h.TestNLP)
}
