package config

import (
	"fmt"
	"os"

	"HealthCoach/database/postgres"
	chatHandler "HealthCoach/internal/api/chat/handler"
	chatRepository "HealthCoach/internal/api/chat/repository"
	chatService "HealthCoach/internal/api/chat/service"
	profileHandler "HealthCoach/internal/api/profile/handler"
	profileService "HealthCoach/internal/api/profile/service"
	"HealthCoach/internal/middleware"
	"HealthCoach/internal/profile"
	"HealthCoach/pkg/gemini"
	"HealthCoach/pkg/knowledge"
	"HealthCoach/pkg/nlp"
	openaiPkg "HealthCoach/pkg/openai"
	"HealthCoach/pkg/randx"
	"HealthCoach/pkg/redis"
	"HealthCoach/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	sessionStore redis.ISessionStore
	geminiClient gemini.IGemini
	embedder     openaiPkg.IEmbedder
	processor    nlp.IProcessor
	kb           knowledge.IKnowledgeBase
	profiles     *profile.Store
	rng          *randx.Source
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithSessionStore(sessions redis.ISessionStore) ServerOption {
	return func(s *Server) error {
		s.sessionStore = sessions
		return nil
	}
}

// WithGeminiClient is optional: without an API key the chat pipeline runs
// rule-only and the enhancer skips its model steps.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable, model enhancement disabled: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithEmbedder() ServerOption {
	return func(s *Server) error {
		s.embedder = openaiPkg.NewEmbedder()
		return nil
	}
}

func WithNLPProcessor() ServerOption {
	return func(s *Server) error {
		processor, err := nlp.NewProcessor()
		if err != nil {
			return fmt.Errorf("failed to create nlp processor: %w", err)
		}
		s.processor = processor
		return nil
	}
}

func WithKnowledgeBase() ServerOption {
	return func(s *Server) error {
		if s.rng == nil {
			return fmt.Errorf("rng must be initialized before knowledge base")
		}
		s.kb = knowledge.New(s.rng)
		return nil
	}
}

func WithProfileStore() ServerOption {
	return func(s *Server) error {
		s.profiles = profile.NewStore()
		return nil
	}
}

func WithRNG(rng *randx.Source) ServerOption {
	return func(s *Server) error {
		s.rng = rng
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.sessionStore == nil {
			return fmt.Errorf("session store must be initialized before middleware")
		}
		if s.utils == nil {
			return fmt.Errorf("utils must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.sessionStore, s.utils)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chat Domain
	var chatRepo chatRepository.Repository
	if s.db != nil {
		chatRepo = chatRepository.New(s.db, s.log)
	}
	chatServices := chatService.New(s.log, s.processor, s.kb, s.geminiClient, s.embedder, s.profiles, chatRepo, s.utils, s.rng)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Profile Domain
	profileServices := profileService.New(s.log, s.profiles)
	profileHandlers := profileHandler.New(s.log, s.validator, s.middleware, profileServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatHandlers, profileHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
