package main

import (
	"os"
	"os/signal"
	"syscall"

	"HealthCoach/internal/config"
	"HealthCoach/pkg/log"
	"HealthCoach/pkg/randx"
	"HealthCoach/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	sessionStore := redis.New()

	options := []config.ServerOption{
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithSessionStore(sessionStore),
		config.WithUtils(),
		config.WithMiddleware(),
		config.WithRNG(randx.New()),
		config.WithNLPProcessor(),
		config.WithKnowledgeBase(),
		config.WithProfileStore(),
		config.WithGeminiClient(),
		config.WithEmbedder(),
	}

	if os.Getenv("DB_HOST") != "" {
		options = append(options, config.WithDatabase())
	} else {
		logger.Warn("DB_HOST not set, chat history persistence disabled")
	}

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
