package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"HealthCoach/internal/api/chat"
	chatService "HealthCoach/internal/api/chat/service"
	"HealthCoach/internal/profile"
	"HealthCoach/pkg/gemini"
	"HealthCoach/pkg/knowledge"
	"HealthCoach/pkg/log"
	"HealthCoach/pkg/nlp"
	openaiPkg "HealthCoach/pkg/openai"
	"HealthCoach/pkg/randx"
	"HealthCoach/pkg/utils"

	"github.com/joho/godotenv"
)

// The terminal front end: one local user, no persistence, same pipeline as
// the HTTP server.
func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	processor, err := nlp.NewProcessor()
	if err != nil {
		logger.Fatalf("Failed to initialize NLP processor: %v", err)
	}

	rng := randx.New()

	var geminiClient gemini.IGemini
	if client, err := gemini.NewGeminiClient(); err == nil {
		geminiClient = client
	} else {
		logger.Warnf("Gemini client unavailable, model enhancement disabled: %v", err)
	}

	var embedder openaiPkg.IEmbedder
	if os.Getenv("OPENAI_API_KEY") != "" {
		embedder = openaiPkg.NewEmbedder()
	}

	service := chatService.New(
		logger,
		processor,
		knowledge.New(rng),
		geminiClient,
		embedder,
		profile.NewStore(),
		nil,
		utils.New(),
		rng,
	)

	const userID = "cli-user"

	fmt.Println("Health Coach: Hello! I'm your wellness assistant. Ask me about nutrition, fitness, sleep, or stress management.")
	fmt.Println("Health Coach: Type 'quit', 'exit', or 'bye' to end our conversation.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "quit", "exit", "bye":
			fmt.Println("Health Coach: Take care! Remember, small consistent steps lead to big changes.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		response, err := service.ProcessMessage(ctx, userID, chat.AskRequest{UserInput: input})
		cancel()
		if err != nil {
			fmt.Println("Health Coach: Sorry, something went wrong. Please try again.")
			continue
		}

		fmt.Printf("Health Coach: %s\n", response.Response)
	}
}
