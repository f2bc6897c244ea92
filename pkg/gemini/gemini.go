package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// IGemini wraps the pretrained language-understanding models the response
// enhancer consults: extractive question answering and zero-shot intent
// classification. Both are scoring oracles; a failed call simply means the
// enhancement step is skipped.
type IGemini interface {
	AnswerQuestion(ctx context.Context, question string, passage string) (QAResult, error)
	ClassifyIntent(ctx context.Context, text string, labels []string) (ClassifyResult, error)
}

type QAResult struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

type ClassifyResult struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) AnswerQuestion(ctx context.Context, question string, passage string) (QAResult, error) {
	prompt := fmt.Sprintf(`You are an extractive question answering model.
Given a question and a context passage, extract the answer span from the passage.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"answer": "<span copied from the passage>", "score": 0.0}

score is your confidence in [0,1]. If the passage does not contain an answer,
return an empty answer with score 0.

Question: %s
Passage: %s`, question, passage)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return QAResult{}, err
	}

	var result QAResult
	if err := json.Unmarshal([]byte(stripFences(text)), &result); err != nil {
		return QAResult{}, fmt.Errorf("failed to parse QA result: %w", err)
	}
	result.Score = clamp01(result.Score)

	return result, nil
}

func (g *geminiClient) ClassifyIntent(ctx context.Context, text string, labels []string) (ClassifyResult, error) {
	prompt := fmt.Sprintf(`You are a zero-shot text classifier.
Score the input text against each candidate label.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"labels": ["label1", "label2"], "scores": [0.9, 0.1]}

Rules:
- use only the candidate labels, ordered by descending score
- scores are floats in [0,1]

Candidate labels: %s
Input text: %s`, strings.Join(labels, ", "), text)

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return ClassifyResult{}, err
	}

	var result ClassifyResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return ClassifyResult{}, fmt.Errorf("failed to parse classification result: %w", err)
	}
	if len(result.Labels) == 0 || len(result.Labels) != len(result.Scores) {
		return ClassifyResult{}, errors.New("malformed classification result")
	}
	for i := range result.Scores {
		result.Scores[i] = clamp01(result.Scores[i])
	}

	return result, nil
}

func (g *geminiClient) generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
