package openai

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/sashabaranov/go-openai"
)

// IEmbedder is the semantic-similarity collaborator: it ranks candidate
// responses against a query by cosine similarity of sentence embeddings.
type IEmbedder interface {
	BestMatches(ctx context.Context, query string, candidates []string, topK int) ([]Match, error)
}

type Match struct {
	Candidate string  `json:"candidate"`
	Score     float64 `json:"score"`
}

type embeddingService struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewEmbedder() IEmbedder {
	apiKey := os.Getenv("OPENAI_API_KEY")

	model := openai.EmbeddingModel(os.Getenv("OPENAI_EMBEDDING_MODEL"))
	if model == "" {
		model = openai.SmallEmbedding3
	}

	return &embeddingService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (e *embeddingService) BestMatches(ctx context.Context, query string, candidates []string, topK int) ([]Match, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	inputs := make([]string, 0, len(candidates)+1)
	inputs = append(inputs, query)
	inputs = append(inputs, candidates...)

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: inputs,
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding API error: %w", err)
	}

	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("embedding API returned %d vectors for %d inputs", len(resp.Data), len(inputs))
	}

	queryVec := resp.Data[0].Embedding
	matches := make([]Match, 0, len(candidates))
	for i, candidate := range candidates {
		matches = append(matches, Match{
			Candidate: candidate,
			Score:     cosineSimilarity(queryVec, resp.Data[i+1].Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}

	return matches, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
