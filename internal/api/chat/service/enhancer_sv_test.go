package chatService

import (
	"context"
	"io"
	"strings"
	"testing"

	"HealthCoach/internal/api/chat"
	"HealthCoach/internal/entity"
	"HealthCoach/pkg/gemini"
	"HealthCoach/pkg/nlp"
	openaiPkg "HealthCoach/pkg/openai"
	"HealthCoach/pkg/randx"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGemini struct {
	classifyCalls int
	qaCalls       int
	classifyFn    func(text string, labels []string) (gemini.ClassifyResult, error)
	qaFn          func(question, passage string) (gemini.QAResult, error)
}

func (s *stubGemini) ClassifyIntent(_ context.Context, text string, labels []string) (gemini.ClassifyResult, error) {
	s.classifyCalls++
	if s.classifyFn == nil {
		return gemini.ClassifyResult{}, context.DeadlineExceeded
	}
	return s.classifyFn(text, labels)
}

func (s *stubGemini) AnswerQuestion(_ context.Context, question, passage string) (gemini.QAResult, error) {
	s.qaCalls++
	if s.qaFn == nil {
		return gemini.QAResult{}, context.DeadlineExceeded
	}
	return s.qaFn(question, passage)
}

type stubEmbedder struct {
	calls   int
	matchFn func(query string, candidates []string, topK int) ([]openaiPkg.Match, error)
}

func (s *stubEmbedder) BestMatches(_ context.Context, query string, candidates []string, topK int) ([]openaiPkg.Match, error) {
	s.calls++
	if s.matchFn == nil {
		return nil, context.DeadlineExceeded
	}
	return s.matchFn(query, candidates, topK)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testProcessor(t *testing.T) nlp.IProcessor {
	t.Helper()
	processor, err := nlp.NewProcessor()
	require.NoError(t, err)
	return processor
}

func nutritionRule() chat.RuleResponse {
	return chat.RuleResponse{
		Response:     "Based on wellness guidelines, eat a variety of vegetables.",
		IntentType:   nlp.IntentNutrition,
		Confidence:   0.5,
		Matched:      true,
		Context:      "eat a variety of vegetables. stay hydrated throughout the day",
		Alternatives: []string{"eat a variety of vegetables", "stay hydrated throughout the day"},
	}
}

func nutritionInput(t *testing.T) *nlp.ProcessedInput {
	return testProcessor(t).Process("what should I eat")
}

func beginnerContext() *entity.PersonalizationContext {
	return &entity.PersonalizationContext{FitnessLevel: entity.FitnessLevelBeginner}
}

func TestEnhanceQAReplacesBuffer(t *testing.T) {
	gem := &stubGemini{
		qaFn: func(question, passage string) (gemini.QAResult, error) {
			return gemini.QAResult{Answer: "Focus on leafy greens.", Score: 0.9}, nil
		},
	}
	e := newResponseEnhancer(testLogger(), gem, nil, testProcessor(t), randx.NewSeeded(1))

	out := e.Enhance(context.Background(), "u1", nutritionInput(t), nutritionRule(), beginnerContext())

	assert.True(t, strings.HasPrefix(out, "Focus on leafy greens."), out)
	assert.Equal(t, 1, gem.qaCalls)
}

func TestEnhanceQASkippedOnLowScore(t *testing.T) {
	gem := &stubGemini{
		qaFn: func(question, passage string) (gemini.QAResult, error) {
			return gemini.QAResult{Answer: "Focus on leafy greens.", Score: 0.5}, nil
		},
	}
	e := newResponseEnhancer(testLogger(), gem, nil, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	out := e.Enhance(context.Background(), "u1", nutritionInput(t), rule, beginnerContext())

	assert.True(t, strings.HasPrefix(out, rule.Response), out)
}

func TestEnhanceQASkippedWithoutContext(t *testing.T) {
	gem := &stubGemini{}
	e := newResponseEnhancer(testLogger(), gem, nil, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	rule.Context = ""
	e.Enhance(context.Background(), "u1", nutritionInput(t), rule, beginnerContext())

	assert.Zero(t, gem.qaCalls)
}

func TestEnhanceSemanticRerankReplacesBuffer(t *testing.T) {
	emb := &stubEmbedder{
		matchFn: func(query string, candidates []string, topK int) ([]openaiPkg.Match, error) {
			return []openaiPkg.Match{{Candidate: candidates[1], Score: 0.85}}, nil
		},
	}
	e := newResponseEnhancer(testLogger(), nil, emb, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	out := e.Enhance(context.Background(), "u1", nutritionInput(t), rule, beginnerContext())

	assert.True(t, strings.HasPrefix(out, rule.Alternatives[1]), out)
	assert.Equal(t, 1, emb.calls)
}

func TestEnhanceSemanticRerankSkippedOnConfidentRule(t *testing.T) {
	emb := &stubEmbedder{}
	e := newResponseEnhancer(testLogger(), nil, emb, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	rule.Confidence = 0.7
	e.Enhance(context.Background(), "u1", nutritionInput(t), rule, beginnerContext())

	assert.Zero(t, emb.calls)
}

func TestEnhanceModelFailuresAreSkipped(t *testing.T) {
	gem := &stubGemini{}
	emb := &stubEmbedder{}
	e := newResponseEnhancer(testLogger(), gem, emb, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	out := e.Enhance(context.Background(), "u1", nutritionInput(t), rule, beginnerContext())

	assert.True(t, strings.HasPrefix(out, rule.Response), out)
	assert.Equal(t, 1, gem.classifyCalls)
	assert.Equal(t, 1, gem.qaCalls)
	assert.Equal(t, 1, emb.calls)
}

func TestEnhanceAppendsLevelTip(t *testing.T) {
	e := newResponseEnhancer(testLogger(), nil, nil, testProcessor(t), randx.NewSeeded(1))

	pctx := &entity.PersonalizationContext{FitnessLevel: entity.FitnessLevelAdvanced}
	out := e.Enhance(context.Background(), "u1", nutritionInput(t), nutritionRule(), pctx)

	assert.Contains(t, out, "fine-tune your macronutrient ratios for optimal performance")
}

func TestEnhanceFallsBackToBeginnerWithoutProfile(t *testing.T) {
	e := newResponseEnhancer(testLogger(), nil, nil, testProcessor(t), randx.NewSeeded(1))

	out := e.Enhance(context.Background(), "u1", nutritionInput(t), nutritionRule(), nil)

	assert.Contains(t, out, "start with simple dietary changes")
}

func TestEnhanceDisclaimerOnLowConfidence(t *testing.T) {
	e := newResponseEnhancer(testLogger(), nil, nil, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	rule.Confidence = 0.2
	out := e.Enhance(context.Background(), "u1", nutritionInput(t), rule, beginnerContext())

	assert.True(t, strings.HasSuffix(out, disclaimer), out)
}

func TestEnhanceNoDisclaimerOnModerateConfidence(t *testing.T) {
	e := newResponseEnhancer(testLogger(), nil, nil, testProcessor(t), randx.NewSeeded(1))

	out := e.Enhance(context.Background(), "u1", nutritionInput(t), nutritionRule(), beginnerContext())

	assert.NotContains(t, out, disclaimer)
}

func TestEnhanceDietarySentenceRequiresNutritionIntent(t *testing.T) {
	e := newResponseEnhancer(testLogger(), nil, nil, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	rule.IntentType = nlp.IntentFitness
	pctx := &entity.PersonalizationContext{
		FitnessLevel:        entity.FitnessLevelBeginner,
		DietaryRestrictions: []string{"vegan"},
	}
	out := e.Enhance(context.Background(), "u1", nutritionInput(t), rule, pctx)

	assert.NotContains(t, out, "For your vegan diet")
}

func TestEnhanceZeroShotSwitchesPersonalizationTopic(t *testing.T) {
	gem := &stubGemini{
		classifyFn: func(text string, labels []string) (gemini.ClassifyResult, error) {
			return gemini.ClassifyResult{Labels: []string{nlp.IntentSleep}, Scores: []float64{0.95}}, nil
		},
	}
	e := newResponseEnhancer(testLogger(), gem, nil, testProcessor(t), randx.NewSeeded(1))

	rule := nutritionRule()
	rule.Context = ""
	out := e.Enhance(context.Background(), "u1", nutritionInput(t), rule, beginnerContext())

	// The re-scored intent redirects the level tip to the sleep table.
	assert.Contains(t, out, "focus on establishing a consistent sleep schedule")
	assert.NotContains(t, out, "start with simple dietary changes")
}

func TestEnhanceTracksInteractionCount(t *testing.T) {
	e := newResponseEnhancer(testLogger(), nil, nil, testProcessor(t), randx.NewSeeded(1))

	input := nutritionInput(t)
	rule := nutritionRule()
	for i := 0; i < 12; i++ {
		e.Enhance(context.Background(), "u1", input, rule, nil)
	}

	// Past ten turns the session-only fallback infers intermediate level.
	out := e.Enhance(context.Background(), "u1", input, rule, nil)
	assert.Contains(t, out, "experiment with meal planning and preparation")

	// A different user is unaffected.
	other := e.Enhance(context.Background(), "u2", input, rule, nil)
	assert.Contains(t, other, "start with simple dietary changes")
}
