package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T) IProcessor {
	t.Helper()
	processor, err := NewProcessor()
	require.NoError(t, err)
	return processor
}

func TestPreprocessRemovesStopwordsAndPunctuation(t *testing.T) {
	p := newTestProcessor(t)

	tokens := p.Preprocess("What is the best meat for protein?")

	assert.Contains(t, tokens, "best")
	assert.Contains(t, tokens, "meat")
	assert.Contains(t, tokens, "protein")
	assert.NotContains(t, tokens, "what")
	assert.NotContains(t, tokens, "is")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "for")
}

func TestPreprocessEmptyInput(t *testing.T) {
	p := newTestProcessor(t)

	assert.Empty(t, p.Preprocess(""))
	assert.Empty(t, p.Preprocess("   "))
	assert.Empty(t, p.Preprocess("!?!"))
}

func TestExtractIntentEmptyTokens(t *testing.T) {
	p := newTestProcessor(t)

	intent := p.ExtractIntent(nil)

	assert.Equal(t, IntentUnknown, intent.Type)
	assert.Zero(t, intent.Confidence)
}

func TestExtractIntentNoKeywordMatch(t *testing.T) {
	p := newTestProcessor(t)

	intent := p.ExtractIntent([]string{"quantum", "chromodynamics"})

	assert.Equal(t, IntentUnknown, intent.Type)
	assert.Zero(t, intent.Confidence)
}

func TestExtractIntentFullMatchCapsAtOne(t *testing.T) {
	p := newTestProcessor(t)

	intent := p.ExtractIntent([]string{"eat", "food", "diet"})

	assert.Equal(t, IntentNutrition, intent.Type)
	assert.Equal(t, 1.0, intent.Confidence)
}

func TestExtractIntentPartialMatch(t *testing.T) {
	p := newTestProcessor(t)

	intent := p.ExtractIntent([]string{"eat", "xylophone"})

	assert.Equal(t, IntentNutrition, intent.Type)
	assert.InDelta(t, 0.5, intent.Confidence, 1e-9)
}

func TestExtractIntentConfidenceInRange(t *testing.T) {
	p := newTestProcessor(t)

	inputs := [][]string{
		{"sleep"},
		{"stress", "anxiety", "meditation"},
		{"run", "gym", "unrelated", "words", "here"},
		{"health", "eat", "sleep", "stress", "run"},
	}
	for _, tokens := range inputs {
		intent := p.ExtractIntent(tokens)
		assert.GreaterOrEqual(t, intent.Confidence, 0.0)
		assert.LessOrEqual(t, intent.Confidence, 1.0)
		assert.NotEqual(t, IntentUnknown, intent.Type)
	}
}

func TestExtractIntentTieBreaksByTopicOrder(t *testing.T) {
	p := newTestProcessor(t)

	// One nutrition keyword, one fitness keyword: nutrition is scored first.
	intent := p.ExtractIntent([]string{"eat", "run"})

	assert.Equal(t, IntentNutrition, intent.Type)
}

func TestExtractEntitiesByCategory(t *testing.T) {
	p := newTestProcessor(t)

	entities := p.ExtractEntities([]string{"run", "morning", "stress", "best", "protein"})

	assert.Contains(t, entities.Activities, "run")
	assert.Contains(t, entities.TimePeriods, "morning")
	assert.Contains(t, entities.HealthConditions, "stress")
	assert.Contains(t, entities.ComparativeTerms, "best")
	assert.Contains(t, entities.FoodItems, "protein")
}

func TestExtractEntitiesPreservesOrder(t *testing.T) {
	p := newTestProcessor(t)

	entities := p.ExtractEntities([]string{"chicken", "rice", "fish"})

	assert.Equal(t, []string{"chicken", "rice", "fish"}, entities.FoodItems)
}

func TestExtractEntitiesMeatProteinCoupling(t *testing.T) {
	p := newTestProcessor(t)

	entities := p.ExtractEntities([]string{"meat", "protein"})

	assert.Contains(t, entities.FoodItems, "meat")
	assert.Contains(t, entities.FoodItems, "protein")
	// Coupling deduplicates: each appears exactly once.
	assert.Len(t, entities.FoodItems, 2)
}

func TestProcessComparativeProteinQuestion(t *testing.T) {
	p := newTestProcessor(t)

	result := p.Process("what is the best meat for protein")

	assert.Equal(t, IntentNutrition, result.Intent.Type)
	assert.Contains(t, result.Entities.FoodItems, "meat")
	assert.Contains(t, result.Entities.FoodItems, "protein")
}

func TestProcessKeepsOriginalText(t *testing.T) {
	p := newTestProcessor(t)

	result := p.Process("How can I sleep better at night?")

	assert.Equal(t, "How can I sleep better at night?", result.OriginalText)
	assert.Equal(t, IntentSleep, result.Intent.Type)
	assert.Contains(t, result.Entities.TimePeriods, "night")
}

func TestIntentLabelsAreCopies(t *testing.T) {
	p := newTestProcessor(t)

	labels := p.IntentLabels()
	require.Equal(t, []string{IntentNutrition, IntentFitness, IntentSleep, IntentStress, IntentGeneral}, labels)

	labels[0] = "mutated"
	assert.Equal(t, IntentNutrition, p.IntentLabels()[0])
}
