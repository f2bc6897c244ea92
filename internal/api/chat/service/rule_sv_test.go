package chatService

import (
	"strings"
	"testing"

	"HealthCoach/pkg/knowledge"
	"HealthCoach/pkg/nlp"
	"HealthCoach/pkg/randx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRuleEngine() *ruleEngine {
	rng := randx.NewSeeded(7)
	return newRuleEngine(knowledge.New(rng), rng)
}

func TestMatchRuleAboveThreshold(t *testing.T) {
	engine := newTestRuleEngine()

	input := &nlp.ProcessedInput{
		Intent:   nlp.Intent{Type: nlp.IntentNutrition, Confidence: 0.5},
		Entities: nlp.EntitySet{FoodItems: []string{"protein"}},
	}
	match := engine.MatchRule(input)

	assert.True(t, match.Matched)
	assert.Equal(t, nlp.IntentNutrition, match.IntentType)
	assert.Equal(t, 0.5, match.Confidence)
	assert.Contains(t, match.Template, adviceSlot)
	assert.NotEmpty(t, match.Advice)
	require.Len(t, match.Alternatives, 5)
	assert.Equal(t, strings.Join(match.Alternatives, ". "), match.Context)
}

func TestMatchRuleAtThresholdFallsThrough(t *testing.T) {
	engine := newTestRuleEngine()

	// The threshold is strict: exactly 0.3 does not match.
	input := &nlp.ProcessedInput{
		Intent: nlp.Intent{Type: nlp.IntentSleep, Confidence: matchThreshold},
	}
	match := engine.MatchRule(input)

	assert.False(t, match.Matched)
	assert.Equal(t, nlp.IntentUnknown, match.IntentType)
	assert.Zero(t, match.Confidence)
}

func TestMatchRuleUnknownIntent(t *testing.T) {
	engine := newTestRuleEngine()

	input := &nlp.ProcessedInput{
		Intent: nlp.Intent{Type: nlp.IntentUnknown, Confidence: 0.9},
	}
	match := engine.MatchRule(input)

	assert.False(t, match.Matched)
	assert.Contains(t, engine.templates[nlp.IntentUnknown], match.Template)
}

func TestGetResponseRendersAdviceSlot(t *testing.T) {
	engine := newTestRuleEngine()

	input := &nlp.ProcessedInput{
		Intent:   nlp.Intent{Type: nlp.IntentFitness, Confidence: 0.6},
		Entities: nlp.EntitySet{Activities: []string{"run"}},
	}
	response := engine.GetResponse(input)

	assert.True(t, response.Matched)
	assert.NotContains(t, response.Response, adviceSlot)
	assert.NotEmpty(t, response.Response)
	assert.Equal(t, input.Entities, response.Entities)
}

func TestGetResponseUnmatchedClarification(t *testing.T) {
	engine := newTestRuleEngine()

	input := &nlp.ProcessedInput{
		Intent: nlp.Intent{Type: nlp.IntentUnknown},
	}
	response := engine.GetResponse(input)

	assert.False(t, response.Matched)
	assert.Contains(t, engine.templates[nlp.IntentUnknown], response.Response)
	assert.Empty(t, response.Context)
	assert.Empty(t, response.Alternatives)
}

func TestRuleTemplatesCarryAdviceSlot(t *testing.T) {
	engine := newTestRuleEngine()

	for intentType, templates := range engine.templates {
		require.NotEmpty(t, templates, intentType)
		for _, template := range templates {
			if intentType == nlp.IntentUnknown {
				assert.NotContains(t, template, adviceSlot)
				continue
			}
			assert.Contains(t, template, adviceSlot)
		}
	}
}
