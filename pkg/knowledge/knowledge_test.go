package knowledge

import (
	"testing"

	"HealthCoach/pkg/nlp"
	"HealthCoach/pkg/randx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKB() IKnowledgeBase {
	return New(randx.NewSeeded(42))
}

func TestGetAdviceDetailProteinSubcategory(t *testing.T) {
	kb := newTestKB()

	detail := kb.GetAdviceDetail(nlp.IntentNutrition, nlp.EntitySet{FoodItems: []string{"protein"}})

	assert.Equal(t, "protein", detail.Subcategory)
	assert.Contains(t, detail.Alternatives, detail.Advice)
	assert.Len(t, detail.Alternatives, 5)
}

func TestGetAdviceDetailMeatBeatsGeneric(t *testing.T) {
	kb := newTestKB()

	detail := kb.GetAdviceDetail(nlp.IntentNutrition, nlp.EntitySet{FoodItems: []string{"chicken"}})

	assert.Equal(t, "meat", detail.Subcategory)
}

func TestGetAdviceDetailProteinWinsOverMeat(t *testing.T) {
	kb := newTestKB()

	// Protein is checked before meat, so both present resolves to protein.
	detail := kb.GetAdviceDetail(nlp.IntentNutrition, nlp.EntitySet{FoodItems: []string{"meat", "protein"}})

	assert.Equal(t, "protein", detail.Subcategory)
}

func TestGetAdviceDetailNoEntitiesFallsBackToGeneral(t *testing.T) {
	kb := newTestKB()

	for _, intent := range []string{nlp.IntentNutrition, nlp.IntentFitness, nlp.IntentSleep, nlp.IntentStress} {
		detail := kb.GetAdviceDetail(intent, nlp.EntitySet{})
		assert.Equal(t, "general", detail.Subcategory, intent)
		assert.Contains(t, detail.Alternatives, detail.Advice, intent)
	}
}

func TestGetAdviceDetailFitnessCardio(t *testing.T) {
	kb := newTestKB()

	detail := kb.GetAdviceDetail(nlp.IntentFitness, nlp.EntitySet{Activities: []string{"run"}})

	assert.Equal(t, "cardio", detail.Subcategory)
	assert.Equal(t, kb.Pool(nlp.IntentFitness)["cardio"], detail.Alternatives)
}

func TestGetAdviceDetailSleepInsomnia(t *testing.T) {
	kb := newTestKB()

	detail := kb.GetAdviceDetail(nlp.IntentSleep, nlp.EntitySet{HealthConditions: []string{"insomnia"}})

	assert.Equal(t, "insomnia", detail.Subcategory)
}

func TestGetAdviceDetailStressTechniques(t *testing.T) {
	kb := newTestKB()

	detail := kb.GetAdviceDetail(nlp.IntentStress, nlp.EntitySet{HealthConditions: []string{"anxiety"}})

	assert.Equal(t, "techniques", detail.Subcategory)
}

func TestGetAdviceDetailUnrecognizedEntityFallsBackToGeneral(t *testing.T) {
	kb := newTestKB()

	detail := kb.GetAdviceDetail(nlp.IntentSleep, nlp.EntitySet{HealthConditions: []string{"fatigue"}})

	assert.Equal(t, "general", detail.Subcategory)
}

func TestUnknownIntentPoolsGeneralBuckets(t *testing.T) {
	kb := newTestKB()

	detail := kb.GetAdviceDetail("unknown", nlp.EntitySet{})

	assert.Equal(t, "general", detail.Subcategory)
	// Four topics contribute their five general entries each.
	require.Len(t, detail.Alternatives, 20)
	assert.Contains(t, detail.Alternatives, detail.Advice)
}

func TestGetAdviceMatchesDetail(t *testing.T) {
	kb := newTestKB()

	entities := nlp.EntitySet{Activities: []string{"yoga"}}
	detail := kb.GetAdviceDetail(nlp.IntentFitness, entities)

	assert.Contains(t, detail.Alternatives, kb.GetAdvice(nlp.IntentFitness, entities))
}

func TestPoolShapes(t *testing.T) {
	kb := newTestKB()

	for _, intent := range []string{nlp.IntentNutrition, nlp.IntentFitness, nlp.IntentSleep, nlp.IntentStress} {
		pool := kb.Pool(intent)
		require.NotNil(t, pool, intent)
		require.Contains(t, pool, "general", intent)
		for subcategory, entries := range pool {
			assert.Len(t, entries, 5, "%s/%s", intent, subcategory)
		}
	}

	assert.Nil(t, kb.Pool("unknown"))
}
