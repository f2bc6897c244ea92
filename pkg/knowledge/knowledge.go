package knowledge

import (
	"HealthCoach/pkg/nlp"
	"HealthCoach/pkg/randx"
)

// AdviceDetail carries one chosen advice string plus the rest of its bucket,
// which downstream enhancement uses as QA context and re-ranking candidates.
type AdviceDetail struct {
	Advice       string
	Subcategory  string
	Alternatives []string
}

type IKnowledgeBase interface {
	GetAdvice(intentType string, entities nlp.EntitySet) string
	GetAdviceDetail(intentType string, entities nlp.EntitySet) AdviceDetail
	Pool(intentType string) map[string][]string
}

type knowledgeBase struct {
	nutrition map[string][]string
	fitness   map[string][]string
	sleep     map[string][]string
	stress    map[string][]string
	rng       *randx.Source
}

func New(rng *randx.Source) IKnowledgeBase {
	return &knowledgeBase{
		nutrition: nutritionAdvice(),
		fitness:   fitnessAdvice(),
		sleep:     sleepAdvice(),
		stress:    stressAdvice(),
		rng:       rng,
	}
}

func (kb *knowledgeBase) GetAdvice(intentType string, entities nlp.EntitySet) string {
	return kb.GetAdviceDetail(intentType, entities).Advice
}

// GetAdviceDetail never fails: unrecognized intents draw from the pooled
// general buckets and an unmatched subcategory falls back to "general".
func (kb *knowledgeBase) GetAdviceDetail(intentType string, entities nlp.EntitySet) AdviceDetail {
	pool := kb.Pool(intentType)
	if pool == nil {
		general := kb.generalPool()
		return AdviceDetail{
			Advice:       kb.rng.Pick(general),
			Subcategory:  "general",
			Alternatives: general,
		}
	}

	subcategory := kb.resolveSubcategory(intentType, entities)
	candidates, ok := pool[subcategory]
	if !ok {
		subcategory = "general"
		candidates = pool["general"]
	}

	return AdviceDetail{
		Advice:       kb.rng.Pick(candidates),
		Subcategory:  subcategory,
		Alternatives: candidates,
	}
}

func (kb *knowledgeBase) Pool(intentType string) map[string][]string {
	switch intentType {
	case nlp.IntentNutrition:
		return kb.nutrition
	case nlp.IntentFitness:
		return kb.fitness
	case nlp.IntentSleep:
		return kb.sleep
	case nlp.IntentStress:
		return kb.stress
	default:
		return nil
	}
}

func (kb *knowledgeBase) generalPool() []string {
	var pool []string
	pool = append(pool, kb.nutrition["general"]...)
	pool = append(pool, kb.fitness["general"]...)
	pool = append(pool, kb.sleep["general"]...)
	pool = append(pool, kb.stress["general"]...)
	return pool
}

// resolveSubcategory walks a fixed priority chain of entity-membership
// predicates for the chosen topic. The first satisfied predicate wins.
func (kb *knowledgeBase) resolveSubcategory(intentType string, entities nlp.EntitySet) string {
	switch intentType {
	case nlp.IntentNutrition:
		if len(entities.FoodItems) == 0 {
			return "general"
		}
		switch {
		case contains(entities.FoodItems, "protein"):
			return "protein"
		case contains(entities.FoodItems, "meat") || containsAny(entities.FoodItems, "beef", "chicken", "pork", "fish"):
			return "meat"
		case containsAny(entities.FoodItems, "water", "drink", "hydration", "fluid"):
			return "hydration"
		case containsAny(entities.FoodItems, "vitamin", "mineral", "nutrient"):
			return "micronutrients"
		case containsAny(entities.FoodItems, "carb", "fat", "macros"):
			return "macronutrients"
		case containsAny(entities.FoodItems, "keto", "paleo", "mediterranean", "vegan", "vegetarian", "diet"):
			return "diets"
		case containsAny(entities.FoodItems, "meal", "plan", "prep", "schedule"):
			return "meal_planning"
		}
	case nlp.IntentFitness:
		if len(entities.Activities) == 0 {
			return "general"
		}
		switch {
		case containsAny(entities.Activities, "run", "jog", "swim", "bike", "cardio"):
			return "cardio"
		case containsAny(entities.Activities, "lift", "muscle", "strength", "weight"):
			return "strength"
		case containsAny(entities.Activities, "hiit", "interval", "intense"):
			return "hiit"
		case containsAny(entities.Activities, "functional", "everyday", "daily", "movement"):
			return "functional_fitness"
		case containsAny(entities.Activities, "quick", "short", "fast", "busy"):
			return "quick_workouts"
		case containsAny(entities.Activities, "stretch", "flexible", "yoga", "mobility"):
			return "flexibility"
		case containsAny(entities.Activities, "recover", "rest", "sore", "massage"):
			return "recovery"
		case containsAny(entities.Activities, "progress", "improve", "advance", "goal"):
			return "progression"
		}
	case nlp.IntentSleep:
		if len(entities.HealthConditions) == 0 {
			return "general"
		}
		switch {
		case contains(entities.HealthConditions, "insomnia"):
			return "insomnia"
		case containsAny(entities.HealthConditions, "bedroom", "mattress", "pillow", "noise", "light"):
			return "environment"
		}
	case nlp.IntentStress:
		if len(entities.HealthConditions) == 0 {
			return "general"
		}
		switch {
		case containsAny(entities.HealthConditions, "anxiety", "overwhelm", "tension", "panic", "worry"):
			return "techniques"
		case containsAny(entities.HealthConditions, "routine", "habit", "daily", "lifestyle"):
			return "lifestyle"
		}
	}
	return "general"
}

func contains(list []string, item string) bool {
	for _, existing := range list {
		if existing == item {
			return true
		}
	}
	return false
}

func containsAny(list []string, items ...string) bool {
	for _, item := range items {
		if contains(list, item) {
			return true
		}
	}
	return false
}
