package nlp

type vocabularies struct {
	foodItems        map[string]bool
	activities       map[string]bool
	timePeriods      map[string]bool
	healthConditions map[string]bool
	comparativeTerms map[string]bool
}

func (v vocabularies) contains(word string) bool {
	return v.foodItems[word] || v.activities[word] || v.timePeriods[word] ||
		v.healthConditions[word] || v.comparativeTerms[word]
}

var entityVocabularies = vocabularies{
	foodItems: toSet("protein", "carb", "fat", "vegetable", "fruit", "meat", "meats", "dairy",
		"egg", "nut", "seed", "grain", "bread", "pasta", "rice", "fish",
		"chicken", "beef", "pork", "tofu", "bean", "legume", "turkey", "lamb",
		"venison", "bison", "duck", "goose", "quail", "rabbit", "seafood",
		"salmon", "tuna", "cod", "halibut", "shrimp", "crab", "lobster"),
	activities: toSet("run", "jog", "walk", "swim", "bike", "yoga", "gym", "exercise",
		"workout", "lift", "stretch", "meditate", "sleep", "rest"),
	timePeriods: toSet("morning", "afternoon", "evening", "night", "day", "week",
		"month", "year", "hour", "minute", "daily", "weekly"),
	healthConditions: toSet("stress", "anxiety", "depression", "insomnia", "fatigue",
		"pain", "headache", "migraine", "allergy", "diabetes",
		"hypertension", "obesity", "overweight"),
	comparativeTerms: toSet("best", "better", "worst", "higher", "highest", "lower", "lowest",
		"most", "least", "more", "less", "top", "greatest", "optimal"),
}

// ExtractEntities collects tokens per category in first-occurrence order.
// Categories are independent: one token may land in several lists, and
// duplicates are kept unless a special-case rule deduplicates.
func (p *Processor) ExtractEntities(tokens []string) EntitySet {
	var entities EntitySet

	tokenSet := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		tokenSet[token] = true
		if entityVocabularies.foodItems[token] {
			entities.FoodItems = append(entities.FoodItems, token)
		}
		if entityVocabularies.activities[token] {
			entities.Activities = append(entities.Activities, token)
		}
		if entityVocabularies.timePeriods[token] {
			entities.TimePeriods = append(entities.TimePeriods, token)
		}
		if entityVocabularies.healthConditions[token] {
			entities.HealthConditions = append(entities.HealthConditions, token)
		}
		if entityVocabularies.comparativeTerms[token] {
			entities.ComparativeTerms = append(entities.ComparativeTerms, token)
		}
	}

	// Meat and protein travel together so comparative nutrition questions
	// resolve to the right advice bucket downstream.
	meatMentioned := tokenSet["meat"] || tokenSet["meats"]
	proteinMentioned := tokenSet["protein"] || tokenSet["proteins"]

	if meatMentioned && tokenSet["protein"] {
		entities.FoodItems = ensureMember(entities.FoodItems, "meat")
		entities.FoodItems = ensureMember(entities.FoodItems, "protein")
	}

	if len(entities.ComparativeTerms) > 0 && proteinMentioned {
		entities.FoodItems = ensureMember(entities.FoodItems, "protein")
		if meatMentioned {
			entities.FoodItems = ensureMember(entities.FoodItems, "meat")
		}
	}

	return entities
}

func ensureMember(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
