package nlp

type Intent struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

type EntitySet struct {
	FoodItems        []string `json:"food_items"`
	Activities       []string `json:"activities"`
	TimePeriods      []string `json:"time_periods"`
	HealthConditions []string `json:"health_conditions"`
	ComparativeTerms []string `json:"comparative_terms"`
}

type ProcessedInput struct {
	OriginalText string    `json:"original_text"`
	Tokens       []string  `json:"tokens"`
	Intent       Intent    `json:"intent"`
	Entities     EntitySet `json:"entities"`
}

type IProcessor interface {
	Preprocess(text string) []string
	ExtractIntent(tokens []string) Intent
	ExtractEntities(tokens []string) EntitySet
	Process(text string) *ProcessedInput
	IntentLabels() []string
}

const (
	IntentNutrition = "nutrition"
	IntentFitness   = "fitness"
	IntentSleep     = "sleep"
	IntentStress    = "stress"
	IntentGeneral   = "general"
	IntentUnknown   = "unknown"
)
