package chatService

import (
	"strings"

	"HealthCoach/internal/api/chat"
	"HealthCoach/pkg/knowledge"
	"HealthCoach/pkg/nlp"
	"HealthCoach/pkg/randx"
)

// matchThreshold is the fixed contract value below which a turn falls back
// to a clarification sentence.
const matchThreshold = 0.3

const adviceSlot = "{advice}"

type ruleEngine struct {
	kb        knowledge.IKnowledgeBase
	rng       *randx.Source
	templates map[string][]string
}

func newRuleEngine(kb knowledge.IKnowledgeBase, rng *randx.Source) *ruleEngine {
	return &ruleEngine{
		kb:  kb,
		rng: rng,
		templates: map[string][]string{
			nlp.IntentNutrition: {
				"Based on wellness guidelines, {advice}.",
				"For better nutrition, consider {advice}.",
				"A healthy diet typically includes {advice}.",
				"Nutritionists often recommend {advice}.",
				"To improve your nutrition, try {advice}.",
			},
			nlp.IntentFitness: {
				"For effective exercise, {advice}.",
				"To improve your fitness, try {advice}.",
				"A good workout routine includes {advice}.",
				"Fitness experts recommend {advice}.",
				"For better results, consider {advice}.",
			},
			nlp.IntentSleep: {
				"To improve your sleep quality, {advice}.",
				"Sleep experts suggest {advice}.",
				"For better rest, try {advice}.",
				"To address sleep issues, consider {advice}.",
				"Healthy sleep habits include {advice}.",
			},
			nlp.IntentStress: {
				"To manage stress effectively, {advice}.",
				"Stress reduction techniques include {advice}.",
				"Mental health experts recommend {advice}.",
				"For better stress management, try {advice}.",
				"To feel more relaxed, consider {advice}.",
			},
			nlp.IntentGeneral: {
				"For overall wellness, {advice}.",
				"Health experts generally recommend {advice}.",
				"A balanced approach to health includes {advice}.",
				"For better wellbeing, consider {advice}.",
				"Wellness practices often include {advice}.",
			},
			nlp.IntentUnknown: {
				"I'm not sure I understand. Could you ask about nutrition, fitness, sleep, or stress management?",
				"I'm specialized in wellness topics. Can I help you with nutrition, exercise, sleep, or stress?",
				"I don't have information on that topic. Would you like advice on healthy eating, exercise, sleep, or stress management?",
				"I'm designed to help with wellness questions. Could you ask something related to health, nutrition, or fitness?",
			},
		},
	}
}

// MatchRule decides matched vs unknown. A recognized intent above the
// confidence threshold picks advice and a phrasing template; anything else
// yields a clarification sentence with zero confidence.
func (r *ruleEngine) MatchRule(input *nlp.ProcessedInput) chat.RuleMatch {
	intentType := input.Intent.Type
	confidence := input.Intent.Confidence

	if intentType != nlp.IntentUnknown && confidence > matchThreshold {
		detail := r.kb.GetAdviceDetail(intentType, input.Entities)

		templates, ok := r.templates[intentType]
		if !ok {
			templates = r.templates[nlp.IntentGeneral]
		}

		return chat.RuleMatch{
			Matched:      true,
			IntentType:   intentType,
			Template:     r.rng.Pick(templates),
			Advice:       detail.Advice,
			Confidence:   confidence,
			Context:      strings.Join(detail.Alternatives, ". "),
			Alternatives: detail.Alternatives,
		}
	}

	return chat.RuleMatch{
		Matched:    false,
		IntentType: nlp.IntentUnknown,
		Template:   r.rng.Pick(r.templates[nlp.IntentUnknown]),
		Confidence: 0.0,
	}
}

// GetResponse renders the matched template with the advice substituted.
func (r *ruleEngine) GetResponse(input *nlp.ProcessedInput) chat.RuleResponse {
	match := r.MatchRule(input)

	text := match.Template
	if match.Matched {
		text = strings.ReplaceAll(match.Template, adviceSlot, match.Advice)
	}

	return chat.RuleResponse{
		Response:     text,
		IntentType:   match.IntentType,
		Confidence:   match.Confidence,
		Matched:      match.Matched,
		Context:      match.Context,
		Alternatives: match.Alternatives,
		Entities:     input.Entities,
	}
}
