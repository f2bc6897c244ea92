package chatService

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"HealthCoach/internal/api/chat"
	"HealthCoach/internal/entity"
	"HealthCoach/pkg/gemini"
	"HealthCoach/pkg/nlp"
	openaiPkg "HealthCoach/pkg/openai"
	"HealthCoach/pkg/randx"

	"github.com/sirupsen/logrus"
)

// Gate probabilities and score thresholds for the enhancement steps. These
// are contract values, not tunables.
const (
	qaScoreThreshold        = 0.7
	rerankConfidenceCeiling = 0.6
	rerankScoreThreshold    = 0.7
	disclaimerThreshold     = 0.4

	dietaryGateProbability   = 0.8
	timeGateProbability      = 0.7
	conditionGateProbability = 0.8
	goalGateProbability      = 0.75
)

const disclaimer = "\n\nNote: This is general advice. For personalized guidance, consider consulting with a healthcare professional."

// shortTermContext is the fallback personalization state used when no
// profile is attached: it only knows how many turns this session has seen.
type shortTermContext struct {
	interactionCount int
	mentionedTopics  map[string]int
	recentConcerns   []string
}

func (c *shortTermContext) inferredLevel() string {
	switch {
	case c.interactionCount > 25:
		return entity.FitnessLevelAdvanced
	case c.interactionCount > 10:
		return entity.FitnessLevelIntermediate
	default:
		return entity.FitnessLevelBeginner
	}
}

type responseEnhancer struct {
	log       *logrus.Logger
	gemini    gemini.IGemini
	embedder  openaiPkg.IEmbedder
	processor nlp.IProcessor
	rng       *randx.Source

	mu       sync.Mutex
	contexts map[string]*shortTermContext

	personalization map[string]map[string]string
	dietary         map[string]string
	timeEnhancers   []string
	condEnhancers   []string
	goalEnhancers   []string
	needs           map[string]string
	adaptations     map[string]string
}

func newResponseEnhancer(
	log *logrus.Logger,
	geminiClient gemini.IGemini,
	embedder openaiPkg.IEmbedder,
	processor nlp.IProcessor,
	rng *randx.Source,
) *responseEnhancer {
	return &responseEnhancer{
		log:       log,
		gemini:    geminiClient,
		embedder:  embedder,
		processor: processor,
		rng:       rng,
		contexts:  make(map[string]*shortTermContext),
		personalization: map[string]map[string]string{
			entity.FitnessLevelBeginner: {
				nlp.IntentNutrition: "start with simple dietary changes",
				nlp.IntentFitness:   "begin with gentle, low-impact exercises",
				nlp.IntentSleep:     "focus on establishing a consistent sleep schedule",
				nlp.IntentStress:    "try basic breathing exercises for stress reduction",
			},
			entity.FitnessLevelIntermediate: {
				nlp.IntentNutrition: "experiment with meal planning and preparation",
				nlp.IntentFitness:   "incorporate varied workout routines for different muscle groups",
				nlp.IntentSleep:     "optimize your sleep environment and pre-sleep routine",
				nlp.IntentStress:    "practice regular mindfulness meditation sessions",
			},
			entity.FitnessLevelAdvanced: {
				nlp.IntentNutrition: "fine-tune your macronutrient ratios for optimal performance",
				nlp.IntentFitness:   "consider periodization in your training program",
				nlp.IntentSleep:     "analyze your sleep cycles and optimize for deep sleep phases",
				nlp.IntentStress:    "develop a comprehensive stress management strategy",
			},
		},
		dietary: map[string]string{
			"vegetarian":  "focusing on plant-based protein sources like legumes, tofu, and tempeh",
			"vegan":       "incorporating a variety of plant foods to ensure complete nutrition",
			"gluten-free": "choosing naturally gluten-free grains like rice, quinoa, and buckwheat",
			"dairy-free":  "using plant-based alternatives for calcium and protein",
			"keto":        "prioritizing healthy fats and keeping carbohydrates minimal",
			"paleo":       "focusing on whole foods that align with ancestral eating patterns",
		},
		timeEnhancers: []string{
			"This is especially important in the %s when your body needs %s.",
			"Many people find this most effective during the %s.",
			"Consider adapting this advice for your %s routine.",
		},
		condEnhancers: []string{
			"This approach can be particularly helpful for managing %s.",
			"People with %s often benefit from these adjustments.",
			"When dealing with %s, it's important to %s.",
		},
		goalEnhancers: []string{
			"This strategy aligns well with your goal to %s.",
			"To achieve %s, consistency with this approach is key.",
			"Many who successfully %s find this technique valuable.",
		},
		needs: map[string]string{
			"morning":   "energy",
			"afternoon": "focus",
			"evening":   "relaxation",
			"night":     "recovery",
		},
		adaptations: map[string]string{
			"stress":   "prioritize self-care",
			"anxiety":  "practice grounding techniques",
			"insomnia": "maintain a consistent sleep schedule",
			"fatigue":  "balance activity with proper rest",
			"pain":     "consult with a healthcare professional",
		},
	}
}

func (e *responseEnhancer) updateContext(userID string, input *nlp.ProcessedInput) *shortTermContext {
	e.mu.Lock()
	defer e.mu.Unlock()

	stc, ok := e.contexts[userID]
	if !ok {
		stc = &shortTermContext{mentionedTopics: make(map[string]int)}
		e.contexts[userID] = stc
	}

	stc.interactionCount++
	if input.Intent.Type != nlp.IntentUnknown {
		stc.mentionedTopics[input.Intent.Type]++
	}
	if len(input.Entities.HealthConditions) > 0 {
		stc.recentConcerns = input.Entities.HealthConditions
	}

	return stc
}

// Enhance layers model re-scoring and personalization on top of the rule
// response. Every step is independently skippable: a collaborator failure
// leaves the buffer at its pre-step value and the remaining steps still run.
func (e *responseEnhancer) Enhance(
	ctx context.Context,
	userID string,
	input *nlp.ProcessedInput,
	rule chat.RuleResponse,
	pctx *entity.PersonalizationContext,
) string {
	stc := e.updateContext(userID, input)

	buffer := rule.Response
	intentType := rule.IntentType

	// Zero-shot re-scoring only redirects which personalization tables are
	// consulted; the already-rendered advice text stays.
	if e.gemini != nil {
		result, err := e.gemini.ClassifyIntent(ctx, input.OriginalText, e.processor.IntentLabels())
		if err != nil {
			e.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Zero-shot classification unavailable, skipping")
		} else if len(result.Scores) > 0 && result.Scores[0] > rule.Confidence {
			intentType = result.Labels[0]
		}
	}

	if e.gemini != nil && rule.Context != "" {
		qa, err := e.gemini.AnswerQuestion(ctx, input.OriginalText, rule.Context)
		if err != nil {
			e.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("QA model unavailable, skipping")
		} else if qa.Score > qaScoreThreshold && qa.Answer != "" {
			buffer = qa.Answer
		}
	}

	if e.embedder != nil && rule.Confidence < rerankConfidenceCeiling && len(rule.Alternatives) > 0 {
		matches, err := e.embedder.BestMatches(ctx, input.OriginalText, rule.Alternatives, 1)
		if err != nil {
			e.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Similarity model unavailable, skipping")
		} else if len(matches) > 0 && matches[0].Score > rerankScoreThreshold {
			buffer = matches[0].Candidate
		}
	}

	var userLevel string
	var restrictions, goals []string
	if pctx != nil {
		userLevel = pctx.FitnessLevel
		restrictions = pctx.DietaryRestrictions
		goals = pctx.CurrentGoals
	} else {
		userLevel = stc.inferredLevel()
	}

	if tip, ok := e.personalization[userLevel][intentType]; ok {
		buffer += fmt.Sprintf(" As you continue your wellness journey, %s.", tip)
	}

	if intentType == nlp.IntentNutrition && len(restrictions) > 0 && e.rng.Float64() < dietaryGateProbability {
		restriction := e.rng.Pick(restrictions)
		if modifier, ok := e.dietary[restriction]; ok {
			buffer += fmt.Sprintf(" For your %s diet, consider %s.", restriction, modifier)
		}
	}

	if len(input.Entities.TimePeriods) > 0 && e.rng.Float64() < timeGateProbability {
		period := input.Entities.TimePeriods[0]
		need, ok := e.needs[period]
		if !ok {
			need = "support"
		}
		buffer += " " + formatEnhancer(e.rng.Pick(e.timeEnhancers), period, need)
	}

	if len(input.Entities.HealthConditions) > 0 && e.rng.Float64() < conditionGateProbability {
		condition := input.Entities.HealthConditions[0]
		adaptation, ok := e.adaptations[condition]
		if !ok {
			adaptation = "listen to your body"
		}
		buffer += " " + formatEnhancer(e.rng.Pick(e.condEnhancers), condition, adaptation)
	}

	if len(goals) > 0 && e.rng.Float64() < goalGateProbability {
		goal := e.rng.Pick(goals)
		buffer += " " + formatEnhancer(e.rng.Pick(e.goalEnhancers), goal, "")
	}

	if rule.Confidence < disclaimerThreshold {
		buffer += disclaimer
	}

	return buffer
}

// formatEnhancer fills a template that carries either one or two verbs.
func formatEnhancer(template, first, second string) string {
	switch strings.Count(template, "%s") {
	case 2:
		return fmt.Sprintf(template, first, second)
	default:
		return fmt.Sprintf(template, first)
	}
}
