package chatService

import (
	"context"

	"HealthCoach/internal/api/chat"
	chatRepository "HealthCoach/internal/api/chat/repository"
	"HealthCoach/internal/profile"
	"HealthCoach/pkg/gemini"
	"HealthCoach/pkg/knowledge"
	"HealthCoach/pkg/nlp"
	openaiPkg "HealthCoach/pkg/openai"
	"HealthCoach/pkg/randx"
	"HealthCoach/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	ProcessMessage(ctx context.Context, userID string, req chat.AskRequest) (*chat.AskResponse, error)
	GetHistory(ctx context.Context, userID string, page, limit int) ([]chat.HistoryEntry, int, error)
	GetTurn(ctx context.Context, userID string, turnID string) (*chat.HistoryEntry, error)
	TestNLP(ctx context.Context, req chat.NLPTestRequest) (*chat.NLPTestResponse, error)
}

type chatService struct {
	log       *logrus.Logger
	processor nlp.IProcessor
	rules     *ruleEngine
	enhancer  *responseEnhancer
	profiles  *profile.Store
	chatRepo  chatRepository.Repository
	utils     utils.IUtils
}

func New(
	log *logrus.Logger,
	processor nlp.IProcessor,
	kb knowledge.IKnowledgeBase,
	geminiClient gemini.IGemini,
	embedder openaiPkg.IEmbedder,
	profiles *profile.Store,
	chatRepo chatRepository.Repository,
	utilsInstance utils.IUtils,
	rng *randx.Source,
) IChatService {
	return &chatService{
		log:       log,
		processor: processor,
		rules:     newRuleEngine(kb, rng),
		enhancer:  newResponseEnhancer(log, geminiClient, embedder, processor, rng),
		profiles:  profiles,
		chatRepo:  chatRepo,
		utils:     utilsInstance,
	}
}
