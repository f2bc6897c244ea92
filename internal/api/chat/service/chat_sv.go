package chatService

import (
	"context"
	"strings"

	"HealthCoach/internal/api/chat"
	"HealthCoach/internal/entity"
	contextPkg "HealthCoach/pkg/context"
	"HealthCoach/pkg/nlp"

	"github.com/sirupsen/logrus"
)

// shortCircuitConfidence is the rule confidence above which the rendered
// rule response is returned verbatim, without the enhancement stage.
const shortCircuitConfidence = 0.8

func (s *chatService) ProcessMessage(ctx context.Context, userID string, req chat.AskRequest) (*chat.AskResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.UserInput) == "" {
		return &chat.AskResponse{Response: chat.EmptyInputPrompt}, nil
	}

	input := s.processor.Process(req.UserInput)
	rule := s.rules.GetResponse(input)

	// Profile updates record the rule intent, never the re-scored one, and
	// happen before enhancement so the personalization context already
	// reflects this turn. Unknown turns count too: they advance streak and
	// engagement and keep submitted feedback.
	var pctx entity.PersonalizationContext
	s.profiles.WithProfile(userID, func(p *entity.UserProfile) {
		p.UpdateInteraction(input.Intent.Type, req.Feedback, s.profiles.Now())
		pctx = p.GetPersonalizationContext()
	})

	response := rule.Response
	enhanced := false
	if rule.Confidence <= shortCircuitConfidence {
		response = s.enhancer.Enhance(ctx, userID, input, rule, &pctx)
		enhanced = response != rule.Response
	}

	if err := s.persistTurn(ctx, userID, req, input, rule, response, enhanced); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to persist chat turn, responding anyway")
	}

	return &chat.AskResponse{Response: response}, nil
}

func (s *chatService) persistTurn(
	ctx context.Context,
	userID string,
	req chat.AskRequest,
	input *nlp.ProcessedInput,
	rule chat.RuleResponse,
	response string,
	enhanced bool,
) error {
	if s.chatRepo == nil {
		return nil
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return err
	}

	now := s.profiles.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return err
	}

	turn := entity.ChatTurn{
		ID:         id,
		UserID:     userID,
		UserInput:  req.UserInput,
		IntentType: input.Intent.Type,
		Confidence: rule.Confidence,
		Response:   response,
		Matched:    rule.Matched,
		Enhanced:   enhanced,
		Feedback:   req.Feedback,
		CreatedAt:  now,
	}

	return repo.ChatTurns.CreateTurn(ctx, turn)
}

func (s *chatService) GetHistory(ctx context.Context, userID string, page, limit int) ([]chat.HistoryEntry, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	if s.chatRepo == nil {
		return nil, 0, chat.ErrHistoryUnavailable
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, 0, chat.ErrHistoryUnavailable
	}

	turns, total, err := repo.ChatTurns.GetTurnsByUser(ctx, userID, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load chat history")
		return nil, 0, chat.ErrHistoryUnavailable
	}

	entries := make([]chat.HistoryEntry, 0, len(turns))
	for _, turn := range turns {
		entries = append(entries, chat.HistoryEntry{
			ID:         turn.ID,
			UserInput:  turn.UserInput,
			IntentType: turn.IntentType,
			Confidence: turn.Confidence,
			Response:   turn.Response,
			Matched:    turn.Matched,
			Enhanced:   turn.Enhanced,
			CreatedAt:  turn.CreatedAt,
		})
	}

	return entries, total, nil
}

func (s *chatService) GetTurn(ctx context.Context, userID string, turnID string) (*chat.HistoryEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.chatRepo == nil {
		return nil, chat.ErrHistoryUnavailable
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, chat.ErrHistoryUnavailable
	}

	turn, err := repo.ChatTurns.GetTurnByID(ctx, turnID)
	if err != nil {
		return nil, err
	}

	// Turns are only visible to the user who produced them.
	if turn.UserID != userID {
		return nil, chat.ErrTurnNotFound
	}

	return &chat.HistoryEntry{
		ID:         turn.ID,
		UserInput:  turn.UserInput,
		IntentType: turn.IntentType,
		Confidence: turn.Confidence,
		Response:   turn.Response,
		Matched:    turn.Matched,
		Enhanced:   turn.Enhanced,
		CreatedAt:  turn.CreatedAt,
	}, nil
}

func (s *chatService) TestNLP(_ context.Context, req chat.NLPTestRequest) (*chat.NLPTestResponse, error) {
	input := s.processor.Process(req.Text)

	return &chat.NLPTestResponse{
		Input:      input.OriginalText,
		Tokens:     input.Tokens,
		Intent:     input.Intent.Type,
		Confidence: input.Intent.Confidence,
		Entities:   input.Entities,
	}, nil
}
