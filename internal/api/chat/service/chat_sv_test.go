package chatService

import (
	"context"
	"strings"
	"testing"

	"HealthCoach/internal/api/chat"
	"HealthCoach/internal/entity"
	"HealthCoach/internal/profile"
	"HealthCoach/pkg/gemini"
	"HealthCoach/pkg/knowledge"
	"HealthCoach/pkg/nlp"
	openaiPkg "HealthCoach/pkg/openai"
	"HealthCoach/pkg/randx"
	"HealthCoach/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(t *testing.T, gem gemini.IGemini, emb openaiPkg.IEmbedder) (IChatService, *profile.Store) {
	t.Helper()
	rng := randx.NewSeeded(11)
	profiles := profile.NewStore()
	service := New(
		testLogger(),
		testProcessor(t),
		knowledge.New(rng),
		gem,
		emb,
		profiles,
		nil,
		utils.New(),
		rng,
	)
	return service, profiles
}

func TestProcessMessageEmptyInput(t *testing.T) {
	service, _ := newTestChatService(t, nil, nil)

	for _, input := range []string{"", "   ", "\t"} {
		resp, err := service.ProcessMessage(context.Background(), "u1", chat.AskRequest{UserInput: input})
		require.NoError(t, err)
		assert.Equal(t, chat.EmptyInputPrompt, resp.Response)
	}
}

func TestProcessMessageMatchedNutrition(t *testing.T) {
	service, profiles := newTestChatService(t, nil, nil)

	resp, err := service.ProcessMessage(context.Background(), "u1", chat.AskRequest{UserInput: "I want to eat healthy food"})
	require.NoError(t, err)

	assert.NotContains(t, resp.Response, "{advice}")
	// Rule confidence is below the short-circuit bound, so the beginner
	// nutrition tip is layered on.
	assert.Contains(t, resp.Response, "start with simple dietary changes")

	profiles.WithProfile("u1", func(p *entity.UserProfile) {
		assert.Equal(t, 1, p.History.TopicFrequency[nlp.IntentNutrition])
		assert.Equal(t, []string{nlp.IntentNutrition}, p.History.LastTopics)
	})
}

func TestProcessMessageShortCircuitSkipsEnhancement(t *testing.T) {
	gem := &stubGemini{}
	service, _ := newTestChatService(t, gem, nil)

	// Every token is a nutrition keyword, so rule confidence is 1.0.
	resp, err := service.ProcessMessage(context.Background(), "u1", chat.AskRequest{UserInput: "eat food diet meal"})
	require.NoError(t, err)

	assert.NotContains(t, resp.Response, "As you continue your wellness journey")
	assert.Zero(t, gem.classifyCalls)
	assert.Zero(t, gem.qaCalls)
}

func TestProcessMessageUnknownInput(t *testing.T) {
	service, profiles := newTestChatService(t, nil, nil)

	resp, err := service.ProcessMessage(context.Background(), "u1", chat.AskRequest{
		UserInput: "asdf qwerty zxcvb",
		Feedback:  "that made no sense",
	})
	require.NoError(t, err)

	// Zero confidence always earns the general-advice disclaimer.
	require.True(t, strings.HasSuffix(resp.Response, disclaimer), resp.Response)

	clarification := strings.TrimSuffix(resp.Response, disclaimer)
	engine := newTestRuleEngine()
	assert.Contains(t, engine.templates[nlp.IntentUnknown], clarification)

	// Unknown turns still count: the interaction, the topic, and any
	// feedback all land in the profile.
	profiles.WithProfile("u1", func(p *entity.UserProfile) {
		assert.Equal(t, 1, p.History.TotalInteractions)
		assert.Equal(t, []string{nlp.IntentUnknown}, p.History.LastTopics)
		assert.Equal(t, 1, p.History.TopicFrequency[nlp.IntentUnknown])
		require.Len(t, p.History.FeedbackHistory, 1)
		assert.Equal(t, "that made no sense", p.History.FeedbackHistory[0].Feedback)
	})
}

func TestProcessMessageRecordsFeedback(t *testing.T) {
	service, profiles := newTestChatService(t, nil, nil)

	_, err := service.ProcessMessage(context.Background(), "u1", chat.AskRequest{
		UserInput: "how do I sleep better",
		Feedback:  "thanks, this helped",
	})
	require.NoError(t, err)

	profiles.WithProfile("u1", func(p *entity.UserProfile) {
		require.Len(t, p.History.FeedbackHistory, 1)
		assert.Equal(t, nlp.IntentSleep, p.History.FeedbackHistory[0].Topic)
		assert.Equal(t, "thanks, this helped", p.History.FeedbackHistory[0].Feedback)
	})
}

func TestProcessMessageIsolatesUsers(t *testing.T) {
	service, profiles := newTestChatService(t, nil, nil)

	_, err := service.ProcessMessage(context.Background(), "u1", chat.AskRequest{UserInput: "tell me about exercise and workout routines"})
	require.NoError(t, err)

	profiles.WithProfile("u2", func(p *entity.UserProfile) {
		assert.Empty(t, p.History.TopicFrequency)
	})
}

func TestGetHistoryWithoutDatabase(t *testing.T) {
	service, _ := newTestChatService(t, nil, nil)

	_, _, err := service.GetHistory(context.Background(), "u1", 1, 20)

	assert.ErrorIs(t, err, chat.ErrHistoryUnavailable)
}

func TestGetTurnWithoutDatabase(t *testing.T) {
	service, _ := newTestChatService(t, nil, nil)

	_, err := service.GetTurn(context.Background(), "u1", "some-turn-id")

	assert.ErrorIs(t, err, chat.ErrHistoryUnavailable)
}

func TestTestNLP(t *testing.T) {
	service, _ := newTestChatService(t, nil, nil)

	resp, err := service.TestNLP(context.Background(), chat.NLPTestRequest{Text: "what should I eat"})
	require.NoError(t, err)

	assert.Equal(t, "what should I eat", resp.Input)
	assert.Equal(t, nlp.IntentNutrition, resp.Intent)
	assert.Equal(t, 1.0, resp.Confidence)
	assert.Equal(t, []string{"eat"}, resp.Tokens)
}
