package chatHandler

import (
	"strconv"
	"strings"
	"time"

	"HealthCoach/internal/api/chat"
	contextPkg "HealthCoach/pkg/context"
	"HealthCoach/pkg/handlerUtil"
	"HealthCoach/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatHandler) Ask(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat request")

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	req := chat.AskRequest{
		UserInput: ctx.FormValue("user_input"),
		Feedback:  ctx.FormValue("feedback"),
	}
	if req.UserInput == "" {
		var body chat.AskRequest
		if err := ctx.BodyParser(&body); err == nil {
			req = body
		}
	}

	// Empty input never reaches the pipeline.
	if strings.TrimSpace(req.UserInput) == "" {
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.AskResponse{
			Response: chat.EmptyInputPrompt,
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.chatService.ProcessMessage(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ChatHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	entries, total, err := h.chatService.GetHistory(c, userID, page, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"entries": entries,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}

func (h *ChatHandler) GetTurn(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	entry, err := h.chatService.GetTurn(c, userID, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_turn")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, entry)
	}
}

func (h *ChatHandler) TestNLP(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chat.NLPTestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.chatService.TestNLP(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "test_nlp")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
