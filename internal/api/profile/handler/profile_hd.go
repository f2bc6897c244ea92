package profileHandler

import (
	"time"

	profiles "HealthCoach/internal/api/profile"
	contextPkg "HealthCoach/pkg/context"
	"HealthCoach/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ProfileHandler) GetProfile(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	response, err := h.profileService.GetProfile(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_profile")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}

func (h *ProfileHandler) UpdatePreferences(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	var req profiles.UpdatePreferencesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.profileService.UpdatePreferences(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_preferences")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}

func (h *ProfileHandler) AddGoal(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	var req profiles.AddGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.profileService.AddGoal(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_goal")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusCreated, response)
}

func (h *ProfileHandler) AchieveGoal(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	var req profiles.AchieveGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.profileService.AchieveGoal(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "achieve_goal")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}

func (h *ProfileHandler) GetContext(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.middleware.GetUserID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session could not be established")
	}

	response, err := h.profileService.GetContext(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_context")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}
