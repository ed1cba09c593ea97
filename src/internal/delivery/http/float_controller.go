package http

import (
	"context"

	"momovender/src/internal/delivery/http/middleware"
	"momovender/src/internal/model"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type FloatController struct {
	Log     log.Log
	UseCase *usecase.FloatUseCase
}

func NewFloatController(useCase *usecase.FloatUseCase, logger log.Log) *FloatController {
	return &FloatController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *FloatController) TopUp(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.TopUpRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FloatController.TopUp", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.TopUp(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Top up", fiber.StatusOK, ctx)
}

func (c *FloatController) Deduct(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.DeductRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FloatController.Deduct", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Deduct(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Deduct", fiber.StatusOK, ctx)
}

func (c *FloatController) ListAgents(ctx *fiber.Ctx) error {
	request := &model.FloatListRequest{
		Page:   ctx.QueryInt("page", 1),
		Search: ctx.Query("search"),
		Branch: ctx.Query("branch"),
		Sort:   ctx.Query("sort"),
		Order:  ctx.Query("order"),
	}

	result := c.UseCase.ListAgents(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Float agents", fiber.StatusOK, ctx)
}

func (c *FloatController) Stats(ctx *fiber.Ctx) error {
	result := c.UseCase.Stats(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Float stats", fiber.StatusOK, ctx)
}

func (c *FloatController) History(ctx *fiber.Ctx) error {
	request := &model.FloatHistoryRequest{
		Page:   ctx.QueryInt("page", 1),
		Search: ctx.Query("search"),
		From:   ctx.Query("from"),
		To:     ctx.Query("to"),
		Action: ctx.Query("action"),
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Context(), historyTimeout)
	defer cancel()

	result := c.UseCase.History(timeoutCtx, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Float history", fiber.StatusOK, ctx)
}

func (c *FloatController) CreateRequest(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.CreateFloatRequestRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FloatController.CreateRequest", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.CreateRequest(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Float requested", fiber.StatusCreated, ctx)
}

func (c *FloatController) PendingRequests(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	result := c.UseCase.PendingRequests(ctx.Context(), principal)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Pending requests", fiber.StatusOK, ctx)
}

func (c *FloatController) ProcessRequest(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.ProcessFloatRequestRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FloatController.ProcessRequest", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	requestID, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.RequestID = int64(requestID)

	result := c.UseCase.ProcessRequest(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Request processed", fiber.StatusOK, ctx)
}
