package http

import (
	"momovender/src/internal/delivery/http/middleware"
	"momovender/src/internal/model"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AgentController struct {
	Log     log.Log
	UseCase *usecase.AgentUseCase
}

func NewAgentController(useCase *usecase.AgentUseCase, logger log.Log) *AgentController {
	return &AgentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AgentController) List(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := &model.ListAgentsRequest{
		Page:   ctx.QueryInt("page", 1),
		Limit:  ctx.QueryInt("limit", 0),
		Search: ctx.Query("search"),
		Sort:   ctx.Query("sort"),
		Order:  ctx.Query("order"),
	}

	result := c.UseCase.List(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agents", fiber.StatusOK, ctx)
}

func (c *AgentController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Get(ctx.Context(), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agent", fiber.StatusOK, ctx)
}

func (c *AgentController) Create(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.CreateAgentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AgentController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agent created", fiber.StatusCreated, ctx)
}

func (c *AgentController) Update(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.UpdateAgentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AgentController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agent updated", fiber.StatusOK, ctx)
}

func (c *AgentController) Delete(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Delete(ctx.Context(), principal, int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agent deleted", fiber.StatusOK, ctx)
}

func (c *AgentController) SetActive(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	body := struct {
		IsActive bool `json:"is_active"`
	}{}
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.SetActive(ctx.Context(), int64(id), body.IsActive)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agent status updated", fiber.StatusOK, ctx)
}

func (c *AgentController) Stats(ctx *fiber.Ctx) error {
	result := c.UseCase.Stats(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agent stats", fiber.StatusOK, ctx)
}
