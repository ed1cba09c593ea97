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

type DashboardController struct {
	Log     log.Log
	UseCase *usecase.DashboardUseCase
}

func NewDashboardController(useCase *usecase.DashboardUseCase, logger log.Log) *DashboardController {
	return &DashboardController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DashboardController) Admin(ctx *fiber.Ctx) error {
	result := c.UseCase.Admin(ctx.Context(), ctx.Query("period"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Admin dashboard", fiber.StatusOK, ctx)
}

func (c *DashboardController) Manager(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	result := c.UseCase.Manager(ctx.Context(), principal)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Manager dashboard", fiber.StatusOK, ctx)
}

func (c *DashboardController) Employee(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	result := c.UseCase.Employee(ctx.Context(), principal)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Employee dashboard", fiber.StatusOK, ctx)
}

func (c *DashboardController) EmployeeActivity(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	result := c.UseCase.EmployeeActivity(ctx.Context(), principal)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Recent activity", fiber.StatusOK, ctx)
}

func (c *DashboardController) SalesAnalytics(ctx *fiber.Ctx) error {
	request := &model.SalesAnalyticsRequest{
		Days: ctx.QueryInt("days", 7),
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Context(), historyTimeout)
	defer cancel()

	result := c.UseCase.SalesAnalytics(timeoutCtx, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Sales analytics", fiber.StatusOK, ctx)
}

func (c *DashboardController) Ranking(ctx *fiber.Ctx) error {
	request := &model.AgentRankingRequest{
		Period: ctx.Query("period", "week"),
		Limit:  ctx.QueryInt("limit", 10),
	}

	result := c.UseCase.Ranking(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Agent ranking", fiber.StatusOK, ctx)
}
