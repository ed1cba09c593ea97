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

type PayrollController struct {
	Log     log.Log
	UseCase *usecase.PayrollUseCase
}

func NewPayrollController(useCase *usecase.PayrollUseCase, logger log.Log) *PayrollController {
	return &PayrollController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PayrollController) Reconcile(ctx *fiber.Ctx) error {
	request := &model.ReconcileRequest{
		Start: ctx.Query("start"),
		End:   ctx.Query("end"),
		Page:  ctx.QueryInt("page", 1),
		Limit: ctx.QueryInt("limit", 0),
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Context(), historyTimeout)
	defer cancel()

	result := c.UseCase.Reconcile(timeoutCtx, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payroll", fiber.StatusOK, ctx)
}

func (c *PayrollController) Pay(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.PayRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PayrollController.Pay", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Pay(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout recorded", fiber.StatusOK, ctx)
}
