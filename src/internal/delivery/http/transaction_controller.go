package http

import (
	"context"
	"time"

	"momovender/src/internal/delivery/http/middleware"
	"momovender/src/internal/model"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// historyTimeout bounds the cross-table history reads.
const historyTimeout = 15 * time.Second

type TransactionController struct {
	Log     log.Log
	UseCase *usecase.TransactionUseCase
}

func NewTransactionController(useCase *usecase.TransactionUseCase, logger log.Log) *TransactionController {
	return &TransactionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TransactionController) LogMomo(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.LogMomoRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.LogMomo", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.LogMomo(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transaction logged", fiber.StatusCreated, ctx)
}

func (c *TransactionController) LogBank(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.LogBankRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.LogBank", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.LogBank(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transaction logged", fiber.StatusCreated, ctx)
}

func (c *TransactionController) LogAirtime(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.LogAirtimeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.LogAirtime", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.LogAirtime(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Airtime logged", fiber.StatusCreated, ctx)
}

func (c *TransactionController) LogSim(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.LogSimRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.LogSim", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.LogSim(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "SIM registration logged", fiber.StatusCreated, ctx)
}

func (c *TransactionController) LogSusu(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.LogSusuRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.LogSusu", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.LogSusu(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Contribution logged", fiber.StatusCreated, ctx)
}

// List serves /api/transactions/:service history.
func (c *TransactionController) List(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := &model.ListTransactionsRequest{
		Service:   ctx.Params("service"),
		AgentID:   int64(ctx.QueryInt("agent_id")),
		AllAgents: ctx.QueryBool("all"),
		Start:     ctx.Query("start"),
		End:       ctx.Query("end"),
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Context(), historyTimeout)
	defer cancel()

	result := c.UseCase.List(timeoutCtx, principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transactions", fiber.StatusOK, ctx)
}
