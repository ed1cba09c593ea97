package http

import (
	"context"
	"strconv"

	"momovender/src/internal/model"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	Log     log.Log
	UseCase *usecase.ReportUseCase
}

func NewReportController(useCase *usecase.ReportUseCase, logger log.Log) *ReportController {
	return &ReportController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ReportController) Report(ctx *fiber.Ctx) error {
	request := &model.ReportRequest{
		Type:  ctx.Query("type", "month"),
		Start: ctx.Query("start"),
		End:   ctx.Query("end"),
	}

	// branch_id=all (or absent) means company-wide
	if raw := ctx.Query("branch_id"); raw != "" && raw != "all" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			request.BranchID = &id
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Context(), historyTimeout)
	defer cancel()

	result := c.UseCase.Report(timeoutCtx, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Report", fiber.StatusOK, ctx)
}
