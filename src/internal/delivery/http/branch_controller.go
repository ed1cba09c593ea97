package http

import (
	"momovender/src/internal/model"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type BranchController struct {
	Log     log.Log
	UseCase *usecase.BranchUseCase
}

func NewBranchController(useCase *usecase.BranchUseCase, logger log.Log) *BranchController {
	return &BranchController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *BranchController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Branches", fiber.StatusOK, ctx)
}

func (c *BranchController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateBranchRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BranchController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Branch created", fiber.StatusCreated, ctx)
}

func (c *BranchController) Update(ctx *fiber.Ctx) error {
	request := new(model.UpdateBranchRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BranchController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Branch updated", fiber.StatusOK, ctx)
}

func (c *BranchController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Delete(ctx.Context(), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Branch deleted", fiber.StatusOK, ctx)
}
