package usecase

import (
	"context"
	"errors"
	"fmt"

	"momovender/src/internal/entity"
	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type branchStore interface {
	List(ctx context.Context) ([]entity.BranchRow, error)
	FindByID(ctx context.Context, id int64) (*entity.Branch, error)
	Create(ctx context.Context, branch *entity.Branch) error
	Update(ctx context.Context, params repository.UpdateBranchParams) error
	Delete(ctx context.Context, id int64) error
}

type BranchUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Branches branchStore
}

func NewBranchUseCase(
	logger log.Log,
	validate *validator.Validate,
	branchRepository *repository.BranchRepository,
) *BranchUseCase {
	return &BranchUseCase{
		Log:      logger,
		Validate: validate,
		Branches: branchRepository,
	}
}

func (c *BranchUseCase) List(ctx context.Context) utils.Result {
	var result utils.Result

	rows, err := c.Branches.List(ctx)
	if err != nil {
		c.Log.Error("ListBranches", err.Error(), "list", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = rows
	return result
}

func (c *BranchUseCase) Create(ctx context.Context, request *model.CreateBranchRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	branch := &entity.Branch{
		Name:     request.Name,
		Location: request.Location,
	}
	if err := c.Branches.Create(ctx, branch); err != nil {
		c.Log.Error("CreateBranch", err.Error(), "create", request.Name)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("CreateBranch", "branch created", "branchID", utils.ConvertString(branch.ID))
	result.Data = branch
	return result
}

func (c *BranchUseCase) Update(ctx context.Context, request *model.UpdateBranchRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	err := c.Branches.Update(ctx, repository.UpdateBranchParams{
		ID:        request.ID,
		Name:      request.Name,
		Location:  request.Location,
		ManagerID: request.ManagerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = "branch not found"
			result.Error = errObj
			return result
		}
		c.Log.Error("UpdateBranch", err.Error(), "update", utils.ConvertString(request.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

func (c *BranchUseCase) Delete(ctx context.Context, id int64) utils.Result {
	var result utils.Result

	if err := c.Branches.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = "branch not found"
			result.Error = errObj
			return result
		}
		c.Log.Error("DeleteBranch", err.Error(), "delete", utils.ConvertString(id))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("DeleteBranch", "branch removed", "branchID", utils.ConvertString(id))
	result.Data = map[string]interface{}{"deleted": true}
	return result
}
