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
	"golang.org/x/crypto/bcrypt"
)

const agentPageSize = 10

type agentStore interface {
	FindByID(ctx context.Context, id int64) (*entity.Agent, error)
	Create(ctx context.Context, agent *entity.Agent) (int64, error)
	Update(ctx context.Context, p repository.UpdateAgentParams) error
	Delete(ctx context.Context, id int64, branchID *int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context, p repository.ListAgentsParams) ([]entity.AgentListRow, error)
	Stats(ctx context.Context) (*repository.AgentStatsRow, error)
	EnsureAccount(ctx context.Context, agentID int64) error
}

// AgentUseCase is the staff-management surface shared by the admin desk
// (all branches) and managers (own branch only).
type AgentUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Agents   agentStore
}

func NewAgentUseCase(
	logger log.Log,
	validate *validator.Validate,
	agentRepository *repository.AgentRepository,
) *AgentUseCase {
	return &AgentUseCase{
		Log:      logger,
		Validate: validate,
		Agents:   agentRepository,
	}
}

// scopeBranch limits managers to their own branch; the admin tier is
// unscoped.
func scopeBranch(principal model.Principal) *int64 {
	if principal.IsAdmin() {
		return nil
	}
	return principal.BranchID
}

func (c *AgentUseCase) List(ctx context.Context, principal model.Principal, request *model.ListAgentsRequest) utils.Result {
	var result utils.Result

	page := request.Page
	if page < 1 {
		page = 1
	}
	limit := request.Limit
	if limit < 1 || limit > 100 {
		limit = agentPageSize
	}

	rows, err := c.Agents.List(ctx, repository.ListAgentsParams{
		Search:   request.Search,
		Sort:     request.Sort,
		Order:    request.Order,
		BranchID: scopeBranch(principal),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		c.Log.Error("ListAgents", err.Error(), "list", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = map[string]interface{}{
		"agents": rows,
		"pagination": model.Pagination{
			Page:  page,
			Limit: limit,
			Total: len(rows),
		},
	}
	return result
}

func (c *AgentUseCase) Create(ctx context.Context, principal model.Principal, request *model.CreateAgentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.Log.Error("CreateAgent-hash", err.Error(), "create", request.Username)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	agent := &entity.Agent{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Username:  request.Username,
		Phone:     request.Phone,
		Role:      "employee",
		Password:  string(hashed),
		BranchID:  principal.BranchID,
		IsActive:  true,
	}

	id, err := c.Agents.Create(ctx, agent)
	if err != nil {
		errObj := httpError.NewConflict()
		errObj.Message = "username or phone already in use"
		result.Error = errObj
		c.Log.Error("CreateAgent", err.Error(), "create", request.Username)
		return result
	}

	if err := c.Agents.EnsureAccount(ctx, id); err != nil {
		c.Log.Error("CreateAgent-EnsureAccount", err.Error(), "create", utils.ConvertString(id))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	agent.ID = id
	c.Log.Info("CreateAgent", "agent created", "agentID", utils.ConvertString(id))
	result.Data = agent
	return result
}

func (c *AgentUseCase) Update(ctx context.Context, principal model.Principal, request *model.UpdateAgentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	params := repository.UpdateAgentParams{
		ID:        request.ID,
		BranchID:  scopeBranch(principal),
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Username:  request.Username,
		Phone:     request.Phone,
	}

	if request.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			c.Log.Error("UpdateAgent-hash", err.Error(), "update", utils.ConvertString(request.ID))
			result.Error = httpError.NewInternalServerError()
			return result
		}
		hashedStr := string(hashed)
		params.Password = &hashedStr
	}

	if err := c.Agents.Update(ctx, params); err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = "agent not found"
			result.Error = errObj
			return result
		}
		c.Log.Error("UpdateAgent", err.Error(), "update", utils.ConvertString(request.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("UpdateAgent", "agent updated", "agentID", utils.ConvertString(request.ID))
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

func (c *AgentUseCase) Delete(ctx context.Context, principal model.Principal, id int64) utils.Result {
	var result utils.Result

	if err := c.Agents.Delete(ctx, id, scopeBranch(principal)); err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = "agent not found"
			result.Error = errObj
			return result
		}
		c.Log.Error("DeleteAgent", err.Error(), "delete", utils.ConvertString(id))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("DeleteAgent", "agent removed", "agentID", utils.ConvertString(id))
	result.Data = map[string]interface{}{"deleted": true}
	return result
}

func (c *AgentUseCase) SetActive(ctx context.Context, id int64, active bool) utils.Result {
	var result utils.Result

	if err := c.Agents.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = "agent not found"
			result.Error = errObj
			return result
		}
		c.Log.Error("SetAgentActive", err.Error(), "status", utils.ConvertString(id))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = map[string]interface{}{"id": id, "is_active": active}
	return result
}

func (c *AgentUseCase) Stats(ctx context.Context) utils.Result {
	var result utils.Result

	row, err := c.Agents.Stats(ctx)
	if err != nil {
		c.Log.Error("AgentStats", err.Error(), "stats", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = &model.AgentStats{
		Total:      row.Total,
		Active:     row.Active,
		Inactive:   row.Inactive,
		TotalFloat: row.TotalFloat.Round(2).InexactFloat64(),
	}
	return result
}

func (c *AgentUseCase) Get(ctx context.Context, id int64) utils.Result {
	var result utils.Result

	agent, err := c.Agents.FindByID(ctx, id)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("agent with id %d not found", id)
		result.Error = errObj
		return result
	}

	result.Data = agent
	return result
}
