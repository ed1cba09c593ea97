package usecase

import (
	"context"
	"errors"
	"fmt"

	"momovender/src/internal/entity"
	"momovender/src/internal/gateway/messaging"
	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const floatPageSize = 10

type floatStore interface {
	Adjust(ctx context.Context, p repository.AdjustParams) (*entity.FloatLog, error)
	ListAgents(ctx context.Context, p repository.FloatListParams) ([]entity.FloatAgentRow, error)
	Stats(ctx context.Context) (*entity.FloatStats, error)
	History(ctx context.Context, p repository.FloatHistoryParams) ([]entity.FloatLogRow, error)
	CreateRequest(ctx context.Context, agentID int64, amount decimal.Decimal, reason string) error
	PendingRequests(ctx context.Context, branchID *int64) ([]entity.FloatRequestRow, error)
	FindRequest(ctx context.Context, id int64) (*entity.FloatRequest, error)
	ProcessRequest(ctx context.Context, id, managerID int64, status string) error
}

type floatEvents interface {
	SendFloatUpdate(event *model.FloatUpdateEvent) error
}

type FloatUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Floats   floatStore
	Producer floatEvents
}

func NewFloatUseCase(
	logger log.Log,
	validate *validator.Validate,
	floatRepository *repository.FloatRepository,
	producer *messaging.LedgerProducer,
) *FloatUseCase {
	return &FloatUseCase{
		Log:      logger,
		Validate: validate,
		Floats:   floatRepository,
		Producer: producer,
	}
}

func (c *FloatUseCase) publishUpdate(agentID int64, action string, amount decimal.Decimal) {
	if c.Producer == nil {
		return
	}
	event := &model.FloatUpdateEvent{
		EventID: uuid.NewString(),
		AgentID: agentID,
		Action:  action,
		Amount:  amount.Round(2).InexactFloat64(),
	}
	if err := c.Producer.SendFloatUpdate(event); err != nil {
		c.Log.Error("float-publish", err.Error(), action, utils.ConvertString(agentID))
	}
}

// mutationMessage maps the repository sentinels onto per-agent messages
// for the bulk result list.
func mutationMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrAgentNotFound):
		return "agent not found"
	case errors.Is(err, repository.ErrAccountNotFound):
		return "agent has no float account"
	case errors.Is(err, repository.ErrInsufficientFunds):
		return "insufficient float balance"
	default:
		return "could not update balance"
	}
}

// mutate runs one bulk balance mutation. Each agent is its own
// transaction: a failure mid-list never rolls back earlier successes, it
// is reported per agent instead.
func (c *FloatUseCase) mutate(ctx context.Context, principal model.Principal, agentIDs []int64, action string, amount decimal.Decimal, note string) utils.Result {
	response := &model.BulkMutationResponse{
		Results: make([]model.AgentMutationResult, 0, len(agentIDs)),
	}

	for _, agentID := range agentIDs {
		_, err := c.Floats.Adjust(ctx, repository.AdjustParams{
			AdminID:   principal.ID,
			AdminName: principal.FullName,
			AgentID:   agentID,
			Action:    action,
			Amount:    amount,
			Note:      note,
		})
		if err != nil {
			c.Log.Error("FloatMutate", err.Error(), action, utils.ConvertString(agentID))
			response.FailCount++
			response.Results = append(response.Results, model.AgentMutationResult{
				AgentID: agentID,
				Success: false,
				Message: mutationMessage(err),
			})
			continue
		}

		response.SuccessCount++
		response.Results = append(response.Results, model.AgentMutationResult{
			AgentID: agentID,
			Success: true,
		})
		c.publishUpdate(agentID, action, amount)
	}

	c.Log.Info("FloatMutate", fmt.Sprintf("%s applied to %d of %d agents", action, response.SuccessCount, len(agentIDs)), action, "")
	return utils.Result{Data: response}
}

func (c *FloatUseCase) TopUp(ctx context.Context, principal model.Principal, request *model.TopUpRequest) utils.Result {
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		return utils.Result{Error: errObj}
	}
	return c.mutate(ctx, principal, request.AgentIDs, entity.FloatActionTopup, decimal.NewFromFloat(request.Amount), request.Note)
}

func (c *FloatUseCase) Deduct(ctx context.Context, principal model.Principal, request *model.DeductRequest) utils.Result {
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		return utils.Result{Error: errObj}
	}
	return c.mutate(ctx, principal, request.AgentIDs, entity.FloatActionDeduct, decimal.NewFromFloat(request.Amount), request.Note)
}

func (c *FloatUseCase) ListAgents(ctx context.Context, request *model.FloatListRequest) utils.Result {
	var result utils.Result

	page := request.Page
	if page < 1 {
		page = 1
	}

	rows, err := c.Floats.ListAgents(ctx, repository.FloatListParams{
		Search: request.Search,
		Branch: request.Branch,
		Sort:   request.Sort,
		Order:  request.Order,
		Limit:  floatPageSize,
		Offset: (page - 1) * floatPageSize,
	})
	if err != nil {
		c.Log.Error("FloatListAgents", err.Error(), "list", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = map[string]interface{}{
		"agents": rows,
		"pagination": model.Pagination{
			Page:  page,
			Limit: floatPageSize,
			Total: len(rows),
		},
	}
	return result
}

func (c *FloatUseCase) Stats(ctx context.Context) utils.Result {
	var result utils.Result

	stats, err := c.Floats.Stats(ctx)
	if err != nil {
		c.Log.Error("FloatStats", err.Error(), "stats", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = stats
	return result
}

func (c *FloatUseCase) History(ctx context.Context, request *model.FloatHistoryRequest) utils.Result {
	var result utils.Result

	page := request.Page
	if page < 1 {
		page = 1
	}

	rows, err := c.Floats.History(ctx, repository.FloatHistoryParams{
		Search: request.Search,
		From:   cleanDate(request.From),
		To:     cleanDate(request.To),
		Action: request.Action,
		Limit:  floatPageSize,
		Offset: (page - 1) * floatPageSize,
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			errObj := httpError.NewRequestTimeout()
			errObj.Message = "history query timed out, try a narrower date range"
			result.Error = errObj
			return result
		}
		c.Log.Error("FloatHistory", err.Error(), "history", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = map[string]interface{}{
		"logs": rows,
		"pagination": model.Pagination{
			Page:  page,
			Limit: floatPageSize,
			Total: len(rows),
		},
	}
	return result
}

func (c *FloatUseCase) CreateRequest(ctx context.Context, principal model.Principal, request *model.CreateFloatRequestRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	err := c.Floats.CreateRequest(ctx, principal.ID, decimal.NewFromFloat(request.Amount), request.Reason)
	if err != nil {
		c.Log.Error("CreateFloatRequest", err.Error(), "create", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("CreateFloatRequest", "float requested", "agentID", utils.ConvertString(principal.ID))
	result.Data = map[string]interface{}{"requested": true}
	return result
}

// PendingRequests is branch-scoped for managers and unscoped for the
// admin tier.
func (c *FloatUseCase) PendingRequests(ctx context.Context, principal model.Principal) utils.Result {
	var result utils.Result

	var branchID *int64
	if !principal.IsAdmin() {
		branchID = principal.BranchID
	}

	rows, err := c.Floats.PendingRequests(ctx, branchID)
	if err != nil {
		c.Log.Error("PendingFloatRequests", err.Error(), "list", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = rows
	return result
}

// ProcessRequest settles a pending float request. The status flip is a
// conditional update so two managers racing on the same request cannot
// both win; approval then credits the agent through the same atomic
// Adjust path as a manual top-up.
func (c *FloatUseCase) ProcessRequest(ctx context.Context, principal model.Principal, request *model.ProcessFloatRequestRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	floatRequest, err := c.Floats.FindRequest(ctx, request.RequestID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "float request not found"
		result.Error = errObj
		return result
	}

	err = c.Floats.ProcessRequest(ctx, request.RequestID, principal.ID, request.Status)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyProcessed) {
			errObj := httpError.NewConflict()
			errObj.Message = "request has already been processed"
			result.Error = errObj
			return result
		}
		c.Log.Error("ProcessFloatRequest", err.Error(), "process", utils.ConvertString(request.RequestID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if request.Status == entity.FloatRequestApproved {
		_, err := c.Floats.Adjust(ctx, repository.AdjustParams{
			AdminID:   principal.ID,
			AdminName: principal.FullName,
			AgentID:   floatRequest.AgentID,
			Action:    entity.FloatActionTopup,
			Amount:    floatRequest.Amount,
			Note:      fmt.Sprintf("float request #%d approved", floatRequest.ID),
		})
		if err != nil {
			c.Log.Error("ProcessFloatRequest-Adjust", err.Error(), "approve", utils.ConvertString(floatRequest.AgentID))
			result.Error = httpError.NewInternalServerError()
			return result
		}
		c.publishUpdate(floatRequest.AgentID, entity.FloatActionTopup, floatRequest.Amount)
	}

	c.Log.Info("ProcessFloatRequest", "request "+request.Status, "requestID", utils.ConvertString(request.RequestID))
	result.Data = map[string]interface{}{
		"id":     request.RequestID,
		"status": request.Status,
	}
	return result
}
