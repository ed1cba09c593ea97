package usecase

import (
	"context"
	"fmt"
	"time"

	"momovender/src/internal/entity"
	"momovender/src/internal/gateway/messaging"
	"momovender/src/internal/model"
	"momovender/src/internal/model/converter"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const payrollPageSize = 50

type payoutStore interface {
	EarnedByAgent(ctx context.Context, p repository.EarnedParams) ([]entity.AgentEarnings, error)
	PaidByAgent(ctx context.Context, start, end string) ([]entity.PaidAggregate, error)
	Insert(ctx context.Context, payout *entity.Payout) error
}

type payrollAgentStore interface {
	FindByID(ctx context.Context, id int64) (*entity.Agent, error)
}

type payrollEvents interface {
	SendPayrollUpdate(event *model.PayrollUpdateEvent) error
}

type PayrollUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Payouts  payoutStore
	Agents   payrollAgentStore
	Producer payrollEvents
}

func NewPayrollUseCase(
	logger log.Log,
	validate *validator.Validate,
	payoutRepository *repository.PayoutRepository,
	agentRepository *repository.AgentRepository,
	producer *messaging.LedgerProducer,
) *PayrollUseCase {
	return &PayrollUseCase{
		Log:      logger,
		Validate: validate,
		Payouts:  payoutRepository,
		Agents:   agentRepository,
		Producer: producer,
	}
}

// defaultRange fills a missing or malformed reconciliation window with
// the current calendar month to date.
func defaultRange(start, end string, now time.Time) (string, string) {
	start = cleanDate(start)
	end = cleanDate(end)
	if start == "" {
		start = now.Format("2006-01") + "-01"
	}
	if end == "" {
		end = now.Format(dateLayout)
	}
	return start, end
}

// Reconcile joins commission earnings against settled payouts per agent
// over the requested window.
func (c *PayrollUseCase) Reconcile(ctx context.Context, request *model.ReconcileRequest) utils.Result {
	var result utils.Result

	start, end := defaultRange(request.Start, request.End, time.Now())

	page := request.Page
	if page < 1 {
		page = 1
	}
	limit := request.Limit
	if limit < 1 || limit > payrollPageSize {
		limit = payrollPageSize
	}

	earnings, err := c.Payouts.EarnedByAgent(ctx, repository.EarnedParams{
		Start:  start,
		End:    end,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			errObj := httpError.NewRequestTimeout()
			errObj.Message = "reconciliation timed out, try a narrower date range"
			result.Error = errObj
			return result
		}
		c.Log.Error("Reconcile-EarnedByAgent", err.Error(), "range", start+".."+end)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	paidRows, err := c.Payouts.PaidByAgent(ctx, start, end)
	if err != nil {
		c.Log.Error("Reconcile-PaidByAgent", err.Error(), "range", start+".."+end)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	paidByAgent := make(map[int64]decimal.Decimal, len(paidRows))
	for _, row := range paidRows {
		paidByAgent[row.EmployeeID] = row.Paid
	}

	agents := make([]model.PayrollAgent, 0, len(earnings))
	var totalPayable, totalPaid, totalPending decimal.Decimal
	dueCount := 0

	for i := range earnings {
		paid := paidByAgent[earnings[i].ID]
		agent := converter.PayrollAgentFromAggregates(&earnings[i], paid)
		agents = append(agents, agent)

		totalPayable = totalPayable.Add(earnings[i].Earned)
		totalPaid = totalPaid.Add(paid)
		pending := earnings[i].Earned.Sub(paid)
		if pending.IsPositive() {
			totalPending = totalPending.Add(pending)
			dueCount++
		}
	}

	result.Data = &model.ReconcileResponse{
		Agents: agents,
		Stats: model.PayrollStats{
			TotalPayable: totalPayable.Round(2).InexactFloat64(),
			TotalPaid:    totalPaid.Round(2).InexactFloat64(),
			Pending:      totalPending.Round(2).InexactFloat64(),
			DueCount:     dueCount,
		},
		Pagination: model.Pagination{
			Page:  page,
			Limit: limit,
			Total: len(agents),
		},
	}
	return result
}

func (c *PayrollUseCase) publishPayout(agentID int64, agentName string, amount decimal.Decimal, payoutType, method string) {
	if c.Producer == nil {
		return
	}
	event := &model.PayrollUpdateEvent{
		EventID:    uuid.NewString(),
		AgentID:    agentID,
		AgentName:  agentName,
		Amount:     amount.Round(2).InexactFloat64(),
		PayoutType: payoutType,
		Method:     method,
	}
	if err := c.Producer.SendPayrollUpdate(event); err != nil {
		c.Log.Error("payroll-publish", err.Error(), payoutType, utils.ConvertString(agentID))
	}
}

// Pay records settlements for the listed agents. Like float mutations
// this is per-agent: one unknown agent id fails that entry only.
func (c *PayrollUseCase) Pay(ctx context.Context, principal model.Principal, request *model.PayRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	payoutType := request.PayoutType
	if payoutType == "" {
		payoutType = "commission"
	}
	method := request.Method
	if method == "" {
		method = "momo"
	}

	amount := decimal.NewFromFloat(request.Amount)
	response := &model.BulkMutationResponse{
		Results: make([]model.AgentMutationResult, 0, len(request.AgentIDs)),
	}

	for _, agentID := range request.AgentIDs {
		agent, err := c.Agents.FindByID(ctx, agentID)
		if err != nil {
			response.FailCount++
			response.Results = append(response.Results, model.AgentMutationResult{
				AgentID: agentID,
				Success: false,
				Message: "agent not found",
			})
			continue
		}

		payout := &entity.Payout{
			EmployeeID: agentID,
			Amount:     amount,
			PayoutType: payoutType,
			PaidBy:     principal.ID,
			Method:     method,
		}
		if request.Note != "" {
			note := request.Note
			payout.Note = &note
		}

		if err := c.Payouts.Insert(ctx, payout); err != nil {
			c.Log.Error("Pay-Insert", err.Error(), "payout", utils.ConvertString(agentID))
			response.FailCount++
			response.Results = append(response.Results, model.AgentMutationResult{
				AgentID: agentID,
				Success: false,
				Message: "could not record payout",
			})
			continue
		}

		response.SuccessCount++
		response.Results = append(response.Results, model.AgentMutationResult{
			AgentID: agentID,
			Success: true,
		})
		c.publishPayout(agentID, agent.FullName(), amount, payoutType, method)
	}

	c.Log.Info("Pay", fmt.Sprintf("paid %d of %d agents", response.SuccessCount, len(request.AgentIDs)), payoutType, "")
	result.Data = response
	return result
}
