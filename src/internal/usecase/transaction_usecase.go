package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

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

type transactionStore interface {
	InsertMomo(ctx context.Context, t *entity.MomoTransaction) error
	InsertBank(ctx context.Context, t *entity.BankTransaction) error
	InsertAirtime(ctx context.Context, t *entity.AirtimeLog) error
	InsertSim(ctx context.Context, t *entity.SimSale) error
	InsertSusu(ctx context.Context, t *entity.SusuContribution) error
	ListMomo(ctx context.Context, p repository.ListParams) ([]entity.MomoTransaction, error)
	ListBank(ctx context.Context, p repository.ListParams) ([]entity.BankTransaction, error)
	ListAirtime(ctx context.Context, p repository.ListParams) ([]entity.AirtimeLog, error)
	ListSim(ctx context.Context, p repository.ListParams) ([]entity.SimSale, error)
	ListSusu(ctx context.Context, p repository.ListParams) ([]entity.SusuContribution, error)
}

type transactionEvents interface {
	SendTransactionLogged(event *model.TransactionEvent) error
}

type TransactionUseCase struct {
	Log          log.Log
	Validate     *validator.Validate
	Transactions transactionStore
	Producer     transactionEvents
}

func NewTransactionUseCase(
	logger log.Log,
	validate *validator.Validate,
	transactionRepository *repository.TransactionRepository,
	producer *messaging.TransactionProducer,
) *TransactionUseCase {
	return &TransactionUseCase{
		Log:          logger,
		Validate:     validate,
		Transactions: transactionRepository,
		Producer:     producer,
	}
}

// newTransactionID mints the customer-facing reference, e.g. MOMO-9F2A41C7.
func newTransactionID(service string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(service) + "-" + strings.ToUpper(raw[:8])
}

// newSusuID keeps the branch ledgers' historical susu reference format,
// e.g. SUSU202609011234, so receipts stay sortable by day.
func newSusuID(now time.Time) string {
	return fmt.Sprintf("SUSU%s%04d", now.Format("20060102"), 1000+rand.IntN(9000))
}

func (c *TransactionUseCase) validationError(scope string, err error) utils.Result {
	errObj := httpError.NewBadRequest()
	errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
	c.Log.Error(scope, err.Error(), "validation", "")
	return utils.Result{Error: errObj}
}

func (c *TransactionUseCase) insertError(scope string, err error) utils.Result {
	c.Log.Error(scope, err.Error(), "insert", "")
	return utils.Result{Error: httpError.NewInternalServerError()}
}

// publish is fire-and-forget: the row is already committed, a broker
// outage must not fail the request.
func (c *TransactionUseCase) publish(service string, agentID int64, payload interface{}) {
	if c.Producer == nil {
		return
	}
	event := &model.TransactionEvent{
		EventID: uuid.NewString(),
		Service: service,
		AgentID: agentID,
		Payload: payload,
	}
	if err := c.Producer.SendTransactionLogged(event); err != nil {
		c.Log.Error("transaction-publish", err.Error(), service, utils.ConvertString(agentID))
	}
}

func (c *TransactionUseCase) LogMomo(ctx context.Context, principal model.Principal, request *model.LogMomoRequest) utils.Result {
	if err := c.Validate.Struct(request); err != nil {
		return c.validationError("LogMomo", err)
	}

	t := &entity.MomoTransaction{
		TransactionID: newTransactionID(entity.ServiceMomo),
		AgentID:       principal.ID,
		AgentName:     principal.FullName,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		Amount:        decimal.NewFromFloat(request.Amount),
		Type:          request.Type,
		Network:       request.Network,
		MomoReference: request.MomoReference,
		ReferenceNote: request.ReferenceNote,
	}

	if err := c.Transactions.InsertMomo(ctx, t); err != nil {
		return c.insertError("LogMomo", err)
	}

	c.publish(entity.ServiceMomo, principal.ID, t)
	c.Log.Info("LogMomo", "transaction logged", "transactionID", t.TransactionID)
	return utils.Result{Data: t}
}

func (c *TransactionUseCase) LogBank(ctx context.Context, principal model.Principal, request *model.LogBankRequest) utils.Result {
	if err := c.Validate.Struct(request); err != nil {
		return c.validationError("LogBank", err)
	}

	t := &entity.BankTransaction{
		TransactionID:   newTransactionID(entity.ServiceBank),
		AgentID:         principal.ID,
		AgentName:       principal.FullName,
		CustomerName:    request.CustomerName,
		CustomerAccount: request.CustomerAccount,
		BankName:        request.BankName,
		Amount:          decimal.NewFromFloat(request.Amount),
		Type:            request.Type,
		ReferenceNote:   request.ReferenceNote,
	}

	if err := c.Transactions.InsertBank(ctx, t); err != nil {
		return c.insertError("LogBank", err)
	}

	c.publish(entity.ServiceBank, principal.ID, t)
	c.Log.Info("LogBank", "transaction logged", "transactionID", t.TransactionID)
	return utils.Result{Data: t}
}

func (c *TransactionUseCase) LogAirtime(ctx context.Context, principal model.Principal, request *model.LogAirtimeRequest) utils.Result {
	if err := c.Validate.Struct(request); err != nil {
		return c.validationError("LogAirtime", err)
	}

	t := &entity.AirtimeLog{
		EmployeeID:    principal.ID,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		Network:       request.Network,
		Amount:        decimal.NewFromFloat(request.Amount),
		ReferenceNote: request.ReferenceNote,
	}

	if err := c.Transactions.InsertAirtime(ctx, t); err != nil {
		return c.insertError("LogAirtime", err)
	}

	c.publish(entity.ServiceAirtime, principal.ID, t)
	c.Log.Info("LogAirtime", "airtime logged", "id", utils.ConvertString(t.ID))
	return utils.Result{Data: t}
}

func (c *TransactionUseCase) LogSim(ctx context.Context, principal model.Principal, request *model.LogSimRequest) utils.Result {
	if err := c.Validate.Struct(request); err != nil {
		return c.validationError("LogSim", err)
	}

	t := &entity.SimSale{
		TransactionID: newTransactionID(entity.ServiceSim),
		EmployeeID:    principal.ID,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		IDType:        request.IDType,
		IDNumber:      request.IDNumber,
		Network:       request.Network,
		Amount:        decimal.NewFromFloat(request.Amount),
		ReferenceNote: request.ReferenceNote,
	}

	if err := c.Transactions.InsertSim(ctx, t); err != nil {
		return c.insertError("LogSim", err)
	}

	c.publish(entity.ServiceSim, principal.ID, t)
	c.Log.Info("LogSim", "sim sale logged", "transactionID", t.TransactionID)
	return utils.Result{Data: t}
}

func (c *TransactionUseCase) LogSusu(ctx context.Context, principal model.Principal, request *model.LogSusuRequest) utils.Result {
	if err := c.Validate.Struct(request); err != nil {
		return c.validationError("LogSusu", err)
	}

	t := &entity.SusuContribution{
		TransactionID: newSusuID(time.Now()),
		AgentID:       principal.ID,
		AgentName:     principal.FullName,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		Amount:        decimal.NewFromFloat(request.Amount),
		SusuGroup:     request.SusuGroup,
		Reference:     request.Reference,
	}

	if err := c.Transactions.InsertSusu(ctx, t); err != nil {
		return c.insertError("LogSusu", err)
	}

	c.publish(entity.ServiceSusu, principal.ID, t)
	c.Log.Info("LogSusu", "contribution logged", "transactionID", t.TransactionID)
	return utils.Result{Data: t}
}

const defaultHistoryLimit = 1000

// List reads one service's history. Non-admin callers only ever see their
// own rows regardless of what they ask for.
func (c *TransactionUseCase) List(ctx context.Context, principal model.Principal, request *model.ListTransactionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		return c.validationError("ListTransactions", err)
	}

	params := repository.ListParams{
		AgentID:   principal.ID,
		AllAgents: request.AllAgents && principal.IsAdmin(),
		Start:     cleanDate(request.Start),
		End:       cleanDate(request.End),
		Limit:     defaultHistoryLimit,
	}
	if request.AgentID != 0 && principal.IsAdmin() {
		params.AgentID = request.AgentID
		params.AllAgents = false
	}

	var (
		data interface{}
		err  error
	)
	switch request.Service {
	case entity.ServiceMomo:
		data, err = c.Transactions.ListMomo(ctx, params)
	case entity.ServiceBank:
		data, err = c.Transactions.ListBank(ctx, params)
	case entity.ServiceAirtime:
		data, err = c.Transactions.ListAirtime(ctx, params)
	case entity.ServiceSim:
		data, err = c.Transactions.ListSim(ctx, params)
	case entity.ServiceSusu:
		data, err = c.Transactions.ListSusu(ctx, params)
	}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			errObj := httpError.NewRequestTimeout()
			errObj.Message = "history query timed out, try a narrower date range"
			result.Error = errObj
			return result
		}
		c.Log.Error("ListTransactions", err.Error(), request.Service, "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = data
	return result
}
