package usecase

import (
	"context"
	"testing"
	"time"

	"momovender/src/internal/entity"
	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	"momovender/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakePayoutStore struct {
	earnings []entity.AgentEarnings
	paid     []entity.PaidAggregate
	inserted []*entity.Payout
}

func (f *fakePayoutStore) EarnedByAgent(ctx context.Context, p repository.EarnedParams) ([]entity.AgentEarnings, error) {
	return f.earnings, nil
}

func (f *fakePayoutStore) PaidByAgent(ctx context.Context, start, end string) ([]entity.PaidAggregate, error) {
	return f.paid, nil
}

func (f *fakePayoutStore) Insert(ctx context.Context, payout *entity.Payout) error {
	f.inserted = append(f.inserted, payout)
	return nil
}

type fakeAgentFinder struct {
	agents map[int64]*entity.Agent
}

func (f *fakeAgentFinder) FindByID(ctx context.Context, id int64) (*entity.Agent, error) {
	agent, ok := f.agents[id]
	if !ok {
		return nil, repository.ErrAgentNotFound
	}
	return agent, nil
}

func newPayrollUseCase(store *fakePayoutStore, agents *fakeAgentFinder) *PayrollUseCase {
	if agents == nil {
		agents = &fakeAgentFinder{agents: map[int64]*entity.Agent{}}
	}
	return &PayrollUseCase{
		Log:      log.Log{},
		Validate: validator.New(),
		Payouts:  store,
		Agents:   agents,
	}
}

func earnings(id int64, earned float64) entity.AgentEarnings {
	return entity.AgentEarnings{
		ID:        id,
		FirstName: "Ama",
		LastName:  "Mensah",
		Username:  "mensah1234",
		Role:      "employee",
		Earned:    decimal.NewFromFloat(earned),
	}
}

func TestReconcilePendingIsEarnedMinusPaid(t *testing.T) {
	store := &fakePayoutStore{
		earnings: []entity.AgentEarnings{earnings(1, 150)},
		paid:     []entity.PaidAggregate{{EmployeeID: 1, Paid: decimal.NewFromInt(60)}},
	}
	uc := newPayrollUseCase(store, nil)

	result := uc.Reconcile(context.Background(), &model.ReconcileRequest{})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.ReconcileResponse)
	assert.Len(t, response.Agents, 1)
	assert.Equal(t, 150.0, response.Agents[0].Earned)
	assert.Equal(t, 60.0, response.Agents[0].Paid)
	assert.Equal(t, 90.0, response.Agents[0].Pending)
	assert.Equal(t, 1, response.Stats.DueCount)
}

func TestReconcileOverpaymentClampsToZero(t *testing.T) {
	store := &fakePayoutStore{
		earnings: []entity.AgentEarnings{earnings(1, 50)},
		paid:     []entity.PaidAggregate{{EmployeeID: 1, Paid: decimal.NewFromInt(80)}},
	}
	uc := newPayrollUseCase(store, nil)

	result := uc.Reconcile(context.Background(), &model.ReconcileRequest{})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.ReconcileResponse)
	assert.Equal(t, 0.0, response.Agents[0].Pending)
	assert.Equal(t, 0, response.Stats.DueCount)
}

func TestReconcileZeroTransactionAgentAppears(t *testing.T) {
	store := &fakePayoutStore{
		earnings: []entity.AgentEarnings{earnings(1, 0)},
	}
	uc := newPayrollUseCase(store, nil)

	result := uc.Reconcile(context.Background(), &model.ReconcileRequest{})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.ReconcileResponse)
	assert.Len(t, response.Agents, 1)
	assert.Equal(t, 0.0, response.Agents[0].Earned)
	assert.Equal(t, 0.0, response.Agents[0].Pending)
}

func TestReconcileStatsSumAcrossAgents(t *testing.T) {
	store := &fakePayoutStore{
		earnings: []entity.AgentEarnings{earnings(1, 100), earnings(2, 200)},
		paid:     []entity.PaidAggregate{{EmployeeID: 2, Paid: decimal.NewFromInt(200)}},
	}
	uc := newPayrollUseCase(store, nil)

	result := uc.Reconcile(context.Background(), &model.ReconcileRequest{})

	response := result.Data.(*model.ReconcileResponse)
	assert.Equal(t, 300.0, response.Stats.TotalPayable)
	assert.Equal(t, 200.0, response.Stats.TotalPaid)
	assert.Equal(t, 100.0, response.Stats.Pending)
	assert.Equal(t, 1, response.Stats.DueCount)
}

func TestDefaultRangeIsMonthToDate(t *testing.T) {
	now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)

	start, end := defaultRange("", "", now)
	assert.Equal(t, "2026-03-01", start)
	assert.Equal(t, "2026-03-18", end)

	start, end = defaultRange("2026-01-01", "2026-01-31", now)
	assert.Equal(t, "2026-01-01", start)
	assert.Equal(t, "2026-01-31", end)
}

// Garbage dates never reach the database; they fall back to the same
// window as missing ones.
func TestDefaultRangeDiscardsMalformedDates(t *testing.T) {
	now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)

	start, end := defaultRange("banana", "2026-13-99", now)
	assert.Equal(t, "2026-03-01", start)
	assert.Equal(t, "2026-03-18", end)

	start, end = defaultRange("2026-02-01", "not-a-date", now)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-03-18", end)
}

func TestPayRecordsPerAgentAndReportsUnknown(t *testing.T) {
	store := &fakePayoutStore{}
	agents := &fakeAgentFinder{agents: map[int64]*entity.Agent{
		1: {ID: 1, FirstName: "Kofi", LastName: "Boateng"},
	}}
	uc := newPayrollUseCase(store, agents)

	result := uc.Pay(context.Background(), admin(), &model.PayRequest{
		AgentIDs: []int64{1, 99},
		Amount:   250,
	})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.BulkMutationResponse)
	assert.Equal(t, 1, response.SuccessCount)
	assert.Equal(t, 1, response.FailCount)

	assert.Len(t, store.inserted, 1)
	assert.Equal(t, int64(1), store.inserted[0].EmployeeID)
	assert.Equal(t, "commission", store.inserted[0].PayoutType)
	assert.Equal(t, "momo", store.inserted[0].Method)
	assert.True(t, store.inserted[0].Amount.Equal(decimal.NewFromInt(250)))
}
