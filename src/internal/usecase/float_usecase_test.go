package usecase

import (
	"context"
	"testing"

	"momovender/src/internal/entity"
	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeFloatStore struct {
	balances   map[int64]decimal.Decimal
	missing    map[int64]bool
	adjusts    []repository.AdjustParams
	request    *entity.FloatRequest
	processErr error
	processed  []string
}

func newFakeFloatStore() *fakeFloatStore {
	return &fakeFloatStore{
		balances: map[int64]decimal.Decimal{},
		missing:  map[int64]bool{},
	}
}

func (f *fakeFloatStore) Adjust(ctx context.Context, p repository.AdjustParams) (*entity.FloatLog, error) {
	if f.missing[p.AgentID] {
		return nil, repository.ErrAgentNotFound
	}

	before := f.balances[p.AgentID]
	after := before
	switch p.Action {
	case entity.FloatActionTopup:
		after = before.Add(p.Amount)
	case entity.FloatActionDeduct:
		after = before.Sub(p.Amount)
		if after.IsNegative() {
			return nil, repository.ErrInsufficientFunds
		}
	}
	f.balances[p.AgentID] = after
	f.adjusts = append(f.adjusts, p)

	return &entity.FloatLog{
		AgentID:       p.AgentID,
		Action:        p.Action,
		Amount:        p.Amount,
		BalanceBefore: before,
		BalanceAfter:  after,
	}, nil
}

func (f *fakeFloatStore) ListAgents(ctx context.Context, p repository.FloatListParams) ([]entity.FloatAgentRow, error) {
	return nil, nil
}

func (f *fakeFloatStore) Stats(ctx context.Context) (*entity.FloatStats, error) {
	return &entity.FloatStats{}, nil
}

func (f *fakeFloatStore) History(ctx context.Context, p repository.FloatHistoryParams) ([]entity.FloatLogRow, error) {
	return nil, nil
}

func (f *fakeFloatStore) CreateRequest(ctx context.Context, agentID int64, amount decimal.Decimal, reason string) error {
	return nil
}

func (f *fakeFloatStore) PendingRequests(ctx context.Context, branchID *int64) ([]entity.FloatRequestRow, error) {
	return nil, nil
}

func (f *fakeFloatStore) FindRequest(ctx context.Context, id int64) (*entity.FloatRequest, error) {
	if f.request == nil {
		return nil, repository.ErrAlreadyProcessed
	}
	return f.request, nil
}

func (f *fakeFloatStore) ProcessRequest(ctx context.Context, id, managerID int64, status string) error {
	if f.processErr != nil {
		return f.processErr
	}
	f.processed = append(f.processed, status)
	return nil
}

func newFloatUseCase(store *fakeFloatStore) *FloatUseCase {
	return &FloatUseCase{
		Log:      log.Log{},
		Validate: validator.New(),
		Floats:   store,
	}
}

func admin() model.Principal {
	return model.Principal{ID: 1, FullName: "Head Office", Role: "admin"}
}

func TestTopUpCreditsEveryAgent(t *testing.T) {
	store := newFakeFloatStore()
	uc := newFloatUseCase(store)

	result := uc.TopUp(context.Background(), admin(), &model.TopUpRequest{
		AgentIDs: []int64{10, 11},
		Amount:   500,
	})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.BulkMutationResponse)
	assert.Equal(t, 2, response.SuccessCount)
	assert.Equal(t, 0, response.FailCount)
	assert.True(t, store.balances[10].Equal(decimal.NewFromInt(500)))
	assert.True(t, store.balances[11].Equal(decimal.NewFromInt(500)))
}

func TestDeductInsufficientFailsThatAgentOnly(t *testing.T) {
	store := newFakeFloatStore()
	store.balances[10] = decimal.NewFromInt(1000)
	store.balances[11] = decimal.NewFromInt(100)
	uc := newFloatUseCase(store)

	result := uc.Deduct(context.Background(), admin(), &model.DeductRequest{
		AgentIDs: []int64{10, 11},
		Amount:   300,
		Note:     "till correction",
	})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.BulkMutationResponse)
	assert.Equal(t, 1, response.SuccessCount)
	assert.Equal(t, 1, response.FailCount)

	// agent 10 was debited, agent 11 untouched
	assert.True(t, store.balances[10].Equal(decimal.NewFromInt(700)))
	assert.True(t, store.balances[11].Equal(decimal.NewFromInt(100)))

	assert.True(t, response.Results[0].Success)
	assert.False(t, response.Results[1].Success)
	assert.Equal(t, "insufficient float balance", response.Results[1].Message)
}

func TestDeductRequiresNote(t *testing.T) {
	uc := newFloatUseCase(newFakeFloatStore())

	result := uc.Deduct(context.Background(), admin(), &model.DeductRequest{
		AgentIDs: []int64{10},
		Amount:   50,
	})

	assert.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 400, commonErr.Code)
}

func TestTopUpRejectsNonPositiveAmount(t *testing.T) {
	uc := newFloatUseCase(newFakeFloatStore())

	result := uc.TopUp(context.Background(), admin(), &model.TopUpRequest{
		AgentIDs: []int64{10},
		Amount:   0,
	})

	assert.Error(t, result.Error)
}

func TestTopUpUnknownAgentReported(t *testing.T) {
	store := newFakeFloatStore()
	store.missing[99] = true
	uc := newFloatUseCase(store)

	result := uc.TopUp(context.Background(), admin(), &model.TopUpRequest{
		AgentIDs: []int64{99},
		Amount:   200,
	})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.BulkMutationResponse)
	assert.Equal(t, 1, response.FailCount)
	assert.Equal(t, "agent not found", response.Results[0].Message)
}

func TestProcessRequestApprovalCreditsAgent(t *testing.T) {
	store := newFakeFloatStore()
	store.request = &entity.FloatRequest{
		ID:      7,
		AgentID: 42,
		Amount:  decimal.NewFromInt(800),
		Status:  entity.FloatRequestPending,
	}
	uc := newFloatUseCase(store)

	result := uc.ProcessRequest(context.Background(), admin(), &model.ProcessFloatRequestRequest{
		RequestID: 7,
		Status:    entity.FloatRequestApproved,
	})

	assert.NoError(t, result.Error)
	assert.True(t, store.balances[42].Equal(decimal.NewFromInt(800)))
	assert.Len(t, store.adjusts, 1)
	assert.Equal(t, entity.FloatActionTopup, store.adjusts[0].Action)
}

func TestProcessRequestRejectionLeavesBalance(t *testing.T) {
	store := newFakeFloatStore()
	store.request = &entity.FloatRequest{
		ID:      7,
		AgentID: 42,
		Amount:  decimal.NewFromInt(800),
		Status:  entity.FloatRequestPending,
	}
	uc := newFloatUseCase(store)

	result := uc.ProcessRequest(context.Background(), admin(), &model.ProcessFloatRequestRequest{
		RequestID: 7,
		Status:    entity.FloatRequestRejected,
	})

	assert.NoError(t, result.Error)
	assert.Empty(t, store.adjusts)
	assert.True(t, store.balances[42].IsZero())
}

func TestProcessRequestAlreadySettledConflicts(t *testing.T) {
	store := newFakeFloatStore()
	store.request = &entity.FloatRequest{ID: 7, AgentID: 42, Amount: decimal.NewFromInt(800)}
	store.processErr = repository.ErrAlreadyProcessed
	uc := newFloatUseCase(store)

	result := uc.ProcessRequest(context.Background(), admin(), &model.ProcessFloatRequestRequest{
		RequestID: 7,
		Status:    entity.FloatRequestApproved,
	})

	assert.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 409, commonErr.Code)
	assert.Empty(t, store.adjusts)
}
