package usecase

import (
	"context"
	"strings"
	"testing"

	"momovender/src/internal/entity"
	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	"momovender/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type fakeTransactionStore struct {
	momo       []*entity.MomoTransaction
	susu       []*entity.SusuContribution
	listParams *repository.ListParams
}

func (f *fakeTransactionStore) InsertMomo(ctx context.Context, t *entity.MomoTransaction) error {
	t.ID = int64(len(f.momo) + 1)
	f.momo = append(f.momo, t)
	return nil
}

func (f *fakeTransactionStore) InsertBank(ctx context.Context, t *entity.BankTransaction) error {
	return nil
}

func (f *fakeTransactionStore) InsertAirtime(ctx context.Context, t *entity.AirtimeLog) error {
	return nil
}

func (f *fakeTransactionStore) InsertSim(ctx context.Context, t *entity.SimSale) error {
	return nil
}

func (f *fakeTransactionStore) InsertSusu(ctx context.Context, t *entity.SusuContribution) error {
	t.ID = int64(len(f.susu) + 1)
	f.susu = append(f.susu, t)
	return nil
}

func (f *fakeTransactionStore) ListMomo(ctx context.Context, p repository.ListParams) ([]entity.MomoTransaction, error) {
	f.listParams = &p
	return nil, nil
}

func (f *fakeTransactionStore) ListBank(ctx context.Context, p repository.ListParams) ([]entity.BankTransaction, error) {
	f.listParams = &p
	return nil, nil
}

func (f *fakeTransactionStore) ListAirtime(ctx context.Context, p repository.ListParams) ([]entity.AirtimeLog, error) {
	f.listParams = &p
	return nil, nil
}

func (f *fakeTransactionStore) ListSim(ctx context.Context, p repository.ListParams) ([]entity.SimSale, error) {
	f.listParams = &p
	return nil, nil
}

func (f *fakeTransactionStore) ListSusu(ctx context.Context, p repository.ListParams) ([]entity.SusuContribution, error) {
	f.listParams = &p
	return nil, nil
}

func newTransactionUseCase(store *fakeTransactionStore) *TransactionUseCase {
	return &TransactionUseCase{
		Log:          log.Log{},
		Validate:     validator.New(),
		Transactions: store,
	}
}

func employee() model.Principal {
	return model.Principal{ID: 5, FullName: "Akosua Sarpong", Role: "employee"}
}

func TestLogMomoStampsAgentAndReference(t *testing.T) {
	store := &fakeTransactionStore{}
	uc := newTransactionUseCase(store)

	result := uc.LogMomo(context.Background(), employee(), &model.LogMomoRequest{
		CustomerName:  "Yaw Ofori",
		CustomerPhone: "0244000000",
		Amount:        120.50,
		Type:          "deposit",
		Network:       "MTN",
	})

	assert.NoError(t, result.Error)
	logged := result.Data.(*entity.MomoTransaction)
	assert.Equal(t, int64(5), logged.AgentID)
	assert.Equal(t, "Akosua Sarpong", logged.AgentName)
	assert.True(t, strings.HasPrefix(logged.TransactionID, "MOMO-"))
	assert.Equal(t, 120.50, logged.Amount.InexactFloat64())
}

func TestLogMomoRejectsZeroAmount(t *testing.T) {
	uc := newTransactionUseCase(&fakeTransactionStore{})

	result := uc.LogMomo(context.Background(), employee(), &model.LogMomoRequest{
		CustomerName:  "Yaw Ofori",
		CustomerPhone: "0244000000",
		Amount:        0,
		Type:          "deposit",
	})

	assert.Error(t, result.Error)
}

func TestLogMomoRejectsNegativeAmount(t *testing.T) {
	uc := newTransactionUseCase(&fakeTransactionStore{})

	result := uc.LogMomo(context.Background(), employee(), &model.LogMomoRequest{
		CustomerName:  "Yaw Ofori",
		CustomerPhone: "0244000000",
		Amount:        -10,
		Type:          "withdraw",
	})

	assert.Error(t, result.Error)
}

func TestLogSusuRecordsGroup(t *testing.T) {
	store := &fakeTransactionStore{}
	uc := newTransactionUseCase(store)

	result := uc.LogSusu(context.Background(), employee(), &model.LogSusuRequest{
		CustomerName:  "Adwoa Asare",
		CustomerPhone: "0200000000",
		Amount:        30,
		SusuGroup:     "Market Women A",
	})

	assert.NoError(t, result.Error)
	logged := result.Data.(*entity.SusuContribution)
	assert.Equal(t, "Market Women A", logged.SusuGroup)
	assert.Regexp(t, `^SUSU\d{8}\d{4}$`, logged.TransactionID)
}

func TestListScopesNonAdminToOwnRows(t *testing.T) {
	store := &fakeTransactionStore{}
	uc := newTransactionUseCase(store)

	result := uc.List(context.Background(), employee(), &model.ListTransactionsRequest{
		Service:   entity.ServiceMomo,
		AllAgents: true,
	})

	assert.NoError(t, result.Error)
	assert.False(t, store.listParams.AllAgents)
	assert.Equal(t, int64(5), store.listParams.AgentID)
}

func TestListAdminMayReadAllAgents(t *testing.T) {
	store := &fakeTransactionStore{}
	uc := newTransactionUseCase(store)

	result := uc.List(context.Background(), admin(), &model.ListTransactionsRequest{
		Service:   entity.ServiceBank,
		AllAgents: true,
	})

	assert.NoError(t, result.Error)
	assert.True(t, store.listParams.AllAgents)
}

func TestListDropsMalformedDates(t *testing.T) {
	store := &fakeTransactionStore{}
	uc := newTransactionUseCase(store)

	result := uc.List(context.Background(), employee(), &model.ListTransactionsRequest{
		Service: entity.ServiceMomo,
		Start:   "banana",
		End:     "2026-08-30",
	})

	assert.NoError(t, result.Error)
	assert.Equal(t, "", store.listParams.Start)
	assert.Equal(t, "2026-08-30", store.listParams.End)
}

func TestListRejectsUnknownService(t *testing.T) {
	uc := newTransactionUseCase(&fakeTransactionStore{})

	result := uc.List(context.Background(), employee(), &model.ListTransactionsRequest{
		Service: "crypto",
	})

	assert.Error(t, result.Error)
}
