package usecase

import (
	"context"
	"testing"
	"time"

	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeReportStore struct {
	summary      *repository.ReportSummaryRow
	commission   decimal.Decimal
	floatChange  decimal.Decimal
	trend        []repository.DailySalesRow
	topAgents    []repository.ReportAgentRow
	transactions []repository.ReportTransactionRow
	branches     []repository.ReportBranchRow

	err    error
	window repository.ReportWindow
}

func (f *fakeReportStore) Summary(ctx context.Context, w repository.ReportWindow) (*repository.ReportSummaryRow, error) {
	f.window = w
	if f.err != nil {
		return nil, f.err
	}
	if f.summary == nil {
		return &repository.ReportSummaryRow{}, nil
	}
	return f.summary, nil
}

func (f *fakeReportStore) TotalCommission(ctx context.Context, w repository.ReportWindow) (decimal.Decimal, error) {
	return f.commission, f.err
}

func (f *fakeReportStore) FloatChange(ctx context.Context, w repository.ReportWindow) (decimal.Decimal, error) {
	return f.floatChange, f.err
}

func (f *fakeReportStore) DailyTrend(ctx context.Context, w repository.ReportWindow) ([]repository.DailySalesRow, error) {
	return f.trend, f.err
}

func (f *fakeReportStore) TopAgents(ctx context.Context, w repository.ReportWindow, limit int) ([]repository.ReportAgentRow, error) {
	return f.topAgents, f.err
}

func (f *fakeReportStore) RecentTransactions(ctx context.Context, w repository.ReportWindow, limit int) ([]repository.ReportTransactionRow, error) {
	return f.transactions, f.err
}

func (f *fakeReportStore) Branches(ctx context.Context) ([]repository.ReportBranchRow, error) {
	return f.branches, f.err
}

func newReportUseCase(store reportStore) *ReportUseCase {
	return &ReportUseCase{Log: log.Log{}, Validate: validator.New(), Reports: store}
}

func TestReportRange(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		typ   string
		start string
		end   string
		wantS string
		wantE string
	}{
		{"month default", "month", "", "", "2026-08-01", "2026-08-20"},
		{"unknown type falls to month", "banana", "", "", "2026-08-01", "2026-08-20"},
		{"today", "today", "", "", "2026-08-20", "2026-08-20"},
		{"week", "week", "", "", "2026-08-14", "2026-08-20"},
		{"lastmonth", "lastmonth", "", "", "2026-07-01", "2026-07-31"},
		{"year", "year", "", "", "2026-01-01", "2026-08-20"},
		{"explicit dates win", "month", "2026-03-01", "2026-03-15", "2026-03-01", "2026-03-15"},
		{"malformed dates fall back", "today", "garbage", "2026-99-99", "2026-08-20", "2026-08-20"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := reportRange(tc.typ, tc.start, tc.end, now)
			assert.Equal(t, tc.wantS, start)
			assert.Equal(t, tc.wantE, end)
		})
	}
}

func TestReportRoundsAndFallsBackAgentNames(t *testing.T) {
	store := &fakeReportStore{
		summary: &repository.ReportSummaryRow{
			TotalVolume:       decimal.RequireFromString("1234.567"),
			TotalTransactions: 42,
		},
		commission:  decimal.RequireFromString("18.519"),
		floatChange: decimal.RequireFromString("-250.005"),
		trend: []repository.DailySalesRow{
			{Day: "2026-08-19", Total: decimal.RequireFromString("99.999")},
		},
		topAgents: []repository.ReportAgentRow{
			{Name: "Ama Mensah", Sales: decimal.RequireFromString("500.125")},
			{Name: "  ", Sales: decimal.NewFromInt(10)},
		},
		transactions: []repository.ReportTransactionRow{
			{AgentName: "", Amount: decimal.RequireFromString("20.005"), Type: "topup", Service: "Momo"},
		},
		branches: []repository.ReportBranchRow{{ID: 1, Name: "Adenta"}},
	}
	uc := newReportUseCase(store)

	result := uc.Report(context.Background(), &model.ReportRequest{Type: "month"})
	assert.NoError(t, result.Error)

	response := result.Data.(*model.ReportResponse)
	assert.Equal(t, 1234.57, response.Summary.TotalVolume)
	assert.Equal(t, int64(42), response.Summary.TotalTransactions)
	assert.Equal(t, 18.52, response.Summary.TotalCommission)
	assert.Equal(t, -250.01, response.Summary.FloatChange)
	assert.Equal(t, 100.0, response.DailyTrend[0].Total)
	assert.Equal(t, "Ama Mensah", response.TopAgents[0].Name)
	assert.Equal(t, "Unknown Agent", response.TopAgents[1].Name)
	assert.Equal(t, "Agent", response.Transactions[0].AgentName)
	assert.Equal(t, "Adenta", response.Branches[0].Name)
}

func TestReportPassesBranchFilterToStore(t *testing.T) {
	store := &fakeReportStore{}
	uc := newReportUseCase(store)
	branchID := int64(3)

	result := uc.Report(context.Background(), &model.ReportRequest{Type: "week", BranchID: &branchID})
	assert.NoError(t, result.Error)
	assert.NotNil(t, store.window.BranchID)
	assert.Equal(t, int64(3), *store.window.BranchID)
}

func TestReportTimeoutMapsTo408(t *testing.T) {
	store := &fakeReportStore{err: context.DeadlineExceeded}
	uc := newReportUseCase(store)

	result := uc.Report(context.Background(), &model.ReportRequest{Type: "month"})
	assert.Error(t, result.Error)
	assert.Equal(t, 408, result.Error.(*httpError.CommonError).Code)
}
