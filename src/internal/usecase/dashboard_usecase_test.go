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

type fakeDashboardStore struct {
	sales    decimal.Decimal
	float    decimal.Decimal
	active   int64
	activity []entity.ActivityRow
	today    *repository.EmployeeTodayRow
	daily    []repository.DailySalesRow
	calls    int
}

func (f *fakeDashboardStore) TodaySales(ctx context.Context, date string, branchID *int64) (decimal.Decimal, error) {
	f.calls++
	return f.sales, nil
}

func (f *fakeDashboardStore) TotalFloat(ctx context.Context, branchID *int64) (decimal.Decimal, error) {
	return f.float, nil
}

func (f *fakeDashboardStore) ActiveAgents(ctx context.Context, date string, branchID *int64) (int64, error) {
	return f.active, nil
}

func (f *fakeDashboardStore) RecentActivity(ctx context.Context, date string, branchID *int64, limit int) ([]entity.ActivityRow, error) {
	return f.activity, nil
}

func (f *fakeDashboardStore) DailySales(ctx context.Context, days int, branchID *int64) ([]repository.DailySalesRow, error) {
	return f.daily, nil
}

func (f *fakeDashboardStore) AgentRanking(ctx context.Context, start string, limit int) ([]repository.RankingRow, error) {
	return []repository.RankingRow{
		{ID: 1, FirstName: "Ama", LastName: "Mensah", TotalAmount: decimal.NewFromInt(900), TotalTransactions: 12},
	}, nil
}

func (f *fakeDashboardStore) PendingRequestCount(ctx context.Context, branchID *int64) (int64, error) {
	return 3, nil
}

func (f *fakeDashboardStore) EmployeeToday(ctx context.Context, agentID int64, date string) (*repository.EmployeeTodayRow, error) {
	return f.today, nil
}

func (f *fakeDashboardStore) AgentActivity(ctx context.Context, agentID int64, limit int) ([]entity.ActivityRow, error) {
	return f.activity, nil
}

func newDashboardUseCase(store *fakeDashboardStore) *DashboardUseCase {
	return &DashboardUseCase{
		Log:        log.Log{},
		Validate:   validator.New(),
		Dashboards: store,
	}
}

func TestAdminDashboardRollup(t *testing.T) {
	store := &fakeDashboardStore{
		sales:  decimal.NewFromFloat(1234.567),
		float:  decimal.NewFromInt(50000),
		active: 8,
		activity: []entity.ActivityRow{
			{Service: "MoMo", CustomerName: "Yaw", Amount: decimal.NewFromInt(100), Type: "deposit", CreatedAt: time.Now()},
		},
	}
	uc := newDashboardUseCase(store)

	result := uc.Admin(context.Background(), "day")

	assert.NoError(t, result.Error)
	response := result.Data.(*model.AdminDashboardResponse)
	assert.Equal(t, 1234.57, response.TodaySales)
	assert.Equal(t, 50000.0, response.TotalFloat)
	assert.Equal(t, int64(8), response.ActiveAgents)
	assert.Len(t, response.RecentActivity, 1)
	assert.Equal(t, "received deposit", response.RecentActivity[0].Action)
}

// A second read with unchanged data must produce the same rollup.
func TestAdminDashboardIsIdempotent(t *testing.T) {
	store := &fakeDashboardStore{sales: decimal.NewFromInt(500), float: decimal.NewFromInt(100)}
	uc := newDashboardUseCase(store)

	first := uc.Admin(context.Background(), "")
	second := uc.Admin(context.Background(), "")

	assert.Equal(t, first.Data, second.Data)
}

func TestAdminDashboardPeriodRollup(t *testing.T) {
	store := &fakeDashboardStore{
		sales: decimal.NewFromInt(200),
		daily: []repository.DailySalesRow{
			{Day: "2026-08-26", Total: decimal.NewFromInt(300)},
			{Day: "2026-08-27", Total: decimal.NewFromFloat(150.255)},
		},
	}
	uc := newDashboardUseCase(store)

	result := uc.Admin(context.Background(), "week")

	assert.NoError(t, result.Error)
	response := result.Data.(*model.AdminDashboardResponse)
	assert.Equal(t, "week", response.Period)
	assert.Equal(t, 450.26, response.PeriodSales)
	assert.Equal(t, 200.0, response.TodaySales)

	bad := uc.Admin(context.Background(), "year")
	assert.Error(t, bad.Error)
}

func TestEmployeeDashboardTotals(t *testing.T) {
	store := &fakeDashboardStore{
		today: &repository.EmployeeTodayRow{
			Total:        decimal.NewFromInt(750),
			MomoCount:    3,
			BankCount:    1,
			AirtimeCount: 2,
			SimCount:     0,
			SusuCount:    1,
		},
	}
	uc := newDashboardUseCase(store)

	result := uc.Employee(context.Background(), employee())

	assert.NoError(t, result.Error)
	response := result.Data.(*model.EmployeeDashboardResponse)
	assert.Equal(t, 750.0, response.TotalTransactions)
	assert.Equal(t, int64(7), response.TotalRecords)
}

func TestWeeklyChartFillsMissingDays(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	chart := weeklyChart([]repository.DailySalesRow{
		{Day: yesterday, Total: decimal.NewFromInt(400)},
	})

	assert.Len(t, chart.Labels, 7)
	assert.Len(t, chart.Data, 7)
	assert.Equal(t, 400.0, chart.Data[5])
	assert.Equal(t, 0.0, chart.Data[0])
}

func TestRankingStart(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-06-15", rankingStart("day", now))
	assert.Equal(t, "2026-06-08", rankingStart("week", now))
	assert.Equal(t, "2026-05-16", rankingStart("month", now))
	assert.Equal(t, "2026-06-08", rankingStart("", now))
}

func TestRankingMapsRows(t *testing.T) {
	uc := newDashboardUseCase(&fakeDashboardStore{})

	result := uc.Ranking(context.Background(), &model.AgentRankingRequest{Period: "week"})

	assert.NoError(t, result.Error)
	ranked := result.Data.([]model.RankedAgent)
	assert.Len(t, ranked, 1)
	assert.Equal(t, "Ama Mensah", ranked[0].Name)
	assert.Equal(t, 900.0, ranked[0].TotalAmount)
}

func TestRankingRejectsUnknownPeriod(t *testing.T) {
	uc := newDashboardUseCase(&fakeDashboardStore{})

	result := uc.Ranking(context.Background(), &model.AgentRankingRequest{Period: "year"})

	assert.Error(t, result.Error)
}
