package usecase

import (
	"context"
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

const (
	recentActivityLimit = 10
	rankingDefaultLimit = 10
	analyticsMaxDays    = 90
)

type dashboardStore interface {
	TodaySales(ctx context.Context, date string, branchID *int64) (decimal.Decimal, error)
	TotalFloat(ctx context.Context, branchID *int64) (decimal.Decimal, error)
	ActiveAgents(ctx context.Context, date string, branchID *int64) (int64, error)
	RecentActivity(ctx context.Context, date string, branchID *int64, limit int) ([]entity.ActivityRow, error)
	DailySales(ctx context.Context, days int, branchID *int64) ([]repository.DailySalesRow, error)
	AgentRanking(ctx context.Context, start string, limit int) ([]repository.RankingRow, error)
	PendingRequestCount(ctx context.Context, branchID *int64) (int64, error)
	EmployeeToday(ctx context.Context, agentID int64, date string) (*repository.EmployeeTodayRow, error)
	AgentActivity(ctx context.Context, agentID int64, limit int) ([]entity.ActivityRow, error)
}

type dashboardEvents interface {
	SendDashboardUpdate(event *model.DashboardUpdateEvent) error
}

type DashboardUseCase struct {
	Log        log.Log
	Validate   *validator.Validate
	Dashboards dashboardStore
	Producer   dashboardEvents
}

func NewDashboardUseCase(
	logger log.Log,
	validate *validator.Validate,
	dashboardRepository *repository.DashboardRepository,
	producer *messaging.LedgerProducer,
) *DashboardUseCase {
	return &DashboardUseCase{
		Log:        logger,
		Validate:   validate,
		Dashboards: dashboardRepository,
		Producer:   producer,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// adminRollup assembles the admin dashboard. The same rollup feeds both
// the HTTP handler and the periodic broadcast, so refresh and push can
// never disagree.
func (c *DashboardUseCase) adminRollup(ctx context.Context) (*model.AdminDashboardResponse, error) {
	date := today()

	sales, err := c.Dashboards.TodaySales(ctx, date, nil)
	if err != nil {
		return nil, err
	}
	totalFloat, err := c.Dashboards.TotalFloat(ctx, nil)
	if err != nil {
		return nil, err
	}
	active, err := c.Dashboards.ActiveAgents(ctx, date, nil)
	if err != nil {
		return nil, err
	}
	activity, err := c.Dashboards.RecentActivity(ctx, date, nil, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &model.AdminDashboardResponse{
		TodaySales:     sales.Round(2).InexactFloat64(),
		Period:         "day",
		PeriodSales:    sales.Round(2).InexactFloat64(),
		TotalFloat:     totalFloat.Round(2).InexactFloat64(),
		ActiveAgents:   active,
		RecentActivity: converter.ActivitiesToItems(activity),
	}, nil
}

// periodDays maps a rollup window name to its day span.
func periodDays(period string) (int, bool) {
	switch period {
	case "", "day":
		return 1, true
	case "week":
		return 7, true
	case "month":
		return 30, true
	}
	return 0, false
}

func (c *DashboardUseCase) Admin(ctx context.Context, period string) utils.Result {
	var result utils.Result

	days, ok := periodDays(period)
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = "period must be one of day, week, month"
		result.Error = errObj
		return result
	}

	rollup, err := c.adminRollup(ctx)
	if err != nil {
		c.Log.Error("AdminDashboard", err.Error(), "rollup", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if days > 1 {
		rows, err := c.Dashboards.DailySales(ctx, days, nil)
		if err != nil {
			c.Log.Error("AdminDashboard", err.Error(), "period", period)
			result.Error = httpError.NewInternalServerError()
			return result
		}
		periodSales := decimal.Zero
		for _, row := range rows {
			periodSales = periodSales.Add(row.Total)
		}
		rollup.Period = period
		rollup.PeriodSales = periodSales.Round(2).InexactFloat64()
	}

	result.Data = rollup
	return result
}

func (c *DashboardUseCase) Manager(ctx context.Context, principal model.Principal) utils.Result {
	var result utils.Result

	date := today()
	branchID := principal.BranchID

	sales, err := c.Dashboards.TodaySales(ctx, date, branchID)
	if err != nil {
		c.Log.Error("ManagerDashboard-TodaySales", err.Error(), "rollup", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}
	active, err := c.Dashboards.ActiveAgents(ctx, date, branchID)
	if err != nil {
		c.Log.Error("ManagerDashboard-ActiveAgents", err.Error(), "rollup", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}
	pending, err := c.Dashboards.PendingRequestCount(ctx, branchID)
	if err != nil {
		c.Log.Error("ManagerDashboard-PendingRequestCount", err.Error(), "rollup", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}
	totalFloat, err := c.Dashboards.TotalFloat(ctx, branchID)
	if err != nil {
		c.Log.Error("ManagerDashboard-TotalFloat", err.Error(), "rollup", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}
	activity, err := c.Dashboards.RecentActivity(ctx, date, branchID, recentActivityLimit)
	if err != nil {
		c.Log.Error("ManagerDashboard-RecentActivity", err.Error(), "rollup", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}
	weekly, err := c.Dashboards.DailySales(ctx, 7, branchID)
	if err != nil {
		c.Log.Error("ManagerDashboard-DailySales", err.Error(), "rollup", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	response := &model.ManagerDashboardResponse{
		DailyTransactions: sales.Round(2).InexactFloat64(),
		ActiveAgents:      active,
		PendingRequests:   pending,
		TotalFloat:        totalFloat.Round(2).InexactFloat64(),
		ManagerName:       principal.FullName,
		RecentActivity:    converter.ActivitiesToItems(activity),
	}
	response.Chart.Weekly = weeklyChart(weekly)

	result.Data = response
	return result
}

// weeklyChart densifies the 7-day series: days with no sales still get a
// labeled zero point.
func weeklyChart(rows []repository.DailySalesRow) model.WeeklyChart {
	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.Total
	}

	chart := model.WeeklyChart{
		Labels: make([]string, 0, 7),
		Data:   make([]float64, 0, 7),
	}
	for i := 6; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		chart.Labels = append(chart.Labels, day.Format("Mon"))
		chart.Data = append(chart.Data, byDay[key].Round(2).InexactFloat64())
	}
	return chart
}

func (c *DashboardUseCase) Employee(ctx context.Context, principal model.Principal) utils.Result {
	var result utils.Result

	row, err := c.Dashboards.EmployeeToday(ctx, principal.ID, today())
	if err != nil {
		c.Log.Error("EmployeeDashboard", err.Error(), "rollup", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = &model.EmployeeDashboardResponse{
		TotalTransactions:   row.Total.Round(2).InexactFloat64(),
		MomoTransactions:    row.MomoCount,
		BankTransactions:    row.BankCount,
		AirtimeTransactions: row.AirtimeCount,
		SimTransactions:     row.SimCount,
		SusuTransactions:    row.SusuCount,
		TotalRecords:        row.MomoCount + row.BankCount + row.AirtimeCount + row.SimCount + row.SusuCount,
	}
	return result
}

func (c *DashboardUseCase) EmployeeActivity(ctx context.Context, principal model.Principal) utils.Result {
	var result utils.Result

	rows, err := c.Dashboards.AgentActivity(ctx, principal.ID, recentActivityLimit)
	if err != nil {
		c.Log.Error("EmployeeActivity", err.Error(), "list", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = converter.ActivitiesToItems(rows)
	return result
}

func (c *DashboardUseCase) SalesAnalytics(ctx context.Context, request *model.SalesAnalyticsRequest) utils.Result {
	var result utils.Result

	days := request.Days
	if days < 1 {
		days = 7
	}
	if days > analyticsMaxDays {
		days = analyticsMaxDays
	}

	rows, err := c.Dashboards.DailySales(ctx, days, nil)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			errObj := httpError.NewRequestTimeout()
			errObj.Message = "analytics query timed out, try a narrower date range"
			result.Error = errObj
			return result
		}
		c.Log.Error("SalesAnalytics", err.Error(), "daily", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	points := make([]model.DailySalesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, model.DailySalesPoint{
			Day:   row.Day,
			Total: row.Total.Round(2).InexactFloat64(),
		})
	}

	result.Data = points
	return result
}

// rankingStart converts the period keyword into the window's first day.
func rankingStart(period string, now time.Time) string {
	switch period {
	case "day":
		return now.Format("2006-01-02")
	case "month":
		return now.AddDate(0, 0, -30).Format("2006-01-02")
	default: // week
		return now.AddDate(0, 0, -7).Format("2006-01-02")
	}
}

func (c *DashboardUseCase) Ranking(ctx context.Context, request *model.AgentRankingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid ranking period"
		result.Error = errObj
		return result
	}

	limit := request.Limit
	if limit < 1 {
		limit = rankingDefaultLimit
	}

	rows, err := c.Dashboards.AgentRanking(ctx, rankingStart(request.Period, time.Now()), limit)
	if err != nil {
		c.Log.Error("AgentRanking", err.Error(), request.Period, "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	ranked := make([]model.RankedAgent, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, model.RankedAgent{
			ID:                row.ID,
			Name:              row.FirstName + " " + row.LastName,
			TotalAmount:       row.TotalAmount.Round(2).InexactFloat64(),
			TotalTransactions: row.TotalTransactions,
		})
	}

	result.Data = ranked
	return result
}

// Broadcast publishes the current admin rollup. It runs on a schedule so
// connected dashboards refresh without polling.
func (c *DashboardUseCase) Broadcast(ctx context.Context) error {
	rollup, err := c.adminRollup(ctx)
	if err != nil {
		c.Log.Error("DashboardBroadcast", err.Error(), "rollup", "")
		return err
	}

	if c.Producer == nil {
		return nil
	}

	event := &model.DashboardUpdateEvent{
		EventID: uuid.NewString(),
		Rollup:  *rollup,
	}
	if err := c.Producer.SendDashboardUpdate(event); err != nil {
		c.Log.Error("DashboardBroadcast", err.Error(), "publish", "")
		return err
	}

	return nil
}
