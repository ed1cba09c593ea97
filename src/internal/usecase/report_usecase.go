package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	reportTopAgentsLimit   = 10
	reportTransactionLimit = 50
)

type reportStore interface {
	Summary(ctx context.Context, w repository.ReportWindow) (*repository.ReportSummaryRow, error)
	TotalCommission(ctx context.Context, w repository.ReportWindow) (decimal.Decimal, error)
	FloatChange(ctx context.Context, w repository.ReportWindow) (decimal.Decimal, error)
	DailyTrend(ctx context.Context, w repository.ReportWindow) ([]repository.DailySalesRow, error)
	TopAgents(ctx context.Context, w repository.ReportWindow, limit int) ([]repository.ReportAgentRow, error)
	RecentTransactions(ctx context.Context, w repository.ReportWindow, limit int) ([]repository.ReportTransactionRow, error)
	Branches(ctx context.Context) ([]repository.ReportBranchRow, error)
}

type ReportUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Reports  reportStore
}

func NewReportUseCase(
	logger log.Log,
	validate *validator.Validate,
	reportRepository *repository.ReportRepository,
) *ReportUseCase {
	return &ReportUseCase{
		Log:      logger,
		Validate: validate,
		Reports:  reportRepository,
	}
}

// reportRange resolves a named window to concrete dates. Explicit
// well-formed dates win; otherwise the window anchors on now.
func reportRange(typ, start, end string, now time.Time) (string, string) {
	start = cleanDate(start)
	end = cleanDate(end)
	if end == "" {
		end = now.Format(dateLayout)
	}

	if start == "" {
		switch typ {
		case "today":
			start = end
		case "week":
			start = now.AddDate(0, 0, -6).Format(dateLayout)
		case "lastmonth":
			firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			start = firstOfMonth.AddDate(0, -1, 0).Format(dateLayout)
			end = firstOfMonth.AddDate(0, 0, -1).Format(dateLayout)
		case "year":
			start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
		default: // month
			start = now.Format("2006-01") + "-01"
		}
	}

	return start, end
}

func reportAgentName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	return name
}

func (c *ReportUseCase) Report(ctx context.Context, request *model.ReportRequest) utils.Result {
	var result utils.Result

	start, end := reportRange(request.Type, request.Start, request.End, time.Now())
	window := repository.ReportWindow{
		Start:    start,
		End:      end,
		BranchID: request.BranchID,
	}

	summary, err := c.Reports.Summary(ctx, window)
	if err != nil {
		return c.reportError("Report-Summary", err)
	}
	commission, err := c.Reports.TotalCommission(ctx, window)
	if err != nil {
		return c.reportError("Report-Commission", err)
	}
	floatChange, err := c.Reports.FloatChange(ctx, window)
	if err != nil {
		return c.reportError("Report-FloatChange", err)
	}
	trend, err := c.Reports.DailyTrend(ctx, window)
	if err != nil {
		return c.reportError("Report-DailyTrend", err)
	}
	topAgents, err := c.Reports.TopAgents(ctx, window, reportTopAgentsLimit)
	if err != nil {
		return c.reportError("Report-TopAgents", err)
	}
	rows, err := c.Reports.RecentTransactions(ctx, window, reportTransactionLimit)
	if err != nil {
		return c.reportError("Report-Transactions", err)
	}
	branches, err := c.Reports.Branches(ctx)
	if err != nil {
		return c.reportError("Report-Branches", err)
	}

	response := &model.ReportResponse{
		Start: start,
		End:   end,
		Summary: model.ReportSummary{
			TotalVolume:       summary.TotalVolume.Round(2).InexactFloat64(),
			TotalTransactions: summary.TotalTransactions,
			TotalCommission:   commission.Round(2).InexactFloat64(),
			FloatChange:       floatChange.Round(2).InexactFloat64(),
		},
		DailyTrend:   make([]model.DailySalesPoint, 0, len(trend)),
		TopAgents:    make([]model.ReportAgent, 0, len(topAgents)),
		Transactions: make([]model.ReportTransaction, 0, len(rows)),
		Branches:     make([]model.ReportBranch, 0, len(branches)),
	}

	for _, point := range trend {
		response.DailyTrend = append(response.DailyTrend, model.DailySalesPoint{
			Day:   point.Day,
			Total: point.Total.Round(2).InexactFloat64(),
		})
	}
	for _, agent := range topAgents {
		response.TopAgents = append(response.TopAgents, model.ReportAgent{
			Name:  reportAgentName(agent.Name, "Unknown Agent"),
			Sales: agent.Sales.Round(2).InexactFloat64(),
		})
	}
	for _, row := range rows {
		response.Transactions = append(response.Transactions, model.ReportTransaction{
			Date:      row.Date,
			AgentName: reportAgentName(row.AgentName, "Agent"),
			Type:      row.Type,
			Amount:    row.Amount.Round(2).InexactFloat64(),
			Service:   row.Service,
		})
	}
	for _, branch := range branches {
		response.Branches = append(response.Branches, model.ReportBranch{
			ID:   branch.ID,
			Name: branch.Name,
		})
	}

	result.Data = response
	return result
}

func (c *ReportUseCase) reportError(scope string, err error) utils.Result {
	var result utils.Result
	if errors.Is(err, context.DeadlineExceeded) {
		errObj := httpError.NewRequestTimeout()
		errObj.Message = "report query timed out, try a narrower date range"
		result.Error = errObj
		return result
	}
	c.Log.Error(scope, err.Error(), "report", "")
	result.Error = httpError.NewInternalServerError()
	return result
}
