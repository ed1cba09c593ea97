package repository

import (
	"context"
	"fmt"
	"time"

	"momovender/src/pkg/databases/mysql"

	"github.com/shopspring/decimal"
)

type ReportRepository struct {
	DB mysql.DBInterface
}

func NewReportRepository(db mysql.DBInterface) *ReportRepository {
	return &ReportRepository{
		DB: db,
	}
}

// ReportWindow is the date range plus an optional branch filter applied
// to every report query.
type ReportWindow struct {
	Start    string
	End      string
	BranchID *int64
}

type ReportSummaryRow struct {
	TotalVolume       decimal.Decimal `db:"total_volume"`
	TotalTransactions int64           `db:"total_transactions"`
}

func (r *ReportRepository) Summary(ctx context.Context, w ReportWindow) (*ReportSummaryRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	scope, scopeParams := branchScope(w.BranchID)
	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(t.amount), 0) AS total_volume,
			COUNT(*) AS total_transactions
		FROM (
			SELECT amount, agent_id AS user_id FROM momo_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, agent_id FROM bank_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, employee_id FROM airtime_logs WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, employee_id FROM sim_sales WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, agent_id FROM susu_contributions WHERE DATE(created_at) BETWEEN ? AND ?
		) t
		JOIN users u ON t.user_id = u.id
		WHERE u.role IN ('employee', 'manager')%s
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, w.Start, w.End)
	}
	params = append(params, scopeParams...)

	var row ReportSummaryRow
	err = db.GetContext(ctx, &row, query, params...)
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// TotalCommission applies each branch and service rate per row before
// summing, the same order the payroll reconciliation uses.
func (r *ReportRepository) TotalCommission(ctx context.Context, w ReportWindow) (decimal.Decimal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return decimal.Zero, err
	}

	scope, scopeParams := branchScope(w.BranchID)
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(t.amount * COALESCE(cr.rate_percent, 1.50) / 100), 0) AS total
		FROM (
			SELECT amount, agent_id AS user_id, 'momo' AS service FROM momo_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, agent_id, 'bank' FROM bank_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, employee_id, 'airtime' FROM airtime_logs WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, employee_id, 'sim' FROM sim_sales WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT amount, agent_id, 'susu' FROM susu_contributions WHERE DATE(created_at) BETWEEN ? AND ?
		) t
		JOIN users u ON t.user_id = u.id
		LEFT JOIN commission_rules cr ON cr.branch_id = u.branch_id AND cr.service_type = t.service
		WHERE u.role IN ('employee', 'manager')%s
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, w.Start, w.End)
	}
	params = append(params, scopeParams...)

	var total decimal.Decimal
	err = db.GetContext(ctx, &total, query, params...)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// FloatChange nets top-ups against deductions over the window.
func (r *ReportRepository) FloatChange(ctx context.Context, w ReportWindow) (decimal.Decimal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return decimal.Zero, err
	}

	query := `
		SELECT COALESCE(SUM(CASE WHEN action = 'topup' THEN amount ELSE -amount END), 0) AS total
		FROM float_logs
		WHERE DATE(created_at) BETWEEN ? AND ?
	`
	params := []interface{}{w.Start, w.End}
	if w.BranchID != nil {
		query += " AND branch_id = ?"
		params = append(params, *w.BranchID)
	}

	var total decimal.Decimal
	err = db.GetContext(ctx, &total, query, params...)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *ReportRepository) DailyTrend(ctx context.Context, w ReportWindow) ([]DailySalesRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	scope, scopeParams := branchScope(w.BranchID)
	query := fmt.Sprintf(`
		SELECT DATE_FORMAT(t.created_at, '%%Y-%%m-%%d') AS day, COALESCE(SUM(t.amount), 0) AS total
		FROM (
			SELECT created_at, amount, agent_id AS user_id FROM momo_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT created_at, amount, agent_id FROM bank_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT created_at, amount, employee_id FROM airtime_logs WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT created_at, amount, employee_id FROM sim_sales WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT created_at, amount, agent_id FROM susu_contributions WHERE DATE(created_at) BETWEEN ? AND ?
		) t
		JOIN users u ON t.user_id = u.id
		WHERE 1=1%s
		GROUP BY day
		ORDER BY day ASC
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, w.Start, w.End)
	}
	params = append(params, scopeParams...)

	var rows []DailySalesRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

type ReportAgentRow struct {
	Name  string          `db:"name"`
	Sales decimal.Decimal `db:"sales"`
}

func (r *ReportRepository) TopAgents(ctx context.Context, w ReportWindow, limit int) ([]ReportAgentRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	scope, scopeParams := branchScope(w.BranchID)
	query := fmt.Sprintf(`
		SELECT
			CONCAT(u.first_name, ' ', COALESCE(u.last_name, '')) AS name,
			COALESCE(SUM(t.amount), 0) AS sales
		FROM users u
		LEFT JOIN (
			SELECT agent_id AS user_id, amount FROM momo_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT agent_id, amount FROM bank_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT employee_id, amount FROM airtime_logs WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT employee_id, amount FROM sim_sales WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL SELECT agent_id, amount FROM susu_contributions WHERE DATE(created_at) BETWEEN ? AND ?
		) t ON t.user_id = u.id
		WHERE u.role IN ('employee', 'manager')%s
		GROUP BY u.id
		ORDER BY sales DESC
		LIMIT ?
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, w.Start, w.End)
	}
	params = append(params, scopeParams...)
	params = append(params, limit)

	var rows []ReportAgentRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

type ReportTransactionRow struct {
	Date      time.Time       `db:"date"`
	AgentName string          `db:"agent_name"`
	Amount    decimal.Decimal `db:"amount"`
	Type      string          `db:"type"`
	Service   string          `db:"service"`
}

func (r *ReportRepository) RecentTransactions(ctx context.Context, w ReportWindow, limit int) ([]ReportTransactionRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	scope, scopeParams := branchScope(w.BranchID)
	query := fmt.Sprintf(`
		SELECT date, agent_name, amount, type, service FROM (
			SELECT t.created_at AS date, CONCAT(u.first_name, ' ', COALESCE(u.last_name, '')) AS agent_name,
			       t.amount, COALESCE(t.type, 'transaction') AS type, 'MoMo' AS service, u.branch_id
			FROM momo_transactions t JOIN users u ON t.agent_id = u.id WHERE DATE(t.created_at) BETWEEN ? AND ?%[1]s
			UNION ALL
			SELECT t.created_at, CONCAT(u.first_name, ' ', COALESCE(u.last_name, '')), t.amount, t.type, 'Bank', u.branch_id
			FROM bank_transactions t JOIN users u ON t.agent_id = u.id WHERE DATE(t.created_at) BETWEEN ? AND ?%[1]s
			UNION ALL
			SELECT t.created_at, CONCAT(u.first_name, ' ', COALESCE(u.last_name, '')), t.amount, 'topup', 'Airtime', u.branch_id
			FROM airtime_logs t JOIN users u ON t.employee_id = u.id WHERE DATE(t.created_at) BETWEEN ? AND ?%[1]s
			UNION ALL
			SELECT t.created_at, CONCAT(u.first_name, ' ', COALESCE(u.last_name, '')), t.amount, 'sale', 'SIM', u.branch_id
			FROM sim_sales t JOIN users u ON t.employee_id = u.id WHERE DATE(t.created_at) BETWEEN ? AND ?%[1]s
			UNION ALL
			SELECT t.created_at, CONCAT(u.first_name, ' ', COALESCE(u.last_name, '')), t.amount, 'contribution', 'Susu', u.branch_id
			FROM susu_contributions t JOIN users u ON t.agent_id = u.id WHERE DATE(t.created_at) BETWEEN ? AND ?%[1]s
		) merged
		ORDER BY date DESC
		LIMIT ?
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, w.Start, w.End)
		params = append(params, scopeParams...)
	}
	params = append(params, limit)

	var rows []ReportTransactionRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

type ReportBranchRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r *ReportRepository) Branches(ctx context.Context) ([]ReportBranchRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var rows []ReportBranchRow
	err = db.SelectContext(ctx, &rows, `SELECT id, name FROM branches ORDER BY name`)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
