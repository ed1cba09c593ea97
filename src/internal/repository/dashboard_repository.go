package repository

import (
	"context"
	"fmt"

	"momovender/src/internal/entity"
	"momovender/src/pkg/databases/mysql"

	"github.com/shopspring/decimal"
)

type DashboardRepository struct {
	DB mysql.DBInterface
}

func NewDashboardRepository(db mysql.DBInterface) *DashboardRepository {
	return &DashboardRepository{
		DB: db,
	}
}

// branchScope returns the join filter fragment and its params. Admin-tier
// callers pass nil and see every branch.
func branchScope(branchID *int64) (string, []interface{}) {
	if branchID == nil {
		return "", nil
	}
	return " AND u.branch_id = ?", []interface{}{*branchID}
}

func (r *DashboardRepository) TodaySales(ctx context.Context, date string, branchID *int64) (decimal.Decimal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return decimal.Zero, err
	}

	scope, scopeParams := branchScope(branchID)
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(amount), 0) AS total FROM (
			SELECT mt.amount FROM momo_transactions mt JOIN users u ON mt.agent_id = u.id WHERE DATE(mt.created_at) = ?%[1]s
			UNION ALL SELECT bt.amount FROM bank_transactions bt JOIN users u ON bt.agent_id = u.id WHERE DATE(bt.created_at) = ?%[1]s
			UNION ALL SELECT al.amount FROM airtime_logs al JOIN users u ON al.employee_id = u.id WHERE DATE(al.created_at) = ?%[1]s
			UNION ALL SELECT ss.amount FROM sim_sales ss JOIN users u ON ss.employee_id = u.id WHERE DATE(ss.created_at) = ?%[1]s
			UNION ALL SELECT sc.amount FROM susu_contributions sc JOIN users u ON sc.agent_id = u.id WHERE DATE(sc.created_at) = ?%[1]s
		) t
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, date)
		params = append(params, scopeParams...)
	}

	var total decimal.Decimal
	err = db.GetContext(ctx, &total, query, params...)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *DashboardRepository) TotalFloat(ctx context.Context, branchID *int64) (decimal.Decimal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return decimal.Zero, err
	}

	query := `
		SELECT COALESCE(SUM(a.balance), 0)
		FROM accounts a
		JOIN users u ON a.user_id = u.id
		WHERE 1=1
	`
	scope, params := branchScope(branchID)
	query += scope

	var total decimal.Decimal
	err = db.GetContext(ctx, &total, query, params...)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *DashboardRepository) ActiveAgents(ctx context.Context, date string, branchID *int64) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	scope, scopeParams := branchScope(branchID)
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT agent_id) FROM (
			SELECT mt.agent_id FROM momo_transactions mt JOIN users u ON mt.agent_id = u.id WHERE DATE(mt.created_at) = ?%[1]s
			UNION SELECT bt.agent_id FROM bank_transactions bt JOIN users u ON bt.agent_id = u.id WHERE DATE(bt.created_at) = ?%[1]s
			UNION SELECT al.employee_id AS agent_id FROM airtime_logs al JOIN users u ON al.employee_id = u.id WHERE DATE(al.created_at) = ?%[1]s
			UNION SELECT ss.employee_id AS agent_id FROM sim_sales ss JOIN users u ON ss.employee_id = u.id WHERE DATE(ss.created_at) = ?%[1]s
			UNION SELECT sc.agent_id FROM susu_contributions sc JOIN users u ON sc.agent_id = u.id WHERE DATE(sc.created_at) = ?%[1]s
		) t
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, date)
		params = append(params, scopeParams...)
	}

	var count int64
	err = db.GetContext(ctx, &count, query, params...)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// RecentActivity unions the five service tables newest first. Ordering is
// stabilized with a secondary sort on transaction_id so ties within the
// same second are deterministic.
func (r *DashboardRepository) RecentActivity(ctx context.Context, date string, branchID *int64, limit int) ([]entity.ActivityRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	scope, scopeParams := branchScope(branchID)
	query := fmt.Sprintf(`
		SELECT service, transaction_id, customer_name, amount, type, network, created_at FROM (
			SELECT
				'MoMo' AS service,
				mt.transaction_id,
				COALESCE(mt.customer_name, 'Customer') AS customer_name,
				mt.amount,
				mt.type,
				COALESCE(mt.network, '') AS network,
				mt.created_at
			FROM momo_transactions mt JOIN users u ON mt.agent_id = u.id WHERE DATE(mt.created_at) = ?%[1]s
			UNION ALL
			SELECT
				'Bank' AS service,
				bt.transaction_id,
				COALESCE(bt.customer_name, 'Customer') AS customer_name,
				bt.amount,
				bt.type,
				COALESCE(bt.bank_name, '') AS network,
				bt.created_at
			FROM bank_transactions bt JOIN users u ON bt.agent_id = u.id WHERE DATE(bt.created_at) = ?%[1]s
			UNION ALL
			SELECT
				'Airtime' AS service,
				CAST(al.id AS CHAR) AS transaction_id,
				COALESCE(al.customer_name, 'Customer') AS customer_name,
				al.amount,
				'topup' AS type,
				COALESCE(al.network, '') AS network,
				al.created_at
			FROM airtime_logs al JOIN users u ON al.employee_id = u.id WHERE DATE(al.created_at) = ?%[1]s
			UNION ALL
			SELECT
				'SIM' AS service,
				ss.transaction_id,
				COALESCE(ss.customer_name, 'Customer') AS customer_name,
				ss.amount,
				'registration' AS type,
				COALESCE(ss.network, '') AS network,
				ss.created_at
			FROM sim_sales ss JOIN users u ON ss.employee_id = u.id WHERE DATE(ss.created_at) = ?%[1]s
			UNION ALL
			SELECT
				'Susu' AS service,
				sc.transaction_id,
				COALESCE(sc.customer_name, 'Customer') AS customer_name,
				sc.amount,
				'contribution' AS type,
				COALESCE(sc.susu_group, '') AS network,
				sc.created_at
			FROM susu_contributions sc JOIN users u ON sc.agent_id = u.id WHERE DATE(sc.created_at) = ?%[1]s
		) t
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT ?
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, date)
		params = append(params, scopeParams...)
	}
	params = append(params, limit)

	var rows []entity.ActivityRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type DailySalesRow struct {
	Day   string          `db:"day"`
	Total decimal.Decimal `db:"total"`
}

func (r *DashboardRepository) DailySales(ctx context.Context, days int, branchID *int64) ([]DailySalesRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	scope, scopeParams := branchScope(branchID)
	query := fmt.Sprintf(`
		SELECT DATE_FORMAT(created_at, '%%Y-%%m-%%d') AS day, COALESCE(SUM(amount), 0) AS total
		FROM (
			SELECT mt.created_at, mt.amount FROM momo_transactions mt JOIN users u ON mt.agent_id = u.id WHERE 1=1%[1]s
			UNION ALL SELECT bt.created_at, bt.amount FROM bank_transactions bt JOIN users u ON bt.agent_id = u.id WHERE 1=1%[1]s
			UNION ALL SELECT al.created_at, al.amount FROM airtime_logs al JOIN users u ON al.employee_id = u.id WHERE 1=1%[1]s
			UNION ALL SELECT ss.created_at, ss.amount FROM sim_sales ss JOIN users u ON ss.employee_id = u.id WHERE 1=1%[1]s
			UNION ALL SELECT sc.created_at, sc.amount FROM susu_contributions sc JOIN users u ON sc.agent_id = u.id WHERE 1=1%[1]s
		) t
		WHERE DATE(created_at) >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		GROUP BY day
		ORDER BY day ASC
	`, scope)

	params := []interface{}{}
	for i := 0; i < 5; i++ {
		params = append(params, scopeParams...)
	}
	params = append(params, days-1)

	var rows []DailySalesRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type RankingRow struct {
	ID                int64           `db:"id"`
	FirstName         string          `db:"first_name"`
	LastName          string          `db:"last_name"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	TotalTransactions int64           `db:"total_transactions"`
}

func (r *DashboardRepository) AgentRanking(ctx context.Context, start string, limit int) ([]RankingRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			u.id,
			u.first_name,
			u.last_name,
			COALESCE(SUM(tx.amount), 0) AS total_amount,
			COALESCE(COUNT(tx.amount), 0) AS total_transactions
		FROM users u
		LEFT JOIN (
			SELECT agent_id, amount FROM momo_transactions WHERE DATE(created_at) >= ?
			UNION ALL
			SELECT agent_id, amount FROM bank_transactions WHERE DATE(created_at) >= ?
			UNION ALL
			SELECT employee_id, amount FROM airtime_logs WHERE DATE(created_at) >= ?
			UNION ALL
			SELECT employee_id, amount FROM sim_sales WHERE DATE(created_at) >= ?
			UNION ALL
			SELECT agent_id, amount FROM susu_contributions WHERE DATE(created_at) >= ?
		) tx ON tx.agent_id = u.id
		WHERE u.role IN ('employee', 'manager')
		GROUP BY u.id
		ORDER BY total_amount DESC
		LIMIT ?
	`

	var rows []RankingRow
	err = db.SelectContext(ctx, &rows, query, start, start, start, start, start, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DashboardRepository) PendingRequestCount(ctx context.Context, branchID *int64) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		SELECT COUNT(*)
		FROM float_requests fr
		JOIN users u ON fr.agent_id = u.id
		WHERE fr.status = 'pending'
	`
	scope, params := branchScope(branchID)
	query += scope

	var count int64
	err = db.GetContext(ctx, &count, query, params...)
	if err != nil {
		return 0, err
	}
	return count, nil
}

type EmployeeTodayRow struct {
	Total        decimal.Decimal `db:"total"`
	MomoCount    int64           `db:"momo_count"`
	BankCount    int64           `db:"bank_count"`
	AirtimeCount int64           `db:"airtime_count"`
	SimCount     int64           `db:"sim_count"`
	SusuCount    int64           `db:"susu_count"`
}

func (r *DashboardRepository) EmployeeToday(ctx context.Context, agentID int64, date string) (*EmployeeTodayRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM (
				SELECT amount FROM momo_transactions WHERE agent_id = ? AND DATE(created_at) = ?
				UNION ALL SELECT amount FROM bank_transactions WHERE agent_id = ? AND DATE(created_at) = ?
				UNION ALL SELECT amount FROM airtime_logs WHERE employee_id = ? AND DATE(created_at) = ?
				UNION ALL SELECT amount FROM sim_sales WHERE employee_id = ? AND DATE(created_at) = ?
				UNION ALL SELECT amount FROM susu_contributions WHERE agent_id = ? AND DATE(created_at) = ?
			) combined) AS total,
			(SELECT COUNT(*) FROM momo_transactions WHERE agent_id = ? AND DATE(created_at) = ?) AS momo_count,
			(SELECT COUNT(*) FROM bank_transactions WHERE agent_id = ? AND DATE(created_at) = ?) AS bank_count,
			(SELECT COUNT(*) FROM airtime_logs WHERE employee_id = ? AND DATE(created_at) = ?) AS airtime_count,
			(SELECT COUNT(*) FROM sim_sales WHERE employee_id = ? AND DATE(created_at) = ?) AS sim_count,
			(SELECT COUNT(*) FROM susu_contributions WHERE agent_id = ? AND DATE(created_at) = ?) AS susu_count
	`

	params := []interface{}{}
	for i := 0; i < 10; i++ {
		params = append(params, agentID, date)
	}

	var row EmployeeTodayRow
	err = db.GetContext(ctx, &row, query, params...)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// AgentActivity is the cross-service latest feed for one agent, no date
// cutoff.
func (r *DashboardRepository) AgentActivity(ctx context.Context, agentID int64, limit int) ([]entity.ActivityRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT service, transaction_id, customer_name, amount, type, network, created_at FROM (
			SELECT 'MoMo' AS service, transaction_id, COALESCE(customer_name, 'Customer') AS customer_name, amount, type, COALESCE(network, '') AS network, created_at
			FROM momo_transactions WHERE agent_id = ?
			UNION ALL
			SELECT 'Bank', transaction_id, COALESCE(customer_name, 'Customer'), amount, type, COALESCE(bank_name, ''), created_at
			FROM bank_transactions WHERE agent_id = ?
			UNION ALL
			SELECT 'Airtime', CAST(id AS CHAR), COALESCE(customer_name, 'Customer'), amount, 'topup', COALESCE(network, ''), created_at
			FROM airtime_logs WHERE employee_id = ?
			UNION ALL
			SELECT 'SIM', transaction_id, COALESCE(customer_name, 'Customer'), amount, 'registration', COALESCE(network, ''), created_at
			FROM sim_sales WHERE employee_id = ?
			UNION ALL
			SELECT 'Susu', transaction_id, COALESCE(customer_name, 'Customer'), amount, 'contribution', COALESCE(susu_group, ''), created_at
			FROM susu_contributions WHERE agent_id = ?
		) t
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT ?
	`

	var rows []entity.ActivityRow
	err = db.SelectContext(ctx, &rows, query, agentID, agentID, agentID, agentID, agentID, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
