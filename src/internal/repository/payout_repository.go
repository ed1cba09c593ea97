package repository

import (
	"context"

	"momovender/src/internal/entity"
	"momovender/src/pkg/databases/mysql"
)

type PayoutRepository struct {
	DB mysql.DBInterface
}

func NewPayoutRepository(db mysql.DBInterface) *PayoutRepository {
	return &PayoutRepository{
		DB: db,
	}
}

type EarnedParams struct {
	Start  string
	End    string
	Limit  int
	Offset int
}

// EarnedByAgent computes commission per agent over the range. The UNION
// tags each row with its service so the rule join can pick a per-service
// rate; commission is computed per row then summed, never sum-then-
// multiply, so mixed rates stay exact. Agents with zero transactions
// still appear with earned 0.
func (r *PayoutRepository) EarnedByAgent(ctx context.Context, p EarnedParams) ([]entity.AgentEarnings, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			u.id,
			u.first_name,
			u.last_name,
			u.username,
			u.role,
			u.branch_id,
			b.name AS branch_name,
			COALESCE(SUM(t.amount), 0) AS total_sales,
			COALESCE(SUM(t.amount * COALESCE(cr.rate_percent, 1.50) / 100), 0) AS earned
		FROM users u
		LEFT JOIN branches b ON u.branch_id = b.id
		LEFT JOIN (
			SELECT 'momo' AS service, agent_id AS user_id, amount, created_at FROM momo_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL
			SELECT 'bank' AS service, agent_id, amount, created_at FROM bank_transactions WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL
			SELECT 'airtime' AS service, employee_id, amount, created_at FROM airtime_logs WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL
			SELECT 'sim' AS service, employee_id, amount, created_at FROM sim_sales WHERE DATE(created_at) BETWEEN ? AND ?
			UNION ALL
			SELECT 'susu' AS service, agent_id, amount, created_at FROM susu_contributions WHERE DATE(created_at) BETWEEN ? AND ?
		) t ON t.user_id = u.id
		LEFT JOIN commission_rules cr ON cr.branch_id = u.branch_id AND cr.service_type = t.service
		WHERE u.role IN ('employee', 'manager')
		GROUP BY u.id
		ORDER BY earned DESC
		LIMIT ? OFFSET ?
	`

	params := []interface{}{
		p.Start, p.End,
		p.Start, p.End,
		p.Start, p.End,
		p.Start, p.End,
		p.Start, p.End,
		p.Limit, p.Offset,
	}

	var rows []entity.AgentEarnings
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// PaidByAgent sums settled payouts per agent over the range.
func (r *PayoutRepository) PaidByAgent(ctx context.Context, start, end string) ([]entity.PaidAggregate, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT employee_id, COALESCE(SUM(amount), 0) AS paid
		FROM payouts
		WHERE DATE(paid_at) BETWEEN ? AND ? AND status = 'success'
		GROUP BY employee_id
	`

	var rows []entity.PaidAggregate
	err = db.SelectContext(ctx, &rows, query, start, end)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *PayoutRepository) Insert(ctx context.Context, payout *entity.Payout) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO payouts
			(employee_id, amount, payout_type, note, paid_by, method, status, paid_at)
		VALUES (?, ?, ?, ?, ?, ?, 'success', NOW())
	`
	result, err := db.ExecContext(ctx, query,
		payout.EmployeeID, payout.Amount, payout.PayoutType, payout.Note,
		payout.PaidBy, payout.Method)
	if err != nil {
		return err
	}

	payout.ID, _ = result.LastInsertId()
	payout.Status = "success"
	return nil
}
