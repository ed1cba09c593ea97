package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"momovender/src/internal/entity"
	"momovender/src/pkg/databases/mysql"

	"github.com/shopspring/decimal"
)

type FloatRepository struct {
	DB mysql.DBInterface
}

func NewFloatRepository(db mysql.DBInterface) *FloatRepository {
	return &FloatRepository{
		DB: db,
	}
}

type AdjustParams struct {
	AdminID   int64
	AdminName string
	AgentID   int64
	Action    string
	Amount    decimal.Decimal
	Note      string
}

type agentSnapshot struct {
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	BranchID   *int64  `db:"branch_id"`
	BranchName *string `db:"branch_name"`
}

// Adjust applies one balance mutation atomically: the account row is
// locked for the duration of the transaction, the non-negative guard is
// checked against the locked balance, and the audit row is written in the
// same transaction. Top-ups auto-provision a zero-balance account;
// deductions against a missing account fail with ErrAccountNotFound.
func (r *FloatRepository) Adjust(ctx context.Context, p AdjustParams) (*entity.FloatLog, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var agent agentSnapshot
	err = tx.GetContext(ctx, &agent, `
		SELECT u.first_name, u.last_name, u.branch_id, b.name AS branch_name
		FROM users u
		LEFT JOIN branches b ON u.branch_id = b.id
		WHERE u.id = ?
	`, p.AgentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	var balance decimal.Decimal
	err = tx.GetContext(ctx, &balance,
		`SELECT balance FROM accounts WHERE user_id = ? FOR UPDATE`, p.AgentID)
	if errors.Is(err, sql.ErrNoRows) {
		if p.Action != entity.FloatActionTopup {
			return nil, ErrAccountNotFound
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO accounts (account_number, user_id, balance) VALUES (?, ?, 0)`,
			fmt.Sprintf("AGENT_%d", p.AgentID), p.AgentID)
		if err != nil {
			return nil, err
		}
		balance = decimal.Zero
	} else if err != nil {
		return nil, err
	}

	var newBalance decimal.Decimal
	switch p.Action {
	case entity.FloatActionTopup:
		newBalance = balance.Add(p.Amount)
	case entity.FloatActionDeduct:
		if balance.LessThan(p.Amount) {
			return nil, ErrInsufficientFunds
		}
		newBalance = balance.Sub(p.Amount)
	default:
		return nil, fmt.Errorf("unknown float action %q", p.Action)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE accounts SET balance = ? WHERE user_id = ?`, newBalance, p.AgentID)
	if err != nil {
		return nil, err
	}

	agentName := agent.FirstName + " " + agent.LastName
	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO float_logs
			(admin_id, admin_name, agent_id, agent_name, branch_id, branch_name, action, amount, balance_before, balance_after, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.AdminID, p.AdminName, p.AgentID, agentName, agent.BranchID, agent.BranchName,
		p.Action, p.Amount, balance, newBalance, p.Note, now)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	logID, _ := result.LastInsertId()
	return &entity.FloatLog{
		ID:            logID,
		AdminID:       p.AdminID,
		AdminName:     p.AdminName,
		AgentID:       p.AgentID,
		AgentName:     agentName,
		BranchID:      agent.BranchID,
		BranchName:    agent.BranchName,
		Action:        p.Action,
		Amount:        p.Amount,
		BalanceBefore: balance,
		BalanceAfter:  newBalance,
		Note:          p.Note,
		CreatedAt:     now,
	}, nil
}

type FloatListParams struct {
	Search string
	Branch string
	Sort   string
	Order  string
	Limit  int
	Offset int
}

func (r *FloatRepository) ListAgents(ctx context.Context, p FloatListParams) ([]entity.FloatAgentRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where := "WHERE u.role = 'employee'"
	params := []interface{}{}

	if p.Search != "" {
		where += " AND (u.first_name LIKE ? OR u.last_name LIKE ? OR u.phone LIKE ? OR u.username LIKE ?)"
		like := "%" + p.Search + "%"
		params = append(params, like, like, like, like)
	}
	if p.Branch != "" {
		where += " AND u.branch_id = ?"
		params = append(params, p.Branch)
	}

	sortField := "u.first_name"
	switch p.Sort {
	case "balance":
		sortField = "COALESCE(a.balance, 0)"
	case "volume":
		sortField = "COALESCE(today.vol, 0)"
	}
	orderBy := "ASC"
	if p.Order == "desc" {
		orderBy = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.first_name,
			u.last_name,
			u.username,
			u.phone,
			u.role,
			u.branch_id,
			b.name AS branch_name,
			b.location AS branch_location,
			COALESCE(a.balance, 0) AS balance,
			COALESCE(today.vol, 0) AS today_volume
		FROM users u
		LEFT JOIN branches b ON u.branch_id = b.id
		LEFT JOIN accounts a ON a.user_id = u.id
		LEFT JOIN (
			SELECT agent_id, SUM(amount) AS vol
			FROM (
				SELECT agent_id, amount FROM momo_transactions WHERE DATE(created_at) = CURDATE()
				UNION ALL SELECT agent_id, amount FROM bank_transactions WHERE DATE(created_at) = CURDATE()
			) t GROUP BY agent_id
		) today ON today.agent_id = u.id
		%s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, sortField, orderBy)

	params = append(params, p.Limit, p.Offset)

	var rows []entity.FloatAgentRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *FloatRepository) Stats(ctx context.Context) (*entity.FloatStats, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var stats entity.FloatStats
	query := `
		SELECT
			COALESCE(SUM(a.balance), 0) AS total_float,
			COUNT(*) AS active,
			SUM(CASE WHEN COALESCE(a.balance, 0) < 2000 THEN 1 ELSE 0 END) AS low,
			SUM(CASE WHEN COALESCE(a.balance, 0) < 1000 THEN 1 ELSE 0 END) AS critical
		FROM users u
		LEFT JOIN accounts a ON a.user_id = u.id
		WHERE u.role = 'employee'
	`
	err = db.GetContext(ctx, &stats, query)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

type FloatHistoryParams struct {
	Search string
	From   string
	To     string
	Action string
	Limit  int
	Offset int
}

func (r *FloatRepository) History(ctx context.Context, p FloatHistoryParams) ([]entity.FloatLogRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where := "WHERE 1=1"
	params := []interface{}{}

	if p.Search != "" {
		where += " AND (fl.agent_name LIKE ? OR fl.note LIKE ?)"
		like := "%" + p.Search + "%"
		params = append(params, like, like)
	}
	if p.From != "" {
		where += " AND DATE(fl.created_at) >= ?"
		params = append(params, p.From)
	}
	if p.To != "" {
		where += " AND DATE(fl.created_at) <= ?"
		params = append(params, p.To)
	}
	if p.Action != "" {
		where += " AND fl.action = ?"
		params = append(params, p.Action)
	}

	query := fmt.Sprintf(`
		SELECT
			fl.id, fl.admin_id, fl.admin_name, fl.agent_id, fl.agent_name,
			fl.branch_id, fl.branch_name, fl.action, fl.amount,
			fl.balance_before, fl.balance_after, fl.note, fl.created_at,
			u.first_name AS admin_first,
			u.last_name AS admin_last
		FROM float_logs fl
		LEFT JOIN users u ON fl.admin_id = u.id
		%s
		ORDER BY fl.created_at DESC
		LIMIT ? OFFSET ?
	`, where)
	params = append(params, p.Limit, p.Offset)

	var rows []entity.FloatLogRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *FloatRepository) CreateRequest(ctx context.Context, agentID int64, amount decimal.Decimal, reason string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO float_requests (agent_id, amount, reason, status, requested_at)
		VALUES (?, ?, ?, 'pending', NOW())
	`, agentID, amount, reason)
	return err
}

func (r *FloatRepository) PendingRequests(ctx context.Context, branchID *int64) ([]entity.FloatRequestRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT fr.id, fr.agent_id, fr.amount, fr.reason, fr.status, fr.manager_id,
		       fr.requested_at, fr.processed_at,
		       u.first_name, u.last_name, u.username
		FROM float_requests fr
		JOIN users u ON u.id = fr.agent_id
		WHERE fr.status = 'pending'
	`
	params := []interface{}{}
	if branchID != nil {
		query += " AND u.branch_id = ?"
		params = append(params, *branchID)
	}
	query += " ORDER BY fr.requested_at DESC"

	var rows []entity.FloatRequestRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *FloatRepository) FindRequest(ctx context.Context, id int64) (*entity.FloatRequest, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var request entity.FloatRequest
	err = db.GetContext(ctx, &request, `
		SELECT id, agent_id, amount, reason, status, manager_id, requested_at, processed_at
		FROM float_requests
		WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlreadyProcessed
	}
	if err != nil {
		return nil, err
	}

	return &request, nil
}

// ProcessRequest transitions a request out of pending. The WHERE guard
// makes the pending state the only legal source, so a second concurrent
// approval affects zero rows.
func (r *FloatRepository) ProcessRequest(ctx context.Context, id, managerID int64, status string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE float_requests
		SET status = ?, manager_id = ?, processed_at = NOW()
		WHERE id = ? AND status = 'pending'
	`, status, managerID, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyProcessed
	}

	return nil
}
