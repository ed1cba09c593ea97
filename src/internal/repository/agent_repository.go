package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"momovender/src/internal/entity"
	"momovender/src/pkg/databases/mysql"

	"github.com/shopspring/decimal"
)

type AgentRepository struct {
	DB mysql.DBInterface
}

func NewAgentRepository(db mysql.DBInterface) *AgentRepository {
	return &AgentRepository{
		DB: db,
	}
}

func (r *AgentRepository) FindByID(ctx context.Context, id int64) (*entity.Agent, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var agent entity.Agent
	query := `
		SELECT id, first_name, last_name, username, email, phone, role, password, branch_id, is_active, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	err = db.GetContext(ctx, &agent, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &agent, nil
}

func (r *AgentRepository) FindByEmailOrUsername(ctx context.Context, identity string) (*entity.Agent, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var agent entity.Agent
	query := `
		SELECT id, first_name, last_name, username, email, phone, role, password, branch_id, is_active, created_at, updated_at
		FROM users
		WHERE email = ? OR username = ?
	`
	err = db.GetContext(ctx, &agent, query, identity, identity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &agent, nil
}

func (r *AgentRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE email = ? OR phone = ?`, email, phone)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AgentRepository) Create(ctx context.Context, agent *entity.Agent) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO users (first_name, last_name, username, email, phone, role, password, branch_id, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, NOW())
	`
	result, err := db.ExecContext(ctx, query,
		agent.FirstName, agent.LastName, agent.Username, agent.Email,
		agent.Phone, agent.Role, agent.Password, agent.BranchID)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

type UpdateAgentParams struct {
	ID        int64
	BranchID  *int64
	FirstName *string
	LastName  *string
	Username  *string
	Phone     *string
	Password  *string
}

// Update patches only the provided fields. When BranchID is set the update
// is additionally scoped to employees of that branch (manager self-service).
func (r *AgentRepository) Update(ctx context.Context, p UpdateAgentParams) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	fields := []string{}
	values := []interface{}{}

	if p.FirstName != nil {
		fields = append(fields, "first_name = ?")
		values = append(values, *p.FirstName)
	}
	if p.LastName != nil {
		fields = append(fields, "last_name = ?")
		values = append(values, *p.LastName)
	}
	if p.Username != nil {
		fields = append(fields, "username = ?")
		values = append(values, *p.Username)
	}
	if p.Phone != nil {
		fields = append(fields, "phone = ?")
		values = append(values, *p.Phone)
	}
	if p.Password != nil {
		fields = append(fields, "password = ?")
		values = append(values, *p.Password)
	}
	if len(fields) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(fields, ", "))
	values = append(values, p.ID)
	if p.BranchID != nil {
		query += " AND branch_id = ? AND role = 'employee'"
		values = append(values, *p.BranchID)
	}

	_, err = db.ExecContext(ctx, query, values...)
	return err
}

func (r *AgentRepository) Delete(ctx context.Context, id int64, branchID *int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `DELETE FROM users WHERE id = ? AND role IN ('employee', 'manager')`
	args := []interface{}{id}
	if branchID != nil {
		query = `DELETE FROM users WHERE id = ? AND branch_id = ? AND role = 'employee'`
		args = append(args, *branchID)
	}

	_, err = db.ExecContext(ctx, query, args...)
	return err
}

func (r *AgentRepository) SetActive(ctx context.Context, id int64, active bool) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE users SET is_active = ? WHERE id = ?`, active, id)
	return err
}

func (r *AgentRepository) InsertLoginHistory(ctx context.Context, userID int64, deviceInfo, ipAddress string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO login_history (user_id, device_info, ip_address, created_at) VALUES (?, ?, ?, NOW())`,
		userID, deviceInfo, ipAddress)
	return err
}

type ListAgentsParams struct {
	Search   string
	Sort     string
	Order    string
	BranchID *int64
	Limit    int
	Offset   int
}

func (r *AgentRepository) List(ctx context.Context, p ListAgentsParams) ([]entity.AgentListRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where := "WHERE u.role IN ('employee', 'manager')"
	params := []interface{}{}

	if p.Search != "" {
		where += " AND (u.first_name LIKE ? OR u.last_name LIKE ? OR u.phone LIKE ? OR u.username LIKE ?)"
		like := "%" + p.Search + "%"
		params = append(params, like, like, like, like)
	}
	if p.BranchID != nil {
		where += " AND u.branch_id = ?"
		params = append(params, *p.BranchID)
	}

	// sort field is whitelisted, never interpolated from raw input
	sortField := "u.first_name"
	switch p.Sort {
	case "balance":
		sortField = "COALESCE(a.balance, 0)"
	case "sales":
		sortField = "COALESCE(daily.sales, 0)"
	case "phone":
		sortField = "u.phone"
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
			COALESCE(a.balance, 0) AS balance,
			COALESCE(daily.sales, 0) AS today_sales
		FROM users u
		LEFT JOIN branches b ON u.branch_id = b.id
		LEFT JOIN accounts a ON a.user_id = u.id
		LEFT JOIN (
			SELECT agent_id, SUM(amount) AS sales
			FROM (
				SELECT agent_id, amount FROM momo_transactions WHERE DATE(created_at) = CURDATE()
				UNION ALL
				SELECT agent_id, amount FROM bank_transactions WHERE DATE(created_at) = CURDATE()
				UNION ALL
				SELECT employee_id AS agent_id, amount FROM airtime_logs WHERE DATE(created_at) = CURDATE()
				UNION ALL
				SELECT employee_id AS agent_id, amount FROM sim_sales WHERE DATE(created_at) = CURDATE()
				UNION ALL
				SELECT agent_id, amount FROM susu_contributions WHERE DATE(created_at) = CURDATE()
			) t GROUP BY agent_id
		) daily ON daily.agent_id = u.id
		%s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, sortField, orderBy)

	params = append(params, p.Limit, p.Offset)

	var rows []entity.AgentListRow
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

type AgentStatsRow struct {
	Total      int64           `db:"total"`
	Active     int64           `db:"active"`
	Inactive   int64           `db:"inactive"`
	TotalFloat decimal.Decimal `db:"total_float"`
}

func (r *AgentRepository) Stats(ctx context.Context) (*AgentStatsRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var stats AgentStatsRow
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(u.is_active = 1), 0) AS active,
			COALESCE(SUM(u.is_active = 0), 0) AS inactive,
			COALESCE(SUM(a.balance), 0) AS total_float
		FROM users u
		LEFT JOIN accounts a ON a.user_id = u.id
		WHERE u.role IN ('employee', 'manager')
	`
	err = db.GetContext(ctx, &stats, query)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// EnsureAccount provisions a zero-balance float account if the agent has
// none yet.
func (r *AgentRepository) EnsureAccount(ctx context.Context, agentID int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT IGNORE INTO accounts (account_number, user_id, balance) VALUES (?, ?, 0)`,
		fmt.Sprintf("AGENT_%d", agentID), agentID)
	return err
}

type ProfileRow struct {
	ID         int64     `db:"id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Username   string    `db:"username"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Role       string    `db:"role"`
	BranchName string    `db:"branch_name"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r *AgentRepository) FindProfile(ctx context.Context, id int64) (*ProfileRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var row ProfileRow
	query := `
		SELECT u.id, u.first_name, u.last_name, u.username, u.email, u.phone, u.role,
		       COALESCE(b.name, 'No Branch') AS branch_name, u.created_at
		FROM users u
		LEFT JOIN branches b ON u.branch_id = b.id
		WHERE u.id = ?
	`
	err = db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *AgentRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName, phone string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE users SET first_name = ?, last_name = ?, phone = ?, updated_at = NOW()
		WHERE id = ?
	`, firstName, lastName, phone, id)
	return err
}

func (r *AgentRepository) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE users SET password = ?, updated_at = NOW() WHERE id = ?
	`, hashed, id)
	return err
}
