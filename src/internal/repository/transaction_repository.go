package repository

import (
	"context"

	"momovender/src/internal/entity"
	"momovender/src/pkg/databases/mysql"
)

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

func (r *TransactionRepository) InsertMomo(ctx context.Context, t *entity.MomoTransaction) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO momo_transactions
			(transaction_id, agent_id, agent_name, customer_name, customer_phone, amount, type, network, momo_reference, reference_note, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'success', NOW())
	`
	result, err := db.ExecContext(ctx, query,
		t.TransactionID, t.AgentID, t.AgentName, t.CustomerName, t.CustomerPhone,
		t.Amount, t.Type, t.Network, t.MomoReference, t.ReferenceNote)
	if err != nil {
		return err
	}

	t.ID, _ = result.LastInsertId()
	t.Status = "success"
	return nil
}

func (r *TransactionRepository) InsertBank(ctx context.Context, t *entity.BankTransaction) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bank_transactions
			(transaction_id, agent_id, agent_name, customer_name, customer_account, bank_name, amount, type, reference_note, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'success', NOW())
	`
	result, err := db.ExecContext(ctx, query,
		t.TransactionID, t.AgentID, t.AgentName, t.CustomerName, t.CustomerAccount,
		t.BankName, t.Amount, t.Type, t.ReferenceNote)
	if err != nil {
		return err
	}

	t.ID, _ = result.LastInsertId()
	t.Status = "success"
	return nil
}

func (r *TransactionRepository) InsertAirtime(ctx context.Context, t *entity.AirtimeLog) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO airtime_logs
			(customer_name, customer_phone, network, amount, reference_note, employee_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := db.ExecContext(ctx, query,
		t.CustomerName, t.CustomerPhone, t.Network, t.Amount, t.ReferenceNote, t.EmployeeID)
	if err != nil {
		return err
	}

	t.ID, _ = result.LastInsertId()
	return nil
}

func (r *TransactionRepository) InsertSim(ctx context.Context, t *entity.SimSale) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sim_sales
			(transaction_id, employee_id, customer_name, customer_phone, id_type, id_number, network, amount, reference_note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := db.ExecContext(ctx, query,
		t.TransactionID, t.EmployeeID, t.CustomerName, t.CustomerPhone,
		t.IDType, t.IDNumber, t.Network, t.Amount, t.ReferenceNote)
	if err != nil {
		return err
	}

	t.ID, _ = result.LastInsertId()
	return nil
}

func (r *TransactionRepository) InsertSusu(ctx context.Context, t *entity.SusuContribution) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO susu_contributions
			(transaction_id, customer_name, customer_phone, amount, susu_group, reference, agent_id, agent_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := db.ExecContext(ctx, query,
		t.TransactionID, t.CustomerName, t.CustomerPhone, t.Amount,
		t.SusuGroup, t.Reference, t.AgentID, t.AgentName)
	if err != nil {
		return err
	}

	t.ID, _ = result.LastInsertId()
	return nil
}

type ListParams struct {
	AgentID   int64
	AllAgents bool
	Start     string
	End       string
	Limit     int
}

// list builds the shared owner + date-range filter. ownerColumn differs
// between tables (agent_id vs employee_id).
func listFilter(ownerColumn string, p ListParams) (string, []interface{}) {
	where := " WHERE 1=1"
	params := []interface{}{}

	if !p.AllAgents {
		where += " AND " + ownerColumn + " = ?"
		params = append(params, p.AgentID)
	}
	if p.Start != "" && p.End != "" {
		where += " AND DATE(created_at) BETWEEN ? AND ?"
		params = append(params, p.Start, p.End)
	}

	return where, params
}

func (r *TransactionRepository) ListMomo(ctx context.Context, p ListParams) ([]entity.MomoTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where, params := listFilter("agent_id", p)
	query := `
		SELECT id, transaction_id, agent_id, agent_name, customer_name, customer_phone,
		       amount, type, network, momo_reference, reference_note, status, created_at
		FROM momo_transactions` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	params = append(params, p.Limit)

	var rows []entity.MomoTransaction
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TransactionRepository) ListBank(ctx context.Context, p ListParams) ([]entity.BankTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where, params := listFilter("agent_id", p)
	query := `
		SELECT id, transaction_id, agent_id, agent_name, customer_name, customer_account,
		       bank_name, amount, type, reference_note, status, created_at
		FROM bank_transactions` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	params = append(params, p.Limit)

	var rows []entity.BankTransaction
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TransactionRepository) ListAirtime(ctx context.Context, p ListParams) ([]entity.AirtimeLog, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where, params := listFilter("employee_id", p)
	query := `
		SELECT id, employee_id, customer_name, customer_phone, network, amount, reference_note, created_at
		FROM airtime_logs` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	params = append(params, p.Limit)

	var rows []entity.AirtimeLog
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TransactionRepository) ListSim(ctx context.Context, p ListParams) ([]entity.SimSale, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where, params := listFilter("employee_id", p)
	query := `
		SELECT id, transaction_id, employee_id, customer_name, customer_phone,
		       id_type, id_number, network, amount, reference_note, created_at
		FROM sim_sales` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	params = append(params, p.Limit)

	var rows []entity.SimSale
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TransactionRepository) ListSusu(ctx context.Context, p ListParams) ([]entity.SusuContribution, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where, params := listFilter("agent_id", p)
	query := `
		SELECT id, transaction_id, agent_id, agent_name, customer_name, customer_phone,
		       amount, susu_group, reference, created_at
		FROM susu_contributions` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	params = append(params, p.Limit)

	var rows []entity.SusuContribution
	err = db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
