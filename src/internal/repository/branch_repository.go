package repository

import (
	"context"
	"database/sql"
	"errors"

	"momovender/src/internal/entity"
	"momovender/src/pkg/databases/mysql"
)

type BranchRepository struct {
	DB mysql.DBInterface
}

func NewBranchRepository(db mysql.DBInterface) *BranchRepository {
	return &BranchRepository{
		DB: db,
	}
}

func (r *BranchRepository) List(ctx context.Context) ([]entity.BranchRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			b.id,
			b.name,
			b.location,
			b.manager_id,
			COALESCE(CONCAT(m.first_name, ' ', m.last_name), 'Unassigned') AS manager_fullname,
			COALESCE(m.username, '') AS manager_name,
			(SELECT COUNT(*) FROM users u WHERE u.branch_id = b.id) AS agent_count
		FROM branches b
		LEFT JOIN users m ON b.manager_id = m.id
		ORDER BY b.name ASC
	`

	var rows []entity.BranchRow
	err = db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BranchRepository) FindByID(ctx context.Context, id int64) (*entity.Branch, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, location, manager_id
		FROM branches
		WHERE id = ?
	`

	var branch entity.Branch
	err = db.GetContext(ctx, &branch, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO branches (name, location, manager_id, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`

	result, err := db.ExecContext(ctx, query, branch.Name, branch.Location, branch.ManagerID)
	if err != nil {
		return err
	}

	branch.ID, err = result.LastInsertId()
	return err
}

type UpdateBranchParams struct {
	ID        int64
	Name      *string
	Location  *string
	ManagerID *int64
}

func (r *BranchRepository) Update(ctx context.Context, params UpdateBranchParams) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE branches SET
			name = COALESCE(?, name),
			location = COALESCE(?, location),
			manager_id = COALESCE(?, manager_id),
			updated_at = NOW()
		WHERE id = ?
	`

	result, err := db.ExecContext(ctx, query, params.Name, params.Location, params.ManagerID, params.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBranchNotFound
	}
	return nil
}

// Delete detaches the branch's agents before removing the row so no user
// points at a dead branch id.
func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE users SET branch_id = NULL WHERE branch_id = ?`, id)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM branches WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBranchNotFound
	}

	return tx.Commit()
}
