package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

var _ model.ExpenseStore = (*ExpenseRepository)(nil)

type ExpenseRepository struct {
	db *Connection
}

func NewExpenseRepository(db *Connection) *ExpenseRepository {
	return &ExpenseRepository{
		db: db,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense model.Expense) (model.Expense, error) {
	query := `
		INSERT INTO expenses (id, owner_id, description, amount, category, expense_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, description, amount, category, expense_date, notes, created_at, updated_at`

	var saved model.Expense
	err := r.db.QueryRow(ctx, query,
		expense.ID, expense.OwnerID, expense.Description, expense.Amount,
		expense.Category, expense.ExpenseDate, expense.Notes,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Description, &saved.Amount,
		&saved.Category, &saved.ExpenseDate, &saved.Notes, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Expense{}, err
	}

	return saved, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Expense, error) {
	query := `
		SELECT id, owner_id, description, amount, category, expense_date, notes, created_at, updated_at
		FROM expenses
		WHERE id = $1`

	var expense model.Expense
	err := r.db.QueryRow(ctx, query, id).Scan(
		&expense.ID, &expense.OwnerID, &expense.Description, &expense.Amount,
		&expense.Category, &expense.ExpenseDate, &expense.Notes,
		&expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Expense{}, model.ErrNotFound
		}
		return model.Expense{}, err
	}

	return expense, nil
}

func (r *ExpenseRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error) {
	query := `
		SELECT id, owner_id, description, amount, category, expense_date, notes, created_at, updated_at
		FROM expenses
		WHERE owner_id = $1
		ORDER BY expense_date DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r *ExpenseRepository) GetByOwnerIDAndCategory(ctx context.Context, ownerID uuid.UUID, category string) ([]model.Expense, error) {
	query := `
		SELECT id, owner_id, description, amount, category, expense_date, notes, created_at, updated_at
		FROM expenses
		WHERE owner_id = $1 AND category = $2
		ORDER BY expense_date DESC`

	rows, err := r.db.Query(ctx, query, ownerID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r *ExpenseRepository) Update(ctx context.Context, expense model.Expense) (model.Expense, error) {
	// owner_id and created_at are deliberately absent from the SET list.
	query := `
		UPDATE expenses
		SET description = $2, amount = $3, category = $4, expense_date = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, description, amount, category, expense_date, notes, created_at, updated_at`

	var saved model.Expense
	err := r.db.QueryRow(ctx, query,
		expense.ID, expense.Description, expense.Amount,
		expense.Category, expense.ExpenseDate, expense.Notes,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Description, &saved.Amount,
		&saved.Category, &saved.ExpenseDate, &saved.Notes, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Expense{}, model.ErrNotFound
		}
		return model.Expense{}, err
	}

	return saved, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM expenses WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanExpenses(rows pgx.Rows) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		var expense model.Expense
		err := rows.Scan(
			&expense.ID, &expense.OwnerID, &expense.Description, &expense.Amount,
			&expense.Category, &expense.ExpenseDate, &expense.Notes,
			&expense.CreatedAt, &expense.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}
