package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpenseStore defines persistence operations for expenses.
type ExpenseStore interface {
	Create(ctx context.Context, expense Expense) (Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (Expense, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Expense, error)
	GetByOwnerIDAndCategory(ctx context.Context, ownerID uuid.UUID, category string) ([]Expense, error)
	Update(ctx context.Context, expense Expense) (Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Expense represents a single financial entry bound to one owner.
// OwnerID is set at creation and never reassigned.
type Expense struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Description string
	Amount      float64
	Category    string
	ExpenseDate time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseInput contains the caller-settable fields of an expense.
// Update replaces all of them; id, owner and created_at stay untouched.
type ExpenseInput struct {
	Description string
	Amount      float64
	Category    string
	ExpenseDate time.Time
	Notes       string
}
