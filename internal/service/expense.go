package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Agent-cat/Expence-Tracker/internal/logger"
	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

// Expense enforces that every expense operation is scoped to the owner
// resolved from the caller's principal.
type Expense struct {
	expenseStore model.ExpenseStore
	userStore    model.UserStore
	logger       *logger.Logger
}

func NewExpense(
	expenseStore model.ExpenseStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Expense {
	return &Expense{
		expenseStore: expenseStore,
		userStore:    userStore,
		logger:       logger,
	}
}

func (s *Expense) Create(ctx context.Context, principal model.Principal, input model.ExpenseInput) (model.Expense, error) {
	_, err := s.userStore.GetByID(ctx, principal.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Expense{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	expense := model.Expense{
		ID:          uuid.New(),
		OwnerID:     principal.UserID,
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		ExpenseDate: input.ExpenseDate,
		Notes:       input.Notes,
	}

	expense, err = s.expenseStore.Create(ctx, expense)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

func (s *Expense) Get(ctx context.Context, principal model.Principal, expenseID uuid.UUID) (model.Expense, error) {
	return s.loadOwned(ctx, principal, expenseID)
}

func (s *Expense) List(ctx context.Context, principal model.Principal) ([]model.Expense, error) {
	expenses, err := s.expenseStore.GetByOwnerID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses by owner id: %w", err)
	}

	return expenses, nil
}

func (s *Expense) ListByCategory(ctx context.Context, principal model.Principal, category string) ([]model.Expense, error) {
	expenses, err := s.expenseStore.GetByOwnerIDAndCategory(ctx, principal.UserID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses by owner id and category: %w", err)
	}

	return expenses, nil
}

func (s *Expense) Update(ctx context.Context, principal model.Principal, expenseID uuid.UUID, input model.ExpenseInput) (model.Expense, error) {
	expense, err := s.loadOwned(ctx, principal, expenseID)
	if err != nil {
		return model.Expense{}, err
	}

	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.Category = input.Category
	expense.ExpenseDate = input.ExpenseDate
	expense.Notes = input.Notes

	expense, err = s.expenseStore.Update(ctx, expense)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Expense{}, model.ErrNotFound
		}
		return model.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

func (s *Expense) Delete(ctx context.Context, principal model.Principal, expenseID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, principal, expenseID); err != nil {
		return err
	}

	if err := s.expenseStore.Delete(ctx, expenseID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

// loadOwned fetches the expense and verifies ownership. The record is loaded
// first so that "never existed" and "exists but not yours" stay distinct
// error kinds, even though the HTTP layer collapses them.
func (s *Expense) loadOwned(ctx context.Context, principal model.Principal, expenseID uuid.UUID) (model.Expense, error) {
	expense, err := s.expenseStore.GetByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Expense{}, model.ErrNotFound
		}
		return model.Expense{}, fmt.Errorf("failed to get expense by id: %w", err)
	}

	if expense.OwnerID != principal.UserID {
		s.logger.Warn("Expense service: ownership check rejected access",
			"expense_id", expenseID,
			"owner_id", expense.OwnerID,
			"user_id", principal.UserID)
		return model.Expense{}, model.ErrUnauthorized
	}

	return expense, nil
}
