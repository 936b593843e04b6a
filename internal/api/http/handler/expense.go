package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Agent-cat/Expence-Tracker/internal/logger"
	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

// ExpenseService defines business operations for expense management.
type ExpenseService interface {
	Create(ctx context.Context, principal model.Principal, input model.ExpenseInput) (model.Expense, error)
	Get(ctx context.Context, principal model.Principal, expenseID uuid.UUID) (model.Expense, error)
	List(ctx context.Context, principal model.Principal) ([]model.Expense, error)
	ListByCategory(ctx context.Context, principal model.Principal, category string) ([]model.Expense, error)
	Update(ctx context.Context, principal model.Principal, expenseID uuid.UUID, input model.ExpenseInput) (model.Expense, error)
	Delete(ctx context.Context, principal model.Principal, expenseID uuid.UUID) error
}

// Expense handles HTTP endpoints for expenses.
type Expense struct {
	expenseService ExpenseService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewExpense creates a new Expense handler.
func NewExpense(expenseService ExpenseService, contextManager model.ContextManager, logger *logger.Logger) *Expense {
	return &Expense{
		expenseService: expenseService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// expenseRequest is the wire shape of caller-settable expense fields.
// Instants travel as epoch seconds.
type expenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ExpenseDate int64   `json:"expenseDate"`
	Notes       string  `json:"notes"`
}

// expenseResponse is the wire shape of an expense. The owner is never
// serialized; the authenticated caller is always the owner.
type expenseResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ExpenseDate int64   `json:"expenseDate"`
	Notes       string  `json:"notes"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

func (r expenseRequest) toInput() model.ExpenseInput {
	return model.ExpenseInput{
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		ExpenseDate: time.Unix(r.ExpenseDate, 0).UTC(),
		Notes:       r.Notes,
	}
}

func convertExpense(expense model.Expense) expenseResponse {
	return expenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    expense.Category,
		ExpenseDate: expense.ExpenseDate.Unix(),
		Notes:       expense.Notes,
		CreatedAt:   expense.CreatedAt.Unix(),
		UpdatedAt:   expense.UpdatedAt.Unix(),
	}
}

func convertExpenses(expenses []model.Expense) []expenseResponse {
	responses := make([]expenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, convertExpense(expense))
	}
	return responses
}

// Create inserts a new expense owned by the authenticated caller.
func (h *Expense) Create(c *fiber.Ctx) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
	}

	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	expense, err := h.expenseService.Create(c.UserContext(), principal, req.toInput())
	if err != nil {
		h.logger.Error("Expense handler: create failed",
			"user_id", principal.UserID,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(convertExpense(expense))
}

// List returns all expenses of the caller, most recent expense date first.
func (h *Expense) List(c *fiber.Ctx) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
	}

	expenses, err := h.expenseService.List(c.UserContext(), principal)
	if err != nil {
		h.logger.Error("Expense handler: list failed",
			"user_id", principal.UserID,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(convertExpenses(expenses))
}

// ListByCategory returns the caller's expenses with an exact category match.
func (h *Expense) ListByCategory(c *fiber.Ctx) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
	}

	category := c.Params("category")

	expenses, err := h.expenseService.ListByCategory(c.UserContext(), principal, category)
	if err != nil {
		h.logger.Error("Expense handler: list by category failed",
			"user_id", principal.UserID,
			"category", category,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(convertExpenses(expenses))
}

// Get returns a single expense if it belongs to the caller.
func (h *Expense) Get(c *fiber.Ctx) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid expense id"})
	}

	expense, err := h.expenseService.Get(c.UserContext(), principal, expenseID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(convertExpense(expense))
}

// Update replaces the mutable fields of an expense owned by the caller.
func (h *Expense) Update(c *fiber.Ctx) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid expense id"})
	}

	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	expense, err := h.expenseService.Update(c.UserContext(), principal, expenseID, req.toInput())
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(convertExpense(expense))
}

// Delete removes an expense owned by the caller.
func (h *Expense) Delete(c *fiber.Ctx) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid expense id"})
	}

	if err := h.expenseService.Delete(c.UserContext(), principal, expenseID); err != nil {
		return handleError(c, err)
	}

	return c.SendStatus(http.StatusOK)
}
