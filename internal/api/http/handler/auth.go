package handler

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Agent-cat/Expence-Tracker/internal/logger"
	"github.com/Agent-cat/Expence-Tracker/internal/model"
	"github.com/Agent-cat/Expence-Tracker/internal/service"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (service.AuthResult, error)
	Login(ctx context.Context, email, password string) (service.AuthResult, error)
	Profile(ctx context.Context, principal model.Principal) (model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type profileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

// Register creates a new user account and returns an access token.
func (h *Auth) Register(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	result, err := h.authService.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: registration rejected",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(authResponse{Token: result.Token, Email: result.Email})
}

// Login authenticates a user and returns an access token.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	result, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login rejected",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(authResponse{Token: result.Token, Email: result.Email})
}

// Validate confirms that the presented token is valid. Reaching this handler
// means the authentication middleware already accepted it.
func (h *Auth) Validate(c *fiber.Ctx) error {
	return c.SendString("Token is valid")
}

// Profile returns the authenticated user's account.
func (h *Auth) Profile(c *fiber.Ctx) error {
	principal, ok := h.contextManager.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
	}

	user, err := h.authService.Profile(c.UserContext(), principal)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(profileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Unix(),
	})
}
