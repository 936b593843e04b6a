package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Agent-cat/Expence-Tracker/internal/logger"
	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

// TokenService resolves a principal from bearer tokens.
type TokenService interface {
	ParseAccessToken(token string) (model.Principal, error)
}

// Authenticate validates bearer tokens and injects the resolved principal
// into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores the
// principal in the request context for downstream handlers.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization token"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header format"})
	}

	principal, err := m.tokenService.ParseAccessToken(tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"error", err.Error())
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization token"})
	}

	c.SetUserContext(m.contextManager.SetPrincipalToContext(c.UserContext(), principal))

	return c.Next()
}
