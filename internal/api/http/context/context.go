package context

import (
	"context"

	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

type ctxKey int

// principalKey is the context key used to store the authenticated principal.
const principalKey ctxKey = iota

// Manager stores and retrieves the authenticated principal in request
// contexts. The principal is resolved once by the authentication middleware;
// handlers only ever read it.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipalToContext returns a context carrying the principal.
func (m *Manager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipalFromContext retrieves the principal set by the authentication
// middleware. The boolean is false when the context carries none.
func (m *Manager) GetPrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(model.Principal)
	return principal, ok
}
