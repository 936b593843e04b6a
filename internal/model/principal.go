package model

import (
	"context"

	"github.com/google/uuid"
)

// Principal is the authenticated caller, resolved once at the transport
// boundary and passed explicitly into every service operation.
type Principal struct {
	UserID uuid.UUID
	Email  string
}

type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal Principal) context.Context
	GetPrincipalFromContext(ctx context.Context) (Principal, bool)
}
