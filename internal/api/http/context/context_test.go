package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

func TestManager_SetAndGetPrincipal(t *testing.T) {
	m := NewManager()
	principal := model.Principal{UserID: uuid.New(), Email: "a@x.com"}

	ctx := m.SetPrincipalToContext(context.Background(), principal)

	got, ok := m.GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, principal, got)
}

func TestManager_GetPrincipal_Missing(t *testing.T) {
	m := NewManager()

	got, ok := m.GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, model.Principal{}, got)
}

func TestManager_SetPrincipal_Overwrites(t *testing.T) {
	m := NewManager()
	first := model.Principal{UserID: uuid.New(), Email: "first@x.com"}
	second := model.Principal{UserID: uuid.New(), Email: "second@x.com"}

	ctx := m.SetPrincipalToContext(context.Background(), first)
	ctx = m.SetPrincipalToContext(ctx, second)

	got, ok := m.GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second, got)
}
