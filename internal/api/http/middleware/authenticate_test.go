package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/Agent-cat/Expence-Tracker/internal/api/http/context"
	"github.com/Agent-cat/Expence-Tracker/internal/model"
	"github.com/Agent-cat/Expence-Tracker/internal/testutil"
)

// MockTokenService mocks the TokenService interface
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) ParseAccessToken(token string) (model.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(model.Principal), args.Error(1)
}

func TestAuthenticate_Handle(t *testing.T) {
	principal := model.Principal{UserID: uuid.New(), Email: "a@x.com"}

	tests := []struct {
		name            string
		authHeader      string
		tokenPrincipal  model.Principal
		tokenErr        error
		wantStatus      int
		expectPrincipal bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "token-without-scheme",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid",
			tokenErr:   errors.New("token rejected"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:            "valid token",
			authHeader:      "Bearer good",
			tokenPrincipal:  principal,
			wantStatus:      http.StatusOK,
			expectPrincipal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTokenService{}
			if tt.authHeader != "" && tt.authHeader != "token-without-scheme" {
				svc.On("ParseAccessToken", mock.AnythingOfType("string")).Return(tt.tokenPrincipal, tt.tokenErr)
			}

			cm := httpctx.NewManager()
			m := NewAuthenticate(svc, cm, testutil.MakeNoopLogger())

			var gotPrincipal model.Principal
			var gotOK bool

			app := fiber.New()
			app.Get("/protected", m.Handle, func(c *fiber.Ctx) error {
				gotPrincipal, gotOK = cm.GetPrincipalFromContext(c.UserContext())
				return c.SendStatus(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.expectPrincipal {
				assert.True(t, gotOK)
				assert.Equal(t, principal, gotPrincipal)
			} else {
				assert.False(t, gotOK)
			}
		})
	}
}

func TestAuthenticate_Handle_StripsBearerPrefix(t *testing.T) {
	svc := &MockTokenService{}
	svc.On("ParseAccessToken", "raw-token").Return(model.Principal{UserID: uuid.New()}, nil)

	cm := httpctx.NewManager()
	m := NewAuthenticate(svc, cm, testutil.MakeNoopLogger())

	app := fiber.New()
	app.Get("/protected", m.Handle, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer raw-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertCalled(t, "ParseAccessToken", "raw-token")
}
