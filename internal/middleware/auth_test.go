package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*models.Customer, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func newApp(auth Authenticator) *fiber.App {
	app := fiber.New()
	mw := NewAuthMiddleware(auth)
	handler := func(c *fiber.Ctx) error {
		customer, err := utils.GetCustomer(c)
		if err != nil {
			return err
		}
		return c.SendString(customer.Email)
	}
	app.Get("/me", mw.Handler, handler)
	app.Get("/admin", mw.Handler, AdminOnly, handler)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	basic := &models.Customer{ID: 1, Email: "basic@example.com", Role: models.RoleBasic}
	admin := &models.Customer{ID: 2, Email: "admin@example.com", Role: models.RoleAdmin}

	tests := []struct {
		name       string
		path       string
		header     string
		setupMock  func(m *MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "missing header",
			path:       "/me",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			path:       "/me",
			header:     "Basic abc",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			path:   "/me",
			header: "Bearer bad",
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", "bad").Return(nil, appErrors.ErrInvalidToken)
			},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:   "backend failure",
			path:   "/me",
			header: "Bearer tok",
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", "tok").Return(nil, errors.New("db down"))
			},
			wantStatus: fiber.StatusInternalServerError,
		},
		{
			name:   "valid token",
			path:   "/me",
			header: "Bearer tok",
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", "tok").Return(basic, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name:   "basic customer on admin route",
			path:   "/admin",
			header: "Bearer tok",
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", "tok").Return(basic, nil)
			},
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:   "admin on admin route",
			path:   "/admin",
			header: "Bearer tok",
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", "tok").Return(admin, nil)
			},
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockAuthenticator)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newApp(m).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			m.AssertExpectations(t)
		})
	}
}
