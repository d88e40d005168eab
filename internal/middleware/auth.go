// Package middleware provides HTTP middleware components for the application.
// It includes authentication and authorization middleware for the fiber web
// framework.
package middleware

import (
	"context"
	"strings"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Authenticator resolves a bearer token to a customer.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.Customer, error)
}

// AuthMiddleware handles JWT token validation and customer lookup.
type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Handler stores the authenticated customer in the request context. The token
// must be valid, unexpired and issued after the customer's last logout.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	customer, err := m.auth.Authenticate(c.UserContext(), tokenString)
	if err != nil {
		if appErrors.IsKind(err, appErrors.KindUnauthorized) {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
			return utils.Unauthorized(c, err.Error())
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("authentication failed")
		return utils.InternalError(c, "An unexpected error occurred")
	}

	c.Locals(utils.CustomerLocalsKey, customer)
	return c.Next()
}

// AdminOnly lets only customers with the ADMIN role through.
func AdminOnly(c *fiber.Ctx) error {
	customer, err := utils.GetCustomer(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !customer.IsAdmin() {
		log.Warn().Uint("customer_id", customer.ID).Str("path", c.Path()).Msg("admin access denied")
		return utils.Forbidden(c, appErrors.ErrAdminRequired.Message)
	}
	return c.Next()
}
