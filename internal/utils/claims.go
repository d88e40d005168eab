package utils

import (
	"errors"

	"digiwallet/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CustomerLocalsKey is where the auth middleware stores the caller.
const CustomerLocalsKey = "customer"

// GetCustomer extracts the authenticated customer from the Fiber context.
func GetCustomer(c *fiber.Ctx) (*models.Customer, error) {
	v := c.Locals(CustomerLocalsKey)
	if v == nil {
		return nil, errors.New("customer not found in context")
	}

	customer, ok := v.(*models.Customer)
	if !ok {
		return nil, errors.New("invalid customer type")
	}
	return customer, nil
}
