package repositories

import (
	"context"
	"digiwallet/internal/models"
)

// CustomerRepository defines the interface for customer-related database operations
type CustomerRepository interface {
	// Create inserts a customer. Duplicate identity number or email yields ErrDuplicateKey.
	Create(ctx context.Context, customer *models.Customer) error

	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByTrIdentityNo(ctx context.Context, trIdentityNo string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)

	// IncrementTokenVersion invalidates every token issued so far.
	IncrementTokenVersion(ctx context.Context, id uint) error
}
