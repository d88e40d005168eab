package repositories

import (
	"context"
	"errors"
	"fmt"

	"digiwallet/internal/models"

	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *customerRepository) GetByTrIdentityNo(ctx context.Context, trIdentityNo string) (*models.Customer, error) {
	return r.first(ctx, "tr_identity_no = ?", trIdentityNo)
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *customerRepository) IncrementTokenVersion(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment token version: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) first(ctx context.Context, query string, arg any) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where(query, arg).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}
