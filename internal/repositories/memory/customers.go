package memory

import (
	"context"
	"time"

	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
)

type customerRepository struct {
	s *Store
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.s.view(ctx, func(st *state) error {
		for _, c := range st.customers {
			if c.TrIdentityNo == customer.TrIdentityNo || c.Email == customer.Email {
				return repositories.ErrDuplicateKey
			}
		}
		st.nextCustomerID++
		now := time.Now()
		customer.ID = st.nextCustomerID
		customer.CreatedAt = now
		customer.UpdatedAt = now
		if customer.Role == "" {
			customer.Role = models.RoleBasic
		}
		if customer.TokenVersion == 0 {
			customer.TokenVersion = 1
		}
		cp := *customer
		st.customers[cp.ID] = &cp
		return nil
	})
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	return r.find(ctx, func(c *models.Customer) bool { return c.ID == id })
}

func (r *customerRepository) GetByTrIdentityNo(ctx context.Context, trIdentityNo string) (*models.Customer, error) {
	return r.find(ctx, func(c *models.Customer) bool { return c.TrIdentityNo == trIdentityNo })
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.find(ctx, func(c *models.Customer) bool { return c.Email == email })
}

func (r *customerRepository) IncrementTokenVersion(ctx context.Context, id uint) error {
	return r.s.view(ctx, func(st *state) error {
		c, ok := st.customers[id]
		if !ok {
			return repositories.ErrCustomerNotFound
		}
		c.TokenVersion++
		c.UpdatedAt = time.Now()
		return nil
	})
}

func (r *customerRepository) find(ctx context.Context, match func(*models.Customer) bool) (*models.Customer, error) {
	var found *models.Customer
	err := r.s.view(ctx, func(st *state) error {
		for _, c := range st.customers {
			if match(c) {
				cp := *c
				found = &cp
				return nil
			}
		}
		return repositories.ErrCustomerNotFound
	})
	return found, err
}
