// Package customer resolves customers by internal id, TR identity number or
// email. It backs both the session resolver and the admin entry points.
package customer

import (
	"context"
	"errors"
	"fmt"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
	"digiwallet/internal/repositories/cache"

	"github.com/rs/zerolog/log"
)

type Service interface {
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByTrIdentityNo(ctx context.Context, trIdentityNo string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)

	// Invalidate drops the cached copy of the customer.
	Invalidate(ctx context.Context, id uint)
}

type service struct {
	store repositories.Store
	cache cache.Cache
}

func NewService(store repositories.Store, c cache.Cache) Service {
	if store == nil {
		panic("store is required")
	}
	if c == nil {
		c = cache.Noop{}
	}
	return &service{store: store, cache: c}
}

// GetByID is read through the cache. The cached copy carries no password hash.
func (s *service) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	// The key is taken before the store read so a Logout landing in between
	// leaves this fill in a generation that is never read.
	key, err := cache.CurrentKey(ctx, s.cache, cache.CustomerKey(id))
	if err != nil {
		log.Warn().Err(err).Uint("customer_id", id).Msg("customer cache unavailable")
	}

	if key != "" {
		var cached models.Customer
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("customer cache read failed")
		}
		if found {
			return &cached, nil
		}
	}

	customer, err := s.store.Customers().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, appErrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, customer); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("customer cache write failed")
		}
	}
	return customer, nil
}

func (s *service) GetByTrIdentityNo(ctx context.Context, trIdentityNo string) (*models.Customer, error) {
	customer, err := s.store.Customers().GetByTrIdentityNo(ctx, trIdentityNo)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, appErrors.CustomerNotFound(trIdentityNo)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer, err := s.store.Customers().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, appErrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *service) Invalidate(ctx context.Context, id uint) {
	if err := s.cache.Bump(ctx, cache.CustomerKey(id)); err != nil {
		log.Warn().Err(err).Uint("customer_id", id).Msg("customer cache invalidation failed")
	}
}
