package wallet

import (
	"context"
	"errors"
	"fmt"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
	"digiwallet/internal/repositories/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type service struct {
	store     repositories.Store
	customers CustomerResolver
	cache     cache.Cache
}

// NewService creates the wallet service. A nil cache disables caching.
func NewService(store repositories.Store, customers CustomerResolver, c cache.Cache) Service {
	if store == nil {
		panic("store is required")
	}
	if customers == nil {
		panic("customer resolver is required")
	}
	if c == nil {
		c = cache.Noop{}
	}

	return &service{
		store:     store,
		customers: customers,
		cache:     c,
	}
}

func (s *service) AddWallet(ctx context.Context, customer *models.Customer, req CreateWalletRequest) (*WalletResponse, error) {
	if customer == nil {
		return nil, appErrors.ErrCustomerNotFound
	}
	currency, ok := models.ParseCurrency(req.Currency)
	if !ok {
		return nil, appErrors.ErrInvalidCurrency
	}

	wallet := &models.Wallet{
		WalletID:          uuid.NewString(),
		WalletName:        req.WalletName,
		CustomerID:        customer.ID,
		Currency:          currency,
		ActiveForWithdraw: req.ActiveForWithdraw,
		ActiveForShopping: req.ActiveForShopping,
		Balance:           decimal.Zero,
		UsableBalance:     decimal.Zero,
	}

	err := s.store.ExecuteInTransaction(ctx, func(st repositories.Store) error {
		exists, err := st.Wallets().ExistsByName(ctx, req.WalletName)
		if err != nil {
			return fmt.Errorf("failed to check wallet name: %w", err)
		}
		if exists {
			return appErrors.DuplicateWalletName(req.WalletName)
		}

		if err := st.Wallets().Create(ctx, wallet); err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return appErrors.DuplicateWalletName(req.WalletName)
			}
			return fmt.Errorf("failed to create wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.InvalidateWallets(ctx, customer.ID)
	log.Info().
		Str("wallet_id", wallet.WalletID).
		Str("currency", string(wallet.Currency)).
		Uint("customer_id", customer.ID).
		Msg("wallet created")

	resp := toWalletResponse(wallet, customer)
	return &resp, nil
}

func (s *service) AddWalletFor(ctx context.Context, identityNo string, req CreateWalletRequest) (*WalletResponse, error) {
	customer, err := s.customers.GetByTrIdentityNo(ctx, identityNo)
	if err != nil {
		return nil, err
	}
	return s.AddWallet(ctx, customer, req)
}

func (s *service) ListWallets(ctx context.Context, customer *models.Customer) ([]WalletResponse, error) {
	if customer == nil {
		return nil, appErrors.ErrCustomerNotFound
	}
	// Taken before the store read: a commit that invalidates in between moves
	// the listing to a new generation and this fill is never served.
	key, err := cache.CurrentKey(ctx, s.cache, cache.WalletsKey(customer.ID))
	if err != nil {
		log.Warn().Err(err).Uint("customer_id", customer.ID).Msg("wallet cache unavailable")
	}

	if key != "" {
		var cached []WalletResponse
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("wallet cache read failed")
		}
		if found {
			return cached, nil
		}
	}

	wallets, err := s.store.Wallets().ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	resp := make([]WalletResponse, 0, len(wallets))
	for _, w := range wallets {
		resp = append(resp, toWalletResponse(w, customer))
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("wallet cache write failed")
		}
	}
	return resp, nil
}

func (s *service) ListWalletsFor(ctx context.Context, identityNo string) ([]WalletResponse, error) {
	customer, err := s.customers.GetByTrIdentityNo(ctx, identityNo)
	if err != nil {
		return nil, err
	}
	return s.ListWallets(ctx, customer)
}

func (s *service) InvalidateWallets(ctx context.Context, customerID uint) {
	if err := s.cache.Bump(ctx, cache.WalletsKey(customerID)); err != nil {
		log.Warn().Err(err).Uint("customer_id", customerID).Msg("wallet cache invalidation failed")
	}
}
