package repositories

import (
	"context"
	"digiwallet/internal/models"
)

// WalletRepository defines the interface for wallet-related database operations
type WalletRepository interface {
	// Create inserts a wallet. Duplicate wallet id or name yields ErrDuplicateKey.
	Create(ctx context.Context, wallet *models.Wallet) error

	GetByWalletID(ctx context.Context, walletID string) (*models.Wallet, error)

	// GetByWalletIDForUpdate and GetByIDForUpdate lock the row until the
	// surrounding transaction ends.
	GetByWalletIDForUpdate(ctx context.Context, walletID string) (*models.Wallet, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Wallet, error)

	ExistsByName(ctx context.Context, name string) (bool, error)

	// ListByCustomerID returns the customer's wallets ordered by internal id.
	ListByCustomerID(ctx context.Context, customerID uint) ([]*models.Wallet, error)

	// UpdateBalances persists Balance and UsableBalance only.
	UpdateBalances(ctx context.Context, wallet *models.Wallet) error
}
