package wallet

import (
	"context"

	"digiwallet/internal/models"
)

type Service interface {
	AddWallet(ctx context.Context, customer *models.Customer, req CreateWalletRequest) (*WalletResponse, error)
	AddWalletFor(ctx context.Context, identityNo string, req CreateWalletRequest) (*WalletResponse, error)

	ListWallets(ctx context.Context, customer *models.Customer) ([]WalletResponse, error)
	ListWalletsFor(ctx context.Context, identityNo string) ([]WalletResponse, error)

	// InvalidateWallets drops the cached listing of the customer's wallets.
	InvalidateWallets(ctx context.Context, customerID uint)
}

type CustomerResolver interface {
	GetByTrIdentityNo(ctx context.Context, trIdentityNo string) (*models.Customer, error)
}
