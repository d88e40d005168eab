package repositories

import (
	"context"
	"digiwallet/internal/models"
)

// TransactionRepository defines the ledger operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error

	// GetByTransactionIDForUpdate locks the row until the surrounding transaction ends.
	GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*models.Transaction, error)

	// ListByWalletID returns the wallet's transactions in creation order.
	ListByWalletID(ctx context.Context, walletID uint) ([]*models.Transaction, error)

	// UpdateStatus persists Status only.
	UpdateStatus(ctx context.Context, tx *models.Transaction) error
}
