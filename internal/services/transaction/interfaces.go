package transaction

import (
	"context"

	"digiwallet/internal/models"
)

// Service is the balance state machine. The plain forms act for the
// authenticated customer; the For forms act for the customer with the given
// TR identity number and are reserved for administrators.
type Service interface {
	Deposit(ctx context.Context, customer *models.Customer, req DepositRequest) (*TransactionResponse, error)
	DepositFor(ctx context.Context, identityNo string, req DepositRequest) (*TransactionResponse, error)

	Withdraw(ctx context.Context, customer *models.Customer, req WithdrawRequest) (*TransactionResponse, error)
	WithdrawFor(ctx context.Context, identityNo string, req WithdrawRequest) (*TransactionResponse, error)

	ChangeTransactionStatus(ctx context.Context, customer *models.Customer, req StatusChangeRequest) error
	ChangeTransactionStatusFor(ctx context.Context, identityNo string, req StatusChangeRequest) error

	GetTransactions(ctx context.Context, customer *models.Customer, walletID string) (*WalletTransactionListResponse, error)
	GetTransactionsFor(ctx context.Context, identityNo string, walletID string) (*WalletTransactionListResponse, error)
}

type CustomerResolver interface {
	GetByTrIdentityNo(ctx context.Context, trIdentityNo string) (*models.Customer, error)
}

// WalletCache is told after commit that a customer's wallet balances changed.
type WalletCache interface {
	InvalidateWallets(ctx context.Context, customerID uint)
}
