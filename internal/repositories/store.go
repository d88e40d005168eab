// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"context"
	"errors"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateKey        = errors.New("duplicate key")
)

// Store groups the repositories that take part in one unit of work.
type Store interface {
	Customers() CustomerRepository
	Wallets() WalletRepository
	Transactions() TransactionRepository

	// ExecuteInTransaction runs fn atomically. Any error returned by fn rolls
	// back every write made through the Store passed to it.
	ExecuteInTransaction(ctx context.Context, fn func(tx Store) error) error

	Ping(ctx context.Context) error
}
