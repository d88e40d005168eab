package transaction

import (
	"context"
	"errors"
	"fmt"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type service struct {
	store     repositories.Store
	customers CustomerResolver
	wallets   WalletCache
}

// NewService creates the transaction service. wallets may be nil.
func NewService(store repositories.Store, customers CustomerResolver, wallets WalletCache) Service {
	if store == nil {
		panic("store is required")
	}
	if customers == nil {
		panic("customer resolver is required")
	}

	return &service{
		store:     store,
		customers: customers,
		wallets:   wallets,
	}
}

func (s *service) Deposit(ctx context.Context, customer *models.Customer, req DepositRequest) (*TransactionResponse, error) {
	if customer == nil {
		return nil, appErrors.ErrCustomerNotFound
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	sourceType, ok := models.ParseOppositePartyType(req.SourceType)
	if !ok {
		return nil, appErrors.ErrInvalidOppositePartyType
	}

	var tx *models.Transaction
	err = s.store.ExecuteInTransaction(ctx, func(st repositories.Store) error {
		wallet, err := lockOwnedWallet(ctx, st, customer, req.WalletID)
		if err != nil {
			return err
		}

		status, err := applyDeposit(wallet, amount)
		if err != nil {
			return err
		}
		if err := st.Wallets().UpdateBalances(ctx, wallet); err != nil {
			return fmt.Errorf("failed to update wallet balances: %w", err)
		}

		tx = &models.Transaction{
			TransactionID:     uuid.NewString(),
			Type:              models.TransactionTypeDeposit,
			OppositePartyType: sourceType,
			OppositeParty:     req.Source,
			Status:            status,
			Amount:            amount,
			WalletID:          wallet.ID,
		}
		if err := st.Transactions().Create(ctx, tx); err != nil {
			return fmt.Errorf("failed to record deposit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.committed(ctx, customer, req.WalletID, tx)
	resp := toTransactionResponse(tx, req.WalletID)
	return &resp, nil
}

func (s *service) DepositFor(ctx context.Context, identityNo string, req DepositRequest) (*TransactionResponse, error) {
	customer, err := s.customers.GetByTrIdentityNo(ctx, identityNo)
	if err != nil {
		return nil, err
	}
	return s.Deposit(ctx, customer, req)
}

func (s *service) Withdraw(ctx context.Context, customer *models.Customer, req WithdrawRequest) (*TransactionResponse, error) {
	if customer == nil {
		return nil, appErrors.ErrCustomerNotFound
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	destinationType, ok := models.ParseOppositePartyType(req.DestinationType)
	if !ok {
		return nil, appErrors.ErrInvalidOppositePartyType
	}

	var tx *models.Transaction
	err = s.store.ExecuteInTransaction(ctx, func(st repositories.Store) error {
		wallet, err := lockOwnedWallet(ctx, st, customer, req.WalletID)
		if err != nil {
			return err
		}

		status, err := applyWithdraw(wallet, amount)
		if err != nil {
			return err
		}
		if err := st.Wallets().UpdateBalances(ctx, wallet); err != nil {
			return fmt.Errorf("failed to update wallet balances: %w", err)
		}

		tx = &models.Transaction{
			TransactionID:     uuid.NewString(),
			Type:              models.TransactionTypeWithdraw,
			OppositePartyType: destinationType,
			OppositeParty:     req.Destination,
			Status:            status,
			Amount:            amount,
			WalletID:          wallet.ID,
		}
		if err := st.Transactions().Create(ctx, tx); err != nil {
			return fmt.Errorf("failed to record withdraw: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.committed(ctx, customer, req.WalletID, tx)
	resp := toTransactionResponse(tx, req.WalletID)
	return &resp, nil
}

func (s *service) WithdrawFor(ctx context.Context, identityNo string, req WithdrawRequest) (*TransactionResponse, error) {
	customer, err := s.customers.GetByTrIdentityNo(ctx, identityNo)
	if err != nil {
		return nil, err
	}
	return s.Withdraw(ctx, customer, req)
}

func (s *service) ChangeTransactionStatus(ctx context.Context, customer *models.Customer, req StatusChangeRequest) error {
	if customer == nil {
		return appErrors.ErrCustomerNotFound
	}
	decision, ok := models.ParseDecision(req.Status)
	if !ok {
		return appErrors.ErrInvalidDecision
	}

	var (
		tx     *models.Transaction
		wallet *models.Wallet
	)
	// Lock order is transaction row, then wallet row.
	err := s.store.ExecuteInTransaction(ctx, func(st repositories.Store) error {
		notFound := appErrors.TransactionNotFound(customer.TrIdentityNo, req.TransactionID)

		var err error
		tx, err = st.Transactions().GetByTransactionIDForUpdate(ctx, req.TransactionID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return notFound
			}
			return fmt.Errorf("failed to get transaction: %w", err)
		}

		wallet, err = st.Wallets().GetByIDForUpdate(ctx, tx.WalletID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return notFound
			}
			return fmt.Errorf("failed to get wallet: %w", err)
		}
		if !wallet.OwnedBy(customer) {
			return notFound
		}

		if err := applyDecision(wallet, tx, decision); err != nil {
			return err
		}
		if err := st.Wallets().UpdateBalances(ctx, wallet); err != nil {
			return fmt.Errorf("failed to update wallet balances: %w", err)
		}
		if err := st.Transactions().UpdateStatus(ctx, tx); err != nil {
			return fmt.Errorf("failed to update transaction status: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.committed(ctx, customer, wallet.WalletID, tx)
	return nil
}

func (s *service) ChangeTransactionStatusFor(ctx context.Context, identityNo string, req StatusChangeRequest) error {
	customer, err := s.customers.GetByTrIdentityNo(ctx, identityNo)
	if err != nil {
		return err
	}
	return s.ChangeTransactionStatus(ctx, customer, req)
}

func (s *service) GetTransactions(ctx context.Context, customer *models.Customer, walletID string) (*WalletTransactionListResponse, error) {
	if customer == nil {
		return nil, appErrors.ErrCustomerNotFound
	}

	wallet, err := s.store.Wallets().GetByWalletID(ctx, walletID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, appErrors.WalletNotFound(customer.TrIdentityNo, walletID)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if !wallet.OwnedBy(customer) {
		return nil, appErrors.WalletNotFound(customer.TrIdentityNo, walletID)
	}

	txs, err := s.store.Transactions().ListByWalletID(ctx, wallet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := &WalletTransactionListResponse{
		WalletName:    wallet.WalletName,
		Balance:       wallet.Balance,
		UsableBalance: wallet.UsableBalance,
		Transactions:  make([]TransactionResponse, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(tx, wallet.WalletID))
	}
	return resp, nil
}

func (s *service) GetTransactionsFor(ctx context.Context, identityNo string, walletID string) (*WalletTransactionListResponse, error) {
	customer, err := s.customers.GetByTrIdentityNo(ctx, identityNo)
	if err != nil {
		return nil, err
	}
	return s.GetTransactions(ctx, customer, walletID)
}

// lockOwnedWallet reports a wallet owned by someone else exactly like a
// missing one.
func lockOwnedWallet(ctx context.Context, st repositories.Store, customer *models.Customer, walletID string) (*models.Wallet, error) {
	wallet, err := st.Wallets().GetByWalletIDForUpdate(ctx, walletID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, appErrors.WalletNotFound(customer.TrIdentityNo, walletID)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if !wallet.OwnedBy(customer) {
		return nil, appErrors.WalletNotFound(customer.TrIdentityNo, walletID)
	}
	return wallet, nil
}

func requireAmount(amount *decimal.Decimal) (decimal.Decimal, error) {
	if amount == nil || !amount.IsPositive() {
		return decimal.Zero, appErrors.ErrInvalidAmount
	}
	return *amount, nil
}

// committed runs the post-commit side effects. Failures here never undo the
// committed change.
func (s *service) committed(ctx context.Context, customer *models.Customer, walletID string, tx *models.Transaction) {
	if s.wallets != nil {
		s.wallets.InvalidateWallets(ctx, customer.ID)
	}
	log.Info().
		Str("transaction_id", tx.TransactionID).
		Str("wallet_id", walletID).
		Str("type", string(tx.Type)).
		Str("status", string(tx.Status)).
		Str("amount", tx.Amount.StringFixed(2)).
		Uint("customer_id", customer.ID).
		Msg("transaction committed")
}
