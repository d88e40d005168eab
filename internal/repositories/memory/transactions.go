package memory

import (
	"context"
	"sort"
	"time"

	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
)

type transactionRepository struct {
	s *Store
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.s.view(ctx, func(st *state) error {
		if _, ok := st.wallets[tx.WalletID]; !ok {
			return repositories.ErrWalletNotFound
		}
		for _, t := range st.transactions {
			if t.TransactionID == tx.TransactionID {
				return repositories.ErrDuplicateKey
			}
		}
		st.nextTransactionID++
		now := time.Now()
		tx.ID = st.nextTransactionID
		tx.CreatedAt = now
		tx.UpdatedAt = now
		cp := *tx
		cp.Wallet = nil
		st.transactions[cp.ID] = &cp
		return nil
	})
}

func (r *transactionRepository) GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var found *models.Transaction
	err := r.s.view(ctx, func(st *state) error {
		for _, t := range st.transactions {
			if t.TransactionID == transactionID {
				cp := *t
				found = &cp
				return nil
			}
		}
		return repositories.ErrTransactionNotFound
	})
	return found, err
}

func (r *transactionRepository) ListByWalletID(ctx context.Context, walletID uint) ([]*models.Transaction, error) {
	txs := []*models.Transaction{}
	err := r.s.view(ctx, func(st *state) error {
		for _, t := range st.transactions {
			if t.WalletID == walletID {
				cp := *t
				txs = append(txs, &cp)
			}
		}
		return nil
	})
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID < txs[j].ID })
	return txs, err
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, tx *models.Transaction) error {
	return r.s.view(ctx, func(st *state) error {
		t, ok := st.transactions[tx.ID]
		if !ok {
			return repositories.ErrTransactionNotFound
		}
		t.Status = tx.Status
		t.UpdatedAt = time.Now()
		return nil
	})
}
