package memory

import (
	"context"
	"sort"
	"time"

	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
)

type walletRepository struct {
	s *Store
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	return r.s.view(ctx, func(st *state) error {
		for _, w := range st.wallets {
			if w.WalletID == wallet.WalletID || w.WalletName == wallet.WalletName {
				return repositories.ErrDuplicateKey
			}
		}
		st.nextWalletID++
		now := time.Now()
		wallet.ID = st.nextWalletID
		wallet.CreatedAt = now
		wallet.UpdatedAt = now
		cp := *wallet
		cp.Customer = nil
		st.wallets[cp.ID] = &cp
		return nil
	})
}

func (r *walletRepository) GetByWalletID(ctx context.Context, walletID string) (*models.Wallet, error) {
	return r.find(ctx, func(w *models.Wallet) bool { return w.WalletID == walletID })
}

// GetByWalletIDForUpdate is GetByWalletID: the unit of work already excludes
// every other writer.
func (r *walletRepository) GetByWalletIDForUpdate(ctx context.Context, walletID string) (*models.Wallet, error) {
	return r.GetByWalletID(ctx, walletID)
}

func (r *walletRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Wallet, error) {
	return r.find(ctx, func(w *models.Wallet) bool { return w.ID == id })
}

func (r *walletRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	exists := false
	err := r.s.view(ctx, func(st *state) error {
		for _, w := range st.wallets {
			if w.WalletName == name {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (r *walletRepository) ListByCustomerID(ctx context.Context, customerID uint) ([]*models.Wallet, error) {
	wallets := []*models.Wallet{}
	err := r.s.view(ctx, func(st *state) error {
		for _, w := range st.wallets {
			if w.CustomerID == customerID {
				cp := *w
				wallets = append(wallets, &cp)
			}
		}
		return nil
	})
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
	return wallets, err
}

func (r *walletRepository) UpdateBalances(ctx context.Context, wallet *models.Wallet) error {
	return r.s.view(ctx, func(st *state) error {
		w, ok := st.wallets[wallet.ID]
		if !ok {
			return repositories.ErrWalletNotFound
		}
		w.Balance = wallet.Balance
		w.UsableBalance = wallet.UsableBalance
		w.UpdatedAt = time.Now()
		return nil
	})
}

func (r *walletRepository) find(ctx context.Context, match func(*models.Wallet) bool) (*models.Wallet, error) {
	var found *models.Wallet
	err := r.s.view(ctx, func(st *state) error {
		for _, w := range st.wallets {
			if match(w) {
				cp := *w
				found = &cp
				return nil
			}
		}
		return repositories.ErrWalletNotFound
	})
	return found, err
}
