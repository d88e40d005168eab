package repositories

import (
	"context"
	"errors"
	"fmt"

	"digiwallet/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByWalletID(ctx context.Context, walletID string) (*models.Wallet, error) {
	return r.first(r.db.WithContext(ctx), "wallet_id = ?", walletID)
}

func (r *walletRepository) GetByWalletIDForUpdate(ctx context.Context, walletID string) (*models.Wallet, error) {
	return r.first(r.locking(ctx), "wallet_id = ?", walletID)
}

func (r *walletRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Wallet, error) {
	return r.first(r.locking(ctx), "id = ?", id)
}

func (r *walletRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Wallet{}).Where("wallet_name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check wallet name: %w", err)
	}
	return count > 0, nil
}

func (r *walletRepository) ListByCustomerID(ctx context.Context, customerID uint) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id ASC").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) UpdateBalances(ctx context.Context, wallet *models.Wallet) error {
	result := r.db.WithContext(ctx).Model(&models.Wallet{}).Where("id = ?", wallet.ID).Updates(map[string]any{
		"balance":        wallet.Balance,
		"usable_balance": wallet.UsableBalance,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

// locking adds SELECT ... FOR UPDATE to the query.
func (r *walletRepository) locking(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *walletRepository) first(db *gorm.DB, query string, arg any) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := db.Where(query, arg).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}
