package wallet

import (
	"digiwallet/internal/models"

	"github.com/shopspring/decimal"
)

type CreateWalletRequest struct {
	WalletName        string `json:"walletName" validate:"required,min=2,max=50"`
	Currency          string `json:"currency" validate:"required,oneof=USD EUR TRY"`
	ActiveForShopping bool   `json:"activeForShopping"`
	ActiveForWithdraw bool   `json:"activeForWithdraw"`
}

type WalletResponse struct {
	WalletID          string          `json:"walletId"`
	WalletName        string          `json:"walletName"`
	Customer          string          `json:"customer"`
	Currency          models.Currency `json:"currency"`
	ActiveForWithdraw bool            `json:"activeForWithdraw"`
	ActiveForShopping bool            `json:"activeForShopping"`
	Balance           decimal.Decimal `json:"balance"`
	UsableBalance     decimal.Decimal `json:"usableBalance"`
}

func toWalletResponse(w *models.Wallet, owner *models.Customer) WalletResponse {
	return WalletResponse{
		WalletID:          w.WalletID,
		WalletName:        w.WalletName,
		Customer:          owner.FullName(),
		Currency:          w.Currency,
		ActiveForWithdraw: w.ActiveForWithdraw,
		ActiveForShopping: w.ActiveForShopping,
		Balance:           w.Balance,
		UsableBalance:     w.UsableBalance,
	}
}
