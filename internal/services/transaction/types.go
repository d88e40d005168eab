package transaction

import (
	"digiwallet/internal/models"

	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	Amount     *decimal.Decimal `json:"amount" validate:"required,amount_min,amount_max,amount_scale"`
	WalletID   string           `json:"walletId" validate:"required"`
	SourceType string           `json:"sourceType" validate:"required,oneof=IBAN PAYMENT"`
	Source     string           `json:"source" validate:"required"`
}

type WithdrawRequest struct {
	Amount          *decimal.Decimal `json:"amount" validate:"required,amount_min,amount_max,amount_scale"`
	WalletID        string           `json:"walletId" validate:"required"`
	DestinationType string           `json:"destinationType" validate:"required,oneof=IBAN PAYMENT"`
	Destination     string           `json:"destination" validate:"required"`
}

type StatusChangeRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=APPROVED DENIED"`
}

type TransactionResponse struct {
	TransactionID     string                   `json:"transactionId"`
	WalletID          string                   `json:"walletId"`
	OppositeParty     string                   `json:"oppositeParty"`
	OppositePartyType models.OppositePartyType `json:"oppositePartyType"`
	Type              models.TransactionType   `json:"type"`
	Status            models.TransactionStatus `json:"status"`
	Amount            decimal.Decimal          `json:"amount"`
}

// WalletTransactionListResponse is a wallet's balances with its full history.
type WalletTransactionListResponse struct {
	WalletName    string                `json:"walletName"`
	Balance       decimal.Decimal       `json:"balance"`
	UsableBalance decimal.Decimal       `json:"usableBalance"`
	Transactions  []TransactionResponse `json:"transactions"`
}

// walletID is the external wallet identifier; tx.WalletID is the internal key.
func toTransactionResponse(tx *models.Transaction, walletID string) TransactionResponse {
	return TransactionResponse{
		TransactionID:     tx.TransactionID,
		WalletID:          walletID,
		OppositeParty:     tx.OppositeParty,
		OppositePartyType: tx.OppositePartyType,
		Type:              tx.Type,
		Status:            tx.Status,
		Amount:            tx.Amount,
	}
}
