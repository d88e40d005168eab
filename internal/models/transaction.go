package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a money movement against a wallet. Everything except
// Status is immutable after creation.
type Transaction struct {
	ID                uint              `gorm:"primarykey"`
	TransactionID     string            `gorm:"size:36;uniqueIndex;not null"`
	Type              TransactionType   `gorm:"size:10;not null"`
	OppositePartyType OppositePartyType `gorm:"size:10;not null"`
	OppositeParty     string            `gorm:"not null"`
	Status            TransactionStatus `gorm:"size:10;not null"`
	Amount            decimal.Decimal   `gorm:"type:numeric(19,2);not null"`
	// WalletID references wallets.id, not the external wallet identifier.
	WalletID  uint    `gorm:"index;not null"`
	Wallet    *Wallet `gorm:"foreignKey:WalletID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
