package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a currency-typed balance container owned by one customer.
// WalletID is the only identifier exposed through the API.
type Wallet struct {
	ID                uint            `gorm:"primarykey"`
	WalletID          string          `gorm:"size:36;uniqueIndex;not null"`
	WalletName        string          `gorm:"size:50;uniqueIndex;not null"`
	CustomerID        uint            `gorm:"index;not null"`
	Customer          *Customer       `gorm:"foreignKey:CustomerID"`
	Currency          Currency        `gorm:"size:10;not null"`
	ActiveForWithdraw bool            `gorm:"not null;default:false"`
	ActiveForShopping bool            `gorm:"not null;default:false"`
	Balance           decimal.Decimal `gorm:"type:numeric(19,2);not null;default:0"`
	UsableBalance     decimal.Decimal `gorm:"type:numeric(19,2);not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OwnedBy compares the owning customer key; the caller's identity is never taken from input.
func (w *Wallet) OwnedBy(c *Customer) bool {
	return c != nil && w.CustomerID == c.ID
}
