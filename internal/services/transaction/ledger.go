package transaction

import (
	"fmt"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"

	"github.com/shopspring/decimal"
)

// The functions in this file hold the balance rules. They mutate only the
// wallet and transaction values handed to them and leave both untouched when
// they return an error.
//
// balance - usableBalance always equals the sum of the wallet's PENDING
// amounts: a pending deposit is counted in balance only, a pending withdraw
// is taken from usableBalance only, and each decision settles the side that
// was left open.

func autoApproved(amount decimal.Decimal) bool {
	return amount.LessThan(approvalThreshold)
}

func applyDeposit(w *models.Wallet, amount decimal.Decimal) (models.TransactionStatus, error) {
	if !amount.IsPositive() {
		return "", appErrors.ErrInvalidAmount
	}

	balance := w.Balance.Add(amount)
	usable := w.UsableBalance
	status := models.TransactionStatusPending
	if autoApproved(amount) {
		usable = usable.Add(amount)
		status = models.TransactionStatusApproved
	}

	if err := setBalances(w, balance, usable); err != nil {
		return "", err
	}
	return status, nil
}

func applyWithdraw(w *models.Wallet, amount decimal.Decimal) (models.TransactionStatus, error) {
	if !amount.IsPositive() {
		return "", appErrors.ErrInvalidAmount
	}
	if !w.ActiveForWithdraw {
		return "", appErrors.WalletNotAvailable(w.WalletID, capabilityWithdraw)
	}
	if !w.ActiveForShopping {
		return "", appErrors.WalletNotAvailable(w.WalletID, capabilityShopping)
	}
	if w.UsableBalance.LessThan(amount) {
		return "", appErrors.ErrInsufficientFunds
	}

	balance := w.Balance
	usable := w.UsableBalance.Sub(amount)
	status := models.TransactionStatusPending
	if autoApproved(amount) {
		balance = balance.Sub(amount)
		status = models.TransactionStatusApproved
	}

	if err := setBalances(w, balance, usable); err != nil {
		return "", err
	}
	return status, nil
}

// applyDecision settles a PENDING transaction of w.
func applyDecision(w *models.Wallet, tx *models.Transaction, decision models.TransactionStatus) error {
	switch tx.Status {
	case models.TransactionStatusApproved:
		return appErrors.ErrTransactionAlreadyApproved
	case models.TransactionStatusDenied:
		return appErrors.ErrTransactionAlreadyDenied
	}
	if !decision.IsTerminal() {
		return appErrors.ErrInvalidDecision
	}

	balance, usable := w.Balance, w.UsableBalance
	switch {
	case tx.Type == models.TransactionTypeDeposit && decision == models.TransactionStatusApproved:
		usable = usable.Add(tx.Amount)
	case tx.Type == models.TransactionTypeDeposit && decision == models.TransactionStatusDenied:
		balance = balance.Sub(tx.Amount)
	case tx.Type == models.TransactionTypeWithdraw && decision == models.TransactionStatusApproved:
		balance = balance.Sub(tx.Amount)
	case tx.Type == models.TransactionTypeWithdraw && decision == models.TransactionStatusDenied:
		usable = usable.Add(tx.Amount)
	default:
		return fmt.Errorf("unknown transaction type %q", tx.Type)
	}

	if err := setBalances(w, balance, usable); err != nil {
		return err
	}
	tx.Status = decision
	return nil
}

// setBalances refuses any state with a negative balance or with more usable
// money than the gross balance.
func setBalances(w *models.Wallet, balance, usable decimal.Decimal) error {
	if balance.IsNegative() || usable.IsNegative() || usable.GreaterThan(balance) {
		return appErrors.ErrBalanceInvariant
	}
	w.Balance = balance
	w.UsableBalance = usable
	return nil
}
