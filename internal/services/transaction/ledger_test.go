package transaction

import (
	"testing"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertBalances(t *testing.T, w *models.Wallet, balance, usable string) {
	t.Helper()
	assert.True(t, w.Balance.Equal(dec(balance)), "balance: want %s, got %s", balance, w.Balance)
	assert.True(t, w.UsableBalance.Equal(dec(usable)), "usable: want %s, got %s", usable, w.UsableBalance)
}

func TestApplyDeposit(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		wantStatus models.TransactionStatus
		balance    string
		usable     string
	}{
		{"below threshold approves", "999.99", models.TransactionStatusApproved, "1099.99", "1099.99"},
		{"at threshold is pending", "1000", models.TransactionStatusPending, "1100", "100"},
		{"above threshold is pending", "5000", models.TransactionStatusPending, "5100", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &models.Wallet{Balance: dec("100"), UsableBalance: dec("100")}
			status, err := applyDeposit(w, dec(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assertBalances(t, w, tt.balance, tt.usable)
		})
	}
}

func TestApplyDeposit_RejectsNonPositive(t *testing.T) {
	w := &models.Wallet{Balance: dec("100"), UsableBalance: dec("100")}
	_, err := applyDeposit(w, dec("0"))
	assert.ErrorIs(t, err, appErrors.ErrInvalidAmount)
	assertBalances(t, w, "100", "100")
}

func TestApplyWithdraw(t *testing.T) {
	active := func() *models.Wallet {
		return &models.Wallet{WalletID: "w-1", ActiveForWithdraw: true, ActiveForShopping: true, Balance: dec("3000"), UsableBalance: dec("2000")}
	}

	tests := []struct {
		name       string
		wallet     func() *models.Wallet
		amount     string
		wantErr    error
		wantMsg    string
		wantStatus models.TransactionStatus
		balance    string
		usable     string
	}{
		{
			name:       "below threshold approves",
			wallet:     active,
			amount:     "500",
			wantStatus: models.TransactionStatusApproved,
			balance:    "2500",
			usable:     "1500",
		},
		{
			name:       "at threshold is pending",
			wallet:     active,
			amount:     "1000",
			wantStatus: models.TransactionStatusPending,
			balance:    "3000",
			usable:     "1000",
		},
		{
			name:       "whole usable balance",
			wallet:     active,
			amount:     "2000",
			wantStatus: models.TransactionStatusPending,
			balance:    "3000",
			usable:     "0",
		},
		{
			name:    "insufficient usable funds",
			wallet:  active,
			amount:  "2000.01",
			wantErr: appErrors.ErrInsufficientFunds,
			balance: "3000",
			usable:  "2000",
		},
		{
			name: "withdraw disabled",
			wallet: func() *models.Wallet {
				w := active()
				w.ActiveForWithdraw = false
				w.ActiveForShopping = false
				return w
			},
			amount:  "10",
			wantErr: appErrors.ErrWalletNotAvailable,
			wantMsg: "Wallet ID: w-1 is not available for: Withdraw",
			balance: "3000",
			usable:  "2000",
		},
		{
			name: "shopping disabled",
			wallet: func() *models.Wallet {
				w := active()
				w.ActiveForShopping = false
				return w
			},
			amount:  "10",
			wantErr: appErrors.ErrWalletNotAvailable,
			wantMsg: "Wallet ID: w-1 is not available for: Shopping",
			balance: "3000",
			usable:  "2000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.wallet()
			status, err := applyWithdraw(w, dec(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, status)
			}
			assertBalances(t, w, tt.balance, tt.usable)
		})
	}
}

func TestApplyDecision(t *testing.T) {
	tests := []struct {
		name     string
		txType   models.TransactionType
		decision models.TransactionStatus
		balance  string
		usable   string
	}{
		// Pending deposit of 1500 on top of 500 approved: 2000 / 500.
		{"approve deposit", models.TransactionTypeDeposit, models.TransactionStatusApproved, "2000", "2000"},
		{"deny deposit", models.TransactionTypeDeposit, models.TransactionStatusDenied, "500", "500"},
		// Pending withdraw of 1500 from 2000: 2000 / 500.
		{"approve withdraw", models.TransactionTypeWithdraw, models.TransactionStatusApproved, "500", "500"},
		{"deny withdraw", models.TransactionTypeWithdraw, models.TransactionStatusDenied, "2000", "2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &models.Wallet{Balance: dec("2000"), UsableBalance: dec("500")}
			tx := &models.Transaction{Type: tt.txType, Status: models.TransactionStatusPending, Amount: dec("1500")}

			require.NoError(t, applyDecision(w, tx, tt.decision))
			assert.Equal(t, tt.decision, tx.Status)
			assertBalances(t, w, tt.balance, tt.usable)
		})
	}
}

func TestApplyDecision_Terminal(t *testing.T) {
	tests := []struct {
		status  models.TransactionStatus
		wantErr error
		wantMsg string
	}{
		{models.TransactionStatusApproved, appErrors.ErrTransactionAlreadyApproved, "Transaction is already approved"},
		{models.TransactionStatusDenied, appErrors.ErrTransactionAlreadyDenied, "Transaction is already denied"},
	}

	for _, tt := range tests {
		for _, decision := range []models.TransactionStatus{models.TransactionStatusApproved, models.TransactionStatusDenied} {
			t.Run(string(tt.status)+"->"+string(decision), func(t *testing.T) {
				w := &models.Wallet{Balance: dec("2000"), UsableBalance: dec("500")}
				tx := &models.Transaction{Type: models.TransactionTypeDeposit, Status: tt.status, Amount: dec("1500")}

				err := applyDecision(w, tx, decision)
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.True(t, appErrors.IsKind(err, appErrors.KindConflict))
				assert.Equal(t, tt.status, tx.Status)
				assertBalances(t, w, "2000", "500")
			})
		}
	}
}

func TestApplyDecision_RejectsPendingAsDecision(t *testing.T) {
	w := &models.Wallet{Balance: dec("2000"), UsableBalance: dec("500")}
	tx := &models.Transaction{Type: models.TransactionTypeDeposit, Status: models.TransactionStatusPending, Amount: dec("1500")}

	assert.ErrorIs(t, applyDecision(w, tx, models.TransactionStatusPending), appErrors.ErrInvalidDecision)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
}

func TestSetBalances_GuardsInvariant(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		usable  string
	}{
		{"negative balance", "-1", "0"},
		{"negative usable", "10", "-1"},
		{"usable above balance", "10", "11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &models.Wallet{Balance: dec("5"), UsableBalance: dec("5")}
			err := setBalances(w, dec(tt.balance), dec(tt.usable))
			assert.ErrorIs(t, err, appErrors.ErrBalanceInvariant)
			assertBalances(t, w, "5", "5")
		})
	}
}
