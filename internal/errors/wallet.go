package errors

var (
	ErrWalletNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "WALLET_NOT_FOUND",
		Message: "wallet not found",
	}
	ErrWalletNotAvailable = &DomainError{
		Kind:    KindCapabilityDisabled,
		Code:    "WALLET_NOT_AVAILABLE",
		Message: "wallet is not available",
	}
	ErrInsufficientFunds = &DomainError{
		Kind:    KindInsufficientFunds,
		Code:    "INSUFFICIENT_FUNDS",
		Message: "Not enough funds available in the wallet",
	}
	ErrDuplicateWalletName = &DomainError{
		Kind:    KindConflict,
		Code:    "DUPLICATE_WALLET_NAME",
		Message: "wallet name is already in use",
	}
	ErrBalanceInvariant = &DomainError{
		Kind:    KindConflict,
		Code:    "BALANCE_INVARIANT",
		Message: "operation would leave the wallet balance inconsistent",
	}
)

// WalletNotFound is also returned when the wallet exists but belongs to someone else.
func WalletNotFound(identityNo, walletID string) *DomainError {
	return newError(KindNotFound, ErrWalletNotFound.Code,
		"No wallet with id: %s found belonging to the user with TR Identity Number: %s", walletID, identityNo)
}

// WalletNotAvailable names the disabled capability ("Withdraw" or "Shopping").
func WalletNotAvailable(walletID, capability string) *DomainError {
	return newError(KindCapabilityDisabled, ErrWalletNotAvailable.Code,
		"Wallet ID: %s is not available for: %s", walletID, capability)
}

func DuplicateWalletName(name string) *DomainError {
	return newError(KindConflict, ErrDuplicateWalletName.Code, "Wallet name %s is already in use", name)
}

var ErrInvalidCurrency = &DomainError{
	Kind:    KindValidation,
	Code:    "INVALID_CURRENCY",
	Message: "Currency must be either USD, EUR or TRY",
}
