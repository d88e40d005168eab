package errors

var (
	ErrTransactionNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "TRANSACTION_NOT_FOUND",
		Message: "transaction not found",
	}
	ErrTransactionAlreadyApproved = &DomainError{
		Kind:    KindConflict,
		Code:    "TRANSACTION_ALREADY_APPROVED",
		Message: "Transaction is already approved",
	}
	ErrTransactionAlreadyDenied = &DomainError{
		Kind:    KindConflict,
		Code:    "TRANSACTION_ALREADY_DENIED",
		Message: "Transaction is already denied",
	}
	ErrInvalidDecision = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_DECISION",
		Message: "Transaction status must be either 'APPROVED' or 'DENIED'",
	}
)

func TransactionNotFound(identityNo, transactionID string) *DomainError {
	return newError(KindNotFound, ErrTransactionNotFound.Code,
		"No transaction with id: %s found belonging to the user with TR Identity Number: %s", transactionID, identityNo)
}

var (
	ErrInvalidAmount = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_AMOUNT",
		Message: "Amount must be greater than 0",
	}
	ErrInvalidOppositePartyType = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_OPPOSITE_PARTY_TYPE",
		Message: "Opposite party type must have value of either 'IBAN' or 'PAYMENT'",
	}
)
