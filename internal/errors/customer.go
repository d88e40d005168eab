package errors

var (
	ErrCustomerNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "CUSTOMER_NOT_FOUND",
		Message: "customer not found",
	}
	ErrIdentityNoTaken = &DomainError{
		Kind:    KindConflict,
		Code:    "IDENTITY_NO_TAKEN",
		Message: "A customer with this TR Identity Number already exists",
	}
	ErrEmailTaken = &DomainError{
		Kind:    KindConflict,
		Code:    "EMAIL_TAKEN",
		Message: "A customer with this email address already exists",
	}
	ErrBadCredentials = &DomainError{
		Kind:    KindUnauthorized,
		Code:    "BAD_CREDENTIALS",
		Message: "Email address or password is incorrect",
	}
	ErrInvalidToken = &DomainError{
		Kind:    KindUnauthorized,
		Code:    "INVALID_TOKEN",
		Message: "invalid or expired token",
	}
	ErrAdminRequired = &DomainError{
		Kind:    KindForbidden,
		Code:    "ADMIN_REQUIRED",
		Message: "Insufficient permissions",
	}
)

func CustomerNotFound(identityNo string) *DomainError {
	return newError(KindNotFound, ErrCustomerNotFound.Code, "No customer found with the TR Identity No: %s", identityNo)
}
