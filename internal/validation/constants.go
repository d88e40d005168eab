package validation

import "github.com/shopspring/decimal"

// Amount bounds are exclusive.
var (
	MinTransactionAmount = decimal.Zero
	MaxTransactionAmount = decimal.NewFromInt(10000)
)

const (
	AmountScale       = 2
	IdentityNoLength  = 11
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Messages returned to clients, keyed by json field name and rule.
var messages = map[string]string{
	"amount.required":     "Amount must be provided",
	"amount.amount_min":   "Amount must be greater than 0",
	"amount.amount_max":   "Amount must be less than 10000",
	"amount.amount_scale": "Amount must have at most 2 decimal places",

	"walletId.required":        "Wallet ID must be provided",
	"source.required":          "IBAN or payment ID must be provided",
	"destination.required":     "IBAN or payment ID must be provided",
	"sourceType.required":      "Source type must be provided",
	"sourceType.oneof":         "Source type must have value of either 'IBAN' or 'PAYMENT'",
	"destinationType.required": "Destination type must be provided",
	"destinationType.oneof":    "Destination type must have value of either 'IBAN' or 'PAYMENT'",

	"transactionId.required": "Transaction ID must be provided",
	"status.required":        "Transaction status must be provided",
	"status.oneof":           "Transaction status must be either 'APPROVED' or 'DENIED'",

	"walletName.required": "Wallet name must be provided",
	"walletName.min":      "Name must be between 2 and 50 characters",
	"walletName.max":      "Name must be between 2 and 50 characters",
	"currency.required":   "Currency must be provided",
	"currency.oneof":      "Currency must be either USD, EUR or TRY",

	"name.required":    "Name must be provided",
	"name.min":         "Name must be between 2 and 50 characters",
	"name.max":         "Name must be between 2 and 50 characters",
	"surname.required": "Surname must be provided",
	"surname.min":      "Surname must be between 2 and 50 characters",
	"surname.max":      "Surname must be between 2 and 50 characters",

	"trIdentityNo.required":       "TR Identity Number must be provided",
	"trIdentityNo.tr_identity_no": "TR Identity Number must contain exactly 11 digits",
	"email.required":              "Email address must be provided",
	"email.email":                 "Invalid email format",
	"password.required":           "Password must be provided",
	"password.strong_password":    passwordMessage,
	"refreshToken.required":       "Refresh token must be provided",
}

const passwordMessage = "Password must contain at least 8 characters and: " +
	"At least 1 lowercase letter, At least 1 uppercase letter, At least 1 digit, At least one special character"

// IdentityNoMessage is also used for the customerTrIdentityNo query parameter.
const IdentityNoMessage = "TR Identity Number must contain exactly 11 digits"
