package models

// Role is the authorization level of a customer.
type Role string

const (
	RoleBasic Role = "BASIC"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleBasic || r == RoleAdmin
}

// Currency is the closed set of wallet currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyTRY Currency = "TRY"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyTRY:
		return true
	}
	return false
}

// ParseCurrency converts a wire value into a Currency.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(s)
	return c, c.Valid()
}

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdraw
}

// TransactionStatus moves PENDING -> APPROVED or PENDING -> DENIED exactly once.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusDenied   TransactionStatus = "DENIED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusDenied:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusApproved || s == TransactionStatusDenied
}

// ParseDecision accepts only the client-selectable target states.
func ParseDecision(s string) (TransactionStatus, bool) {
	st := TransactionStatus(s)
	return st, st.IsTerminal()
}

// OppositePartyType identifies what kind of counterparty a transaction has.
type OppositePartyType string

const (
	OppositePartyIBAN    OppositePartyType = "IBAN"
	OppositePartyPayment OppositePartyType = "PAYMENT"
)

func (o OppositePartyType) Valid() bool {
	return o == OppositePartyIBAN || o == OppositePartyPayment
}

// ParseOppositePartyType converts a wire value into an OppositePartyType.
func ParseOppositePartyType(s string) (OppositePartyType, bool) {
	o := OppositePartyType(s)
	return o, o.Valid()
}
