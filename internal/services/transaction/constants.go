package transaction

import "github.com/shopspring/decimal"

// ApprovalThreshold is the smallest amount that is held PENDING instead of
// being approved on creation.
const ApprovalThreshold = 1000

var approvalThreshold = decimal.NewFromInt(ApprovalThreshold)

// Capabilities named in WalletNotAvailable errors.
const (
	capabilityWithdraw = "Withdraw"
	capabilityShopping = "Shopping"
)
