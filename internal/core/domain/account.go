package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a monetary balance owned by exactly one user.
// The balance is kept as a fixed-point decimal and is never negative;
// that invariant is enforced at the point of withdrawal/transfer.
type Account struct {
	AccountID   string          `json:"accountID"`   // Opaque store-generated identifier
	Owner       string          `json:"owner"`       // Username of the owning user
	AccountType string          `json:"accountType"` // Free-form, e.g. "checking", "savings"
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
}
