package domain

import "github.com/shopspring/decimal"

// RoundAmount normalizes a monetary amount to the ledger's 2-decimal-place
// precision. Balances are rounded with this after every mutating step rather
// than kept as an unrounded running total, so repeated small mutations round
// exactly the same way the audit trail shows them.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ValidAmountPrecision reports whether the amount carries at most 2
// fractional digits of significance.
func ValidAmountPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
