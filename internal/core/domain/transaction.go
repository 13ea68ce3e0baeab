package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TxDeposit  TransactionType = "deposit"
	TxWithdraw TransactionType = "withdraw"
	TxTransfer TransactionType = "transfer"
)

// Transaction is one immutable ledger entry recording a balance-affecting
// event. Once appended to the log it is never mutated or removed; the
// append order of the log is the authoritative audit trail.
type Transaction struct {
	TxID        string          `json:"txID"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`      // Strictly positive
	FromAccount string          `json:"fromAccount"` // Debited account; empty for deposits
	ToAccount   string          `json:"toAccount"`   // Credited account; empty for withdrawals
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	// BalanceAfter is the balance of the primary affected account immediately
	// after the operation. For transfers this is the source account.
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// Touches reports whether the transaction affects the given account,
// either as the debited or the credited side.
func (t Transaction) Touches(accountID string) bool {
	return t.FromAccount == accountID || t.ToAccount == accountID
}
