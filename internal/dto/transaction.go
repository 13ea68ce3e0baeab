package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wirebank/ledger/internal/core/domain"
)

// DepositRequest credits an amount to one of the caller's accounts.
type DepositRequest struct {
	AccountID   string          `json:"account_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,amountgt0"`
	Description string          `json:"description"`
}

// WithdrawRequest debits an amount from one of the caller's accounts.
type WithdrawRequest struct {
	AccountID   string          `json:"account_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,amountgt0"`
	Description string          `json:"description"`
}

// TransferRequest moves an amount from one of the caller's accounts to any
// valid destination account (push payment; destination ownership is not
// checked).
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required"`
	ToAccountID   string          `json:"to_account_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,amountgt0"`
	Description   string          `json:"description"`
}

// TransactionResponse is the wire form of one ledger entry. FromAccount and
// ToAccount are null when absent (deposits have no source, withdrawals no
// destination).
type TransactionResponse struct {
	TxID         string          `json:"tx_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	FromAccount  *string         `json:"from_account"`
	ToAccount    *string         `json:"to_account"`
	Timestamp    time.Time       `json:"timestamp"`
	Description  string          `json:"description,omitempty"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// ToTransactionResponse converts a domain.Transaction to its wire form.
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TxID:         tx.TxID,
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		FromAccount:  optionalAccount(tx.FromAccount),
		ToAccount:    optionalAccount(tx.ToAccount),
		Timestamp:    tx.Timestamp,
		Description:  tx.Description,
		BalanceAfter: tx.BalanceAfter,
	}
}

// ToListTransactionsResponse converts a snapshot of ledger entries,
// preserving append order.
func ToListTransactionsResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i := range txs {
		res[i] = ToTransactionResponse(&txs[i])
	}
	return res
}

func optionalAccount(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
