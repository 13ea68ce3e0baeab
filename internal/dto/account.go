package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wirebank/ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
// AccountType is free-form; it defaults to "checking" when omitted.
// InitialDeposit may be zero but never negative.
type CreateAccountRequest struct {
	AccountType    string          `json:"account_type"`
	InitialDeposit decimal.Decimal `json:"initial_deposit" binding:"omitempty,amountgte0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string          `json:"account_id"`
	Owner       string          `json:"owner"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Owner:       acc.Owner,
		AccountType: acc.AccountType,
		Balance:     acc.Balance,
		CreatedAt:   acc.CreatedAt,
	}
}

// ListAccountsResponse wraps the caller's accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}
