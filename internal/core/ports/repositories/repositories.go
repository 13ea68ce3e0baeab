package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wirebank/ledger/internal/core/domain"
)

// UserRepository defines persistence operations for the identity registry.
type UserRepository interface {
	// SaveUser stores a new user. Returns apperrors.ErrDuplicate if the
	// username is already registered.
	SaveUser(ctx context.Context, user domain.User) error
	// FindUserByUsername returns the user or apperrors.ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UserExists checks the live registry for the username.
	UserExists(ctx context.Context, username string) (bool, error)
}

// LedgerRepository defines the atomic operations of the ledger store.
// Every mutating method executes as a single indivisible unit: the balance
// mutation and its ledger entry commit together or not at all. Ownership
// (owner == requester) is re-validated inside the critical section; the
// repository never trusts a caller-asserted ownership claim.
type LedgerRepository interface {
	CreateAccount(ctx context.Context, owner string, accountType string, initialDeposit decimal.Decimal) (*domain.Account, error)
	FindAccountByID(ctx context.Context, accountID string, requester string) (*domain.Account, error)
	ListAccountsByOwner(ctx context.Context, owner string) ([]domain.Account, error)
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, accountID string, requester string) ([]domain.Transaction, error)
}
