package services

import (
	"context"

	"github.com/wirebank/ledger/internal/core/domain"
	"github.com/wirebank/ledger/internal/dto"
)

// LedgerSvcFacade is the service surface consumed by the transport layer for
// account and transaction operations. The requester argument is the
// authenticated username; handlers must never pass a caller-asserted value.
type LedgerSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, requester string) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string, requester string) (*domain.Account, error)
	ListAccounts(ctx context.Context, requester string) ([]domain.Account, error)
	Deposit(ctx context.Context, req dto.DepositRequest, requester string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, req dto.WithdrawRequest, requester string) (*domain.Transaction, error)
	Transfer(ctx context.Context, req dto.TransferRequest, requester string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, accountID string, requester string) ([]domain.Transaction, error)
}

// UserSvcFacade is the service surface for the identity registry.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// UserVerifier is the narrow view of the registry the auth middleware needs
// to reject bearers whose identity no longer exists.
type UserVerifier interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// ServiceContainer groups the service facades for route registration.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
	User   UserSvcFacade
}
