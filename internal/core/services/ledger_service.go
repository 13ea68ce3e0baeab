package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/wirebank/ledger/internal/apperrors"
	"github.com/wirebank/ledger/internal/core/domain"
	portsrepo "github.com/wirebank/ledger/internal/core/ports/repositories"
	portssvc "github.com/wirebank/ledger/internal/core/ports/services"
	"github.com/wirebank/ledger/internal/dto"
)

// ledgerServiceImpl implements the LedgerSvcFacade interface. It validates
// caller input before any lock is acquired and delegates the atomic work to
// the ledger repository, which serializes all mutations.
type ledgerServiceImpl struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates a new ledger service over the given repository.
func NewLedgerService(repo portsrepo.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerServiceImpl{ledgerRepo: repo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerServiceImpl)(nil)

// validateAmount rejects non-positive amounts and amounts finer than 2
// decimal places. These are caller input errors and must never reach the
// store.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if !domain.ValidAmountPrecision(amount) {
		return fmt.Errorf("amount must have at most 2 decimal places: %w", apperrors.ErrValidation)
	}
	return nil
}

func (s *ledgerServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, requester string) (*domain.Account, error) {
	initial := req.InitialDeposit
	if initial.IsNegative() {
		return nil, fmt.Errorf("initial deposit must not be negative: %w", apperrors.ErrValidation)
	}
	if !domain.ValidAmountPrecision(initial) {
		return nil, fmt.Errorf("initial deposit must have at most 2 decimal places: %w", apperrors.ErrValidation)
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = "checking"
	}

	account, err := s.ledgerRepo.CreateAccount(ctx, requester, accountType, initial)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account")
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", account.AccountType))
	return account, nil
}

func (s *ledgerServiceImpl) GetAccount(ctx context.Context, accountID string, requester string) (*domain.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account id required: %w", apperrors.ErrValidation)
	}
	account, err := s.ledgerRepo.FindAccountByID(ctx, accountID, requester)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrForbidden) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *ledgerServiceImpl) ListAccounts(ctx context.Context, requester string) ([]domain.Account, error) {
	accounts, err := s.ledgerRepo.ListAccountsByOwner(ctx, requester)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *ledgerServiceImpl) Deposit(ctx context.Context, req dto.DepositRequest, requester string) (*domain.Transaction, error) {
	if req.AccountID == "" {
		return nil, fmt.Errorf("account id required: %w", apperrors.ErrValidation)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Deposit(ctx, req.AccountID, req.Amount, requester, req.Description)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Deposit committed",
		slog.String("tx_id", tx.TxID),
		slog.String("account_id", req.AccountID),
		slog.String("amount", req.Amount.String()))
	return tx, nil
}

func (s *ledgerServiceImpl) Withdraw(ctx context.Context, req dto.WithdrawRequest, requester string) (*domain.Transaction, error) {
	if req.AccountID == "" {
		return nil, fmt.Errorf("account id required: %w", apperrors.ErrValidation)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Withdraw(ctx, req.AccountID, req.Amount, requester, req.Description)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal committed",
		slog.String("tx_id", tx.TxID),
		slog.String("account_id", req.AccountID),
		slog.String("amount", req.Amount.String()))
	return tx, nil
}

func (s *ledgerServiceImpl) Transfer(ctx context.Context, req dto.TransferRequest, requester string) (*domain.Transaction, error) {
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return nil, fmt.Errorf("both account ids required: %w", apperrors.ErrValidation)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Transfer(ctx, req.FromAccountID, req.ToAccountID, req.Amount, requester, req.Description)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transfer committed",
		slog.String("tx_id", tx.TxID),
		slog.String("from_account", req.FromAccountID),
		slog.String("to_account", req.ToAccountID),
		slog.String("amount", req.Amount.String()))
	return tx, nil
}

func (s *ledgerServiceImpl) ListTransactions(ctx context.Context, accountID string, requester string) ([]domain.Transaction, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account id required: %w", apperrors.ErrValidation)
	}
	txs, err := s.ledgerRepo.ListTransactions(ctx, accountID, requester)
	if err != nil {
		return nil, err
	}
	return txs, nil
}
