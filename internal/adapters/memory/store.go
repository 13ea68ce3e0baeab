package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wirebank/ledger/internal/apperrors"
	"github.com/wirebank/ledger/internal/core/domain"
	portsrepo "github.com/wirebank/ledger/internal/core/ports/repositories"
	"github.com/wirebank/ledger/internal/utils"
)

// Ensure Store satisfies both repository ports.
var (
	_ portsrepo.LedgerRepository = (*Store)(nil)
	_ portsrepo.UserRepository   = (*Store)(nil)
)

// Store is the in-memory ledger store. It owns all mutable state of the
// system: the identity registry, the accounts, and the append-only
// transaction log. A single mutex guards the whole of it — one exclusion
// domain, not per-account locks. Transfers touch two accounts at once, so a
// single critical section gives cross-account atomicity and a total order
// over the transaction log without any lock-ordering protocol.
//
// Every public method is one atomic unit of work: either the balance
// mutation and its ledger entry both commit, or neither does. Readers take
// the same lock, so no caller ever observes a partially-applied write.
type Store struct {
	mu           sync.Mutex
	users        map[string]domain.User
	accounts     map[string]*domain.Account
	transactions []domain.Transaction
	txIDs        map[string]struct{}
}

// NewStore constructs an empty store. One instance is built at process start
// and handed to every request handler; tests build fresh instances for
// isolation.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		accounts: make(map[string]*domain.Account),
		txIDs:    make(map[string]struct{}),
	}
}

// nextAccountID generates a fresh opaque account identifier (12 hex chars).
func (s *Store) nextAccountID() string {
	id, err := utils.GenerateSecureRandomString(6)
	if err != nil {
		// crypto/rand failing means the process is in no state to mint ids
		panic(fmt.Sprintf("memory: account id generation failed: %v", err))
	}
	return id
}

// nextTxID generates a fresh opaque transaction identifier.
func (s *Store) nextTxID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// appendTransaction records a committed ledger entry. Must be called with
// s.mu held. A duplicate id means the generator is broken; that is an
// unrecoverable invariant violation, not a normal error outcome.
func (s *Store) appendTransaction(tx domain.Transaction) {
	if _, dup := s.txIDs[tx.TxID]; dup {
		panic(fmt.Sprintf("memory: duplicate transaction id %s", tx.TxID))
	}
	s.txIDs[tx.TxID] = struct{}{}
	s.transactions = append(s.transactions, tx)
}

// findOwnedAccount resolves an account and enforces ownership. Must be
// called with s.mu held.
func (s *Store) findOwnedAccount(accountID, requester string) (*domain.Account, error) {
	acct, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	if acct.Owner != requester {
		return nil, fmt.Errorf("account %s is not owned by requester: %w", accountID, apperrors.ErrForbidden)
	}
	return acct, nil
}

// SaveUser stores a new user record, rejecting duplicate usernames.
func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrDuplicate)
	}
	s.users[user.Username] = user
	return nil
}

// FindUserByUsername returns a copy of the stored user record.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	return &user, nil
}

// UserExists checks the live registry. Used on every authenticated request so
// that removing a user takes effect immediately, regardless of outstanding
// bearer tokens.
func (s *Store) UserExists(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[username]
	return ok, nil
}

// CreateAccount creates an account for owner with the given opening balance.
// A positive initial deposit is recorded as a deposit ledger entry so the
// audit trail explains every unit of money in the system.
func (s *Store) CreateAccount(ctx context.Context, owner string, accountType string, initialDeposit decimal.Decimal) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	accountID := s.nextAccountID()
	if _, dup := s.accounts[accountID]; dup {
		panic(fmt.Sprintf("memory: duplicate account id %s", accountID))
	}

	now := time.Now().UTC()
	initial := domain.RoundAmount(initialDeposit)
	acct := &domain.Account{
		AccountID:   accountID,
		Owner:       owner,
		AccountType: accountType,
		Balance:     initial,
		CreatedAt:   now,
	}
	s.accounts[accountID] = acct

	if initial.IsPositive() {
		s.appendTransaction(domain.Transaction{
			TxID:         s.nextTxID(),
			Type:         domain.TxDeposit,
			Amount:       initial,
			ToAccount:    accountID,
			Timestamp:    now,
			Description:  "initial_deposit",
			BalanceAfter: acct.Balance,
		})
	}

	snapshot := *acct
	return &snapshot, nil
}

// FindAccountByID returns a snapshot of the account after enforcing ownership.
func (s *Store) FindAccountByID(ctx context.Context, accountID string, requester string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.findOwnedAccount(accountID, requester)
	if err != nil {
		return nil, err
	}
	snapshot := *acct
	return &snapshot, nil
}

// ListAccountsByOwner returns snapshots of every account owned by owner.
func (s *Store) ListAccountsByOwner(ctx context.Context, owner string) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Account{}
	for _, acct := range s.accounts {
		if acct.Owner == owner {
			out = append(out, *acct)
		}
	}
	return out, nil
}

// Deposit credits amount to the account and appends the ledger entry.
func (s *Store) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.findOwnedAccount(accountID, requester)
	if err != nil {
		return nil, err
	}

	acct.Balance = domain.RoundAmount(acct.Balance.Add(amount))
	tx := domain.Transaction{
		TxID:         s.nextTxID(),
		Type:         domain.TxDeposit,
		Amount:       amount,
		ToAccount:    accountID,
		Timestamp:    time.Now().UTC(),
		Description:  description,
		BalanceAfter: acct.Balance,
	}
	s.appendTransaction(tx)
	return &tx, nil
}

// Withdraw debits amount from the account, failing without any effect when
// the balance is insufficient. Withdrawing the exact balance is allowed and
// drives it to zero.
func (s *Store) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.findOwnedAccount(accountID, requester)
	if err != nil {
		return nil, err
	}
	if acct.Balance.LessThan(amount) {
		return nil, fmt.Errorf("account %s balance %s below %s: %w",
			accountID, acct.Balance, amount, apperrors.ErrInsufficientFunds)
	}

	acct.Balance = domain.RoundAmount(acct.Balance.Sub(amount))
	tx := domain.Transaction{
		TxID:         s.nextTxID(),
		Type:         domain.TxWithdraw,
		Amount:       amount,
		FromAccount:  accountID,
		Timestamp:    time.Now().UTC(),
		Description:  description,
		BalanceAfter: acct.Balance,
	}
	s.appendTransaction(tx)
	return &tx, nil
}

// Transfer moves amount between two accounts as one indivisible step: debit,
// credit, and the single ledger entry commit together. Only the source
// account's ownership is checked — transfers are push payments, any valid
// account may receive funds. BalanceAfter records the source account's
// post-transfer balance.
func (s *Store) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.accounts[fromAccountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", fromAccountID, apperrors.ErrNotFound)
	}
	to, ok := s.accounts[toAccountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", toAccountID, apperrors.ErrNotFound)
	}
	if from.Owner != requester {
		return nil, fmt.Errorf("account %s is not owned by requester: %w", fromAccountID, apperrors.ErrForbidden)
	}
	if from.Balance.LessThan(amount) {
		return nil, fmt.Errorf("account %s balance %s below %s: %w",
			fromAccountID, from.Balance, amount, apperrors.ErrInsufficientFunds)
	}

	from.Balance = domain.RoundAmount(from.Balance.Sub(amount))
	to.Balance = domain.RoundAmount(to.Balance.Add(amount))
	tx := domain.Transaction{
		TxID:         s.nextTxID(),
		Type:         domain.TxTransfer,
		Amount:       amount,
		FromAccount:  fromAccountID,
		ToAccount:    toAccountID,
		Timestamp:    time.Now().UTC(),
		Description:  description,
		BalanceAfter: from.Balance,
	}
	s.appendTransaction(tx)
	return &tx, nil
}

// ListTransactions returns, in original append order, every ledger entry
// touching the account. The result is a snapshot copy, not a live view.
func (s *Store) ListTransactions(ctx context.Context, accountID string, requester string) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findOwnedAccount(accountID, requester); err != nil {
		return nil, err
	}

	out := []domain.Transaction{}
	for _, tx := range s.transactions {
		if tx.Touches(accountID) {
			out = append(out, tx)
		}
	}
	return out, nil
}
