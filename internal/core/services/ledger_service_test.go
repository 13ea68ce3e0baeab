package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wirebank/ledger/internal/apperrors"
	"github.com/wirebank/ledger/internal/core/domain"
	portssvc "github.com/wirebank/ledger/internal/core/ports/services"
	"github.com/wirebank/ledger/internal/dto"
)

// MockLedgerRepository is a mock for the LedgerRepository interface.
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateAccount(ctx context.Context, owner string, accountType string, initialDeposit decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, owner, accountType, initialDeposit)
	if acct, ok := args.Get(0).(*domain.Account); ok {
		return acct, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) FindAccountByID(ctx context.Context, accountID string, requester string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, requester)
	if acct, ok := args.Get(0).(*domain.Account); ok {
		return acct, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) ListAccountsByOwner(ctx context.Context, owner string) ([]domain.Account, error) {
	args := m.Called(ctx, owner)
	if accounts, ok := args.Get(0).([]domain.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, requester, description)
	if tx, ok := args.Get(0).(*domain.Transaction); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, requester, description)
	if tx, ok := args.Get(0).(*domain.Transaction); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, requester string, description string) (*domain.Transaction, error) {
	args := m.Called(ctx, fromAccountID, toAccountID, amount, requester, description)
	if tx, ok := args.Get(0).(*domain.Transaction); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, accountID string, requester string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, requester)
	if txs, ok := args.Get(0).([]domain.Transaction); ok {
		return txs, args.Error(1)
	}
	return nil, args.Error(1)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = NewLedgerService(suite.mockRepo)
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_Success() {
	initial := decimal.NewFromInt(100)
	expected := &domain.Account{AccountID: "abc123def456", Owner: "alice", AccountType: "savings", Balance: initial, CreatedAt: time.Now()}
	suite.mockRepo.On("CreateAccount", suite.ctx, "alice", "savings", initial).Return(expected, nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{AccountType: "savings", InitialDeposit: initial}, "alice")

	suite.NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_DefaultsToChecking() {
	suite.mockRepo.On("CreateAccount", suite.ctx, "alice", "checking", decimal.Decimal{}).
		Return(&domain.Account{AccountID: "abc123def456", Owner: "alice", AccountType: "checking"}, nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{}, "alice")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_NegativeInitialDeposit() {
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{InitialDeposit: decimal.NewFromInt(-1)}, "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_TooFineInitialDeposit() {
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{InitialDeposit: decimal.RequireFromString("0.001")}, "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *LedgerServiceTestSuite) TestDeposit_Success() {
	amount := decimal.RequireFromString("10.50")
	expected := &domain.Transaction{TxID: "tx1", Type: domain.TxDeposit, Amount: amount, BalanceAfter: amount}
	suite.mockRepo.On("Deposit", suite.ctx, "acct1", amount, "alice", "paycheck").Return(expected, nil).Once()

	tx, err := suite.service.Deposit(suite.ctx, dto.DepositRequest{AccountID: "acct1", Amount: amount, Description: "paycheck"}, "alice")

	suite.NoError(err)
	suite.Equal(expected, tx)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeposit_RejectsBadAmounts() {
	testCases := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-5)},
		{"three decimal places", decimal.RequireFromString("1.005")},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Deposit(suite.ctx, dto.DepositRequest{AccountID: "acct1", Amount: tc.amount}, "alice")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "Deposit")
}

func (suite *LedgerServiceTestSuite) TestDeposit_MissingAccountID() {
	_, err := suite.service.Deposit(suite.ctx, dto.DepositRequest{Amount: decimal.NewFromInt(1)}, "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "Deposit")
}

func (suite *LedgerServiceTestSuite) TestWithdraw_RejectsBadAmounts() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5), decimal.RequireFromString("1.005")} {
		_, err := suite.service.Withdraw(suite.ctx, dto.WithdrawRequest{AccountID: "acct1", Amount: amount}, "alice")
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "Withdraw")
}

func (suite *LedgerServiceTestSuite) TestWithdraw_PassesThroughInsufficientFunds() {
	amount := decimal.NewFromInt(60)
	suite.mockRepo.On("Withdraw", suite.ctx, "acct1", amount, "alice", "").
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	_, err := suite.service.Withdraw(suite.ctx, dto.WithdrawRequest{AccountID: "acct1", Amount: amount}, "alice")

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransfer_Success() {
	amount := decimal.RequireFromString("25.00")
	expected := &domain.Transaction{TxID: "tx2", Type: domain.TxTransfer, Amount: amount, FromAccount: "a1", ToAccount: "a2"}
	suite.mockRepo.On("Transfer", suite.ctx, "a1", "a2", amount, "alice", "rent").Return(expected, nil).Once()

	tx, err := suite.service.Transfer(suite.ctx, dto.TransferRequest{FromAccountID: "a1", ToAccountID: "a2", Amount: amount, Description: "rent"}, "alice")

	suite.NoError(err)
	suite.Equal(expected, tx)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransfer_MissingAccountIDs() {
	amount := decimal.NewFromInt(1)

	_, err := suite.service.Transfer(suite.ctx, dto.TransferRequest{ToAccountID: "a2", Amount: amount}, "alice")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Transfer(suite.ctx, dto.TransferRequest{FromAccountID: "a1", Amount: amount}, "alice")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "Transfer")
}

func (suite *LedgerServiceTestSuite) TestListTransactions_MissingAccountID() {
	_, err := suite.service.ListTransactions(suite.ctx, "", "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Passthrough() {
	txs := []domain.Transaction{{TxID: "tx1", Type: domain.TxDeposit}}
	suite.mockRepo.On("ListTransactions", suite.ctx, "acct1", "alice").Return(txs, nil).Once()

	got, err := suite.service.ListTransactions(suite.ctx, "acct1", "alice")

	suite.NoError(err)
	suite.Equal(txs, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
