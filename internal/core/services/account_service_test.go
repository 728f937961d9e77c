package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockTxnRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Cuenta Nomina",
		AccountType: domain.Bank,
		Balance:     decimal.NewFromInt(1500),
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(req.AccountType, createdAccount.AccountType)
	suite.True(createdAccount.Balance.Equal(req.Balance))
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)
	suite.WithinDuration(time.Now(), createdAccount.LastUpdatedAt, time.Second)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_EmptyName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "   ",
		AccountType: domain.Cash,
	}

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Cuenta Error",
		AccountType: domain.Savings,
	}

	expectedErr := assert.AnError
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, expectedErr)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	expectedAccount := &domain.Account{
		AccountID:   testID,
		Name:        "Efectivo",
		AccountType: domain.Cash,
		Balance:     decimal.NewFromInt(200),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(expectedAccount, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(expectedAccount, account)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_AttachesTransactions() {
	ctx := context.Background()
	accountA := domain.Account{AccountID: uuid.NewString(), Name: "Banco", AccountType: domain.Bank}
	accountB := domain.Account{AccountID: uuid.NewString(), Name: "Efectivo", AccountType: domain.Cash}

	txnsForA := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: accountA.AccountID, Amount: decimal.NewFromInt(50), TransactionType: domain.Income},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, 100, 0).Return([]domain.Account{accountA, accountB}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountIDs", ctx, []string{accountA.AccountID, accountB.AccountID}).
		Return(map[string][]domain.Transaction{accountA.AccountID: txnsForA}, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, 100, 0)

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 2)
	suite.Len(accounts[0].Transactions, 1)
	// Accounts without history still get an empty list, not nil
	suite.NotNil(accounts[1].Transactions)
	suite.Empty(accounts[1].Transactions)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Empty() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, 100, 0).Return([]domain.Account{}, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, 100, 0)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByAccountIDs")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_BalanceOverride() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   testID,
		Name:        "Banco",
		AccountType: domain.Bank,
		Balance:     decimal.NewFromInt(100),
	}
	newBalance := decimal.NewFromInt(999)

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == testID && acc.Balance.Equal(newBalance)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{Balance: &newBalance})

	suite.Require().NoError(err)
	suite.True(updated.Balance.Equal(newBalance))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_EmptyName() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{AccountID: testID, Name: "Banco"}
	emptyName := " "

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{Name: &emptyName})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFields() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{AccountID: testID, Name: "Banco", Balance: decimal.NewFromInt(10)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{})

	suite.Require().NoError(err)
	suite.Equal(existing, updated)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

// --- Run Suite ---

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
