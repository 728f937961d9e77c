package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/handlers"
	"github.com/fintrack/fintrack_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)

	// IsProduction skips the swagger routes; only the account service is
	// backed by a mock, the rest stay nil and must not be reached.
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	})
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	body := dto.CreateAccountRequest{
		Name:        "Cuenta Nomina",
		AccountType: domain.Bank,
		Balance:     decimal.NewFromInt(100),
	}
	expected := &domain.Account{
		AccountID:   uuid.NewString(),
		Name:        body.Name,
		AccountType: body.AccountType,
		Balance:     body.Balance,
		AuditFields: domain.AuditFields{CreatedAt: time.Now(), LastUpdatedAt: time.Now()},
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Name == body.Name && req.AccountType == body.AccountType
	})).Return(expected, nil).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(expected.AccountID, responseBody.AccountID)
	suite.Equal(expected.Name, responseBody.Name)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidAccountType() {
	payload := []byte(`{"name":"Cuenta","accountType":"CHECKING"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateName() {
	body := dto.CreateAccountRequest{Name: "Cuenta Nomina", AccountType: domain.Bank}

	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, body.Name)).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	accounts := []domain.Account{
		{
			AccountID:    uuid.NewString(),
			Name:         "Banco",
			AccountType:  domain.Bank,
			Balance:      decimal.NewFromInt(500),
			Transactions: []domain.Transaction{{TransactionID: uuid.NewString(), Amount: decimal.NewFromInt(500), TransactionType: domain.Income}},
		},
		{
			AccountID:    uuid.NewString(),
			Name:         "Efectivo",
			AccountType:  domain.Cash,
			Transactions: []domain.Transaction{},
		},
	}

	suite.mockAccountService.On("ListAccounts", mock.Anything, 10, 0).Return(accounts, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts?limit=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListAccountsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Require().Len(responseBody.Accounts, 2)
	suite.Len(responseBody.Accounts[0].Transactions, 1)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_Success() {
	accountID := uuid.NewString()
	newBalance := decimal.NewFromInt(750)
	updated := &domain.Account{
		AccountID:   accountID,
		Name:        "Banco",
		AccountType: domain.Bank,
		Balance:     newBalance,
	}

	suite.mockAccountService.On("UpdateAccount", mock.Anything, accountID, mock.MatchedBy(func(req dto.UpdateAccountRequest) bool {
		return req.Balance != nil && req.Balance.Equal(newBalance) && req.Name == nil
	})).Return(updated, nil).Once()

	payload := []byte(`{"balance":"750"}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/accounts/"+accountID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
