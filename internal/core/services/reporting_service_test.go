package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestMonthlyReport_Success() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumByTypeInRange", ctx, from, to).
		Return(decimal.NewFromInt(300), decimal.NewFromInt(120), nil).Once()

	report, err := suite.service.MonthlyReport(ctx, 2025, 6, false)

	suite.Require().NoError(err)
	suite.Equal(2025, report.Scope.Year)
	suite.Equal(6, report.Scope.Month)
	suite.Zero(report.Scope.Day)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(300)))
	suite.True(report.TotalExpense.Equal(decimal.NewFromInt(120)))
	suite.True(report.NetBalance.Equal(decimal.NewFromInt(180)))
	suite.Nil(report.Transactions)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_EmptyScopeYieldsZeros() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumByTypeInRange", ctx, from, to).
		Return(decimal.Zero, decimal.Zero, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, 2025, 1, false)

	suite.Require().NoError(err)
	suite.True(report.TotalIncome.IsZero())
	suite.True(report.TotalExpense.IsZero())
	suite.True(report.NetBalance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_IncludeTransactions() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), Amount: decimal.NewFromInt(300), TransactionType: domain.Income},
	}

	suite.mockRepo.On("SumByTypeInRange", ctx, from, to).
		Return(decimal.NewFromInt(300), decimal.Zero, nil).Once()
	suite.mockRepo.On("FindTransactionsInRange", ctx, from, to).Return(txns, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, 2025, 6, true)

	suite.Require().NoError(err)
	suite.Len(report.Transactions, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_InvalidMonth() {
	ctx := context.Background()

	report, err := suite.service.MonthlyReport(ctx, 2025, 13, false)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumByTypeInRange")
}

func (suite *ReportingServiceTestSuite) TestDailyReport_Success() {
	ctx := context.Background()
	from := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumByTypeInRange", ctx, from, to).
		Return(decimal.NewFromInt(40), decimal.NewFromInt(15), nil).Once()

	report, err := suite.service.DailyReport(ctx, 2025, 6, 15, false)

	suite.Require().NoError(err)
	suite.Equal(15, report.Scope.Day)
	suite.True(report.NetBalance.Equal(decimal.NewFromInt(25)))
}

func (suite *ReportingServiceTestSuite) TestDailyReport_DayOutOfRangeForMonth() {
	ctx := context.Background()

	// February 2025 has 28 days
	report, err := suite.service.DailyReport(ctx, 2025, 2, 30, false)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumByTypeInRange")
}

func (suite *ReportingServiceTestSuite) TestDailyReport_LeapDayValid() {
	ctx := context.Background()
	from := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumByTypeInRange", ctx, from, to).
		Return(decimal.Zero, decimal.Zero, nil).Once()

	report, err := suite.service.DailyReport(ctx, 2024, 2, 29, false)

	suite.Require().NoError(err)
	suite.Equal(29, report.Scope.Day)
}

func (suite *ReportingServiceTestSuite) TestDailyReport_LeapDayInvalidInNonLeapYear() {
	ctx := context.Background()

	report, err := suite.service.DailyReport(ctx, 2025, 2, 29, false)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Suite ---

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
