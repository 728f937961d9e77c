package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/middleware"
)

// reportingService aggregates the transaction history into periodic
// income/expense/net totals. Reads run without locking, so a report issued
// concurrently with a write may observe a balance mid-update.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// daysInMonth returns the number of days in the given month of the given
// year, accounting for leap years.
func daysInMonth(year int, month int) int {
	// Day 0 of the next month normalizes to the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validateMonth(year int, month int) error {
	if year <= 0 {
		return fmt.Errorf("%w: year must be positive, got %d", apperrors.ErrValidation, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, month)
	}
	return nil
}

func (s *reportingService) buildReport(ctx context.Context, scope domain.ReportScope, from, to time.Time, includeTransactions bool) (*domain.PeriodReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	income, expense, err := s.reportingRepo.SumByTypeInRange(ctx, from, to)
	if err != nil {
		logger.Error("Failed to aggregate period totals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to aggregate period totals: %w", err)
	}

	report := &domain.PeriodReport{
		Scope:        scope,
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance:   income.Sub(expense),
	}

	if includeTransactions {
		txns, err := s.reportingRepo.FindTransactionsInRange(ctx, from, to)
		if err != nil {
			logger.Error("Failed to fetch period transactions", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to fetch period transactions: %w", err)
		}
		report.Transactions = txns
	}

	return report, nil
}

// MonthlyReport aggregates income and expense across all accounts for one
// calendar month. An empty scope yields zero totals, not an error.
func (s *reportingService) MonthlyReport(ctx context.Context, year int, month int, includeTransactions bool) (*domain.PeriodReport, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	return s.buildReport(ctx, domain.ReportScope{Year: year, Month: month}, from, to, includeTransactions)
}

// DailyReport aggregates income and expense across all accounts for one
// calendar day. The day is checked against the actual days in the requested
// month and year.
func (s *reportingService) DailyReport(ctx context.Context, year int, month int, day int, includeTransactions bool) (*domain.PeriodReport, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	if max := daysInMonth(year, month); day < 1 || day > max {
		return nil, fmt.Errorf("%w: day must be between 1 and %d for %d-%02d, got %d", apperrors.ErrValidation, max, year, month, day)
	}

	from := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	return s.buildReport(ctx, domain.ReportScope{Year: year, Month: month, Day: day}, from, to, includeTransactions)
}
