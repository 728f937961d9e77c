package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// ReportingSvc defines read-only aggregation of the transaction history
// into periodic income/expense/net totals.
type ReportingSvc interface {
	// MonthlyReport aggregates income and expense transactions for the
	// given calendar month across all accounts.
	MonthlyReport(ctx context.Context, year int, month int, includeTransactions bool) (*domain.PeriodReport, error)

	// DailyReport aggregates income and expense transactions for the given
	// calendar day. The day is validated against the actual days in that
	// month and year.
	DailyReport(ctx context.Context, year int, month int, day int, includeTransactions bool) (*domain.PeriodReport, error)
}
