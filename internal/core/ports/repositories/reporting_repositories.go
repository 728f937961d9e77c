package repositories

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines read-only aggregation queries over the
// transaction history. Reads run without locking; a balance mid-update may
// be observed.
type ReportingRepository interface {
	// SumByTypeInRange returns the INCOME and EXPENSE totals for
	// transactions whose date falls in [from, to). Transfer legs are
	// excluded. Empty ranges yield zero totals.
	SumByTypeInRange(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error)

	// FindTransactionsInRange returns the income/expense transactions in
	// [from, to) with resolved category names, newest first.
	FindTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}
