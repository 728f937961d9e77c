package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface.
type reportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new reporting repository.
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// SumByTypeInRange returns income and expense totals for transactions whose
// date falls in [from, to). Transfer legs are excluded.
func (r *reportingRepository) SumByTypeInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN transaction_type = 'INCOME' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN transaction_type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE transaction_date >= $1
			AND transaction_date < $2
			AND transaction_type IN ('INCOME', 'EXPENSE');
	`

	var income, expense decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, from, to).Scan(&income, &expense)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying period totals: %w", err)
	}

	return income, expense, nil
}

// FindTransactionsInRange returns the income/expense transactions in
// [from, to) with resolved category names, newest first.
func (r *reportingRepository) FindTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT
			t.transaction_id, t.account_id, t.category_id, t.amount, t.transaction_type,
			t.description, t.transaction_date, t.created_at, t.last_updated_at,
			c.name AS category_name
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_date >= $1
			AND t.transaction_date < $2
			AND t.transaction_type IN ('INCOME', 'EXPENSE')
		ORDER BY t.transaction_date DESC, t.created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying period transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		var categoryID, description, categoryName sql.NullString

		if err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.AccountID,
			&categoryID,
			&modelTxn.Amount,
			&modelTxn.TransactionType,
			&description,
			&modelTxn.TransactionDate,
			&modelTxn.CreatedAt,
			&modelTxn.LastUpdatedAt,
			&categoryName,
		); err != nil {
			return nil, fmt.Errorf("error scanning period transaction row: %w", err)
		}

		modelTxn.CategoryID = categoryID.String
		modelTxn.Description = description.String

		domainTxn := toDomainTransaction(modelTxn)
		domainTxn.CategoryName = categoryName.String
		transactions = append(transactions, domainTxn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period transaction rows: %w", err)
	}

	return transactions, nil
}
