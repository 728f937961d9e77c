package repositories

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves a paginated list of transactions
	// for one account, newest first.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error)

	// FindTransactionsByAccountIDs retrieves the transactions of multiple
	// accounts keyed by account ID, newest first within each account.
	FindTransactionsByAccountIDs(ctx context.Context, accountIDs []string) (map[string][]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data. All
// writes execute within the given database transaction so the caller can
// pair them with the corresponding balance change.
type TransactionWriter interface {
	// SaveTransactionInTx inserts a single transaction row.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// SaveTransactionsInTx inserts a batch of transaction rows (transfer legs).
	SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error

	// UpdateTransactionInTx overwrites amount, description, category and date
	// of an existing transaction row.
	UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// DeleteTransactionInTx removes a transaction row.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error
}

// TransactionRepositoryWithTx combines transaction data access with database
// transaction management.
type TransactionRepositoryWithTx interface {
	TransactionReader
	TransactionWriter
	TransactionManager
}
