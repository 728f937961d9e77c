package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		CategoryID:      d.CategoryID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		TransferID:      d.TransferID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		TransferID:      m.TransferID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// nullable converts an optional string to its sql representation.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

const transactionColumns = `transaction_id, account_id, category_id, amount, transaction_type, description, transaction_date, transfer_id, created_at, last_updated_at`

func scanTransactionRow(row pgx.Row) (models.Transaction, error) {
	var modelTxn models.Transaction
	var categoryID, description, transferID sql.NullString

	err := row.Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&categoryID,
		&modelTxn.Amount,
		&modelTxn.TransactionType,
		&description,
		&modelTxn.TransactionDate,
		&transferID,
		&modelTxn.CreatedAt,
		&modelTxn.LastUpdatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}

	modelTxn.CategoryID = categoryID.String
	modelTxn.Description = description.String
	modelTxn.TransferID = transferID.String
	return modelTxn, nil
}

// SaveTransactionInTx inserts a single transaction row within a transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.AccountID,
		nullable(modelTxn.CategoryID),
		modelTxn.Amount,
		modelTxn.TransactionType,
		nullable(modelTxn.Description),
		modelTxn.TransactionDate,
		nullable(modelTxn.TransferID),
		modelTxn.CreatedAt,
		modelTxn.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return fmt.Errorf("%w: referenced account or category does not exist", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// SaveTransactionsInTx inserts a batch of transaction rows (transfer legs).
func (r *PgxTransactionRepository) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	batch := &pgx.Batch{}
	for _, txn := range txns {
		modelTxn := toModelTransaction(txn)
		batch.Queue(query,
			modelTxn.TransactionID,
			modelTxn.AccountID,
			nullable(modelTxn.CategoryID),
			modelTxn.Amount,
			modelTxn.TransactionType,
			nullable(modelTxn.Description),
			modelTxn.TransactionDate,
			nullable(modelTxn.TransferID),
			modelTxn.CreatedAt,
			modelTxn.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute transaction insert batch: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	modelTxn, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := toDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactionsByAccount retrieves a paginated list of transactions for one account, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		modelTxn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for account %s: %w", accountID, err)
		}
		transactions = append(transactions, toDomainTransaction(modelTxn))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for account %s: %w", accountID, rows.Err())
	}

	return transactions, nil
}

// FindTransactionsByAccountIDs retrieves the transactions of multiple accounts keyed by account ID.
func (r *PgxTransactionRepository) FindTransactionsByAccountIDs(ctx context.Context, accountIDs []string) (map[string][]domain.Transaction, error) {
	if len(accountIDs) == 0 {
		return map[string][]domain.Transaction{}, nil
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = ANY($1)
		ORDER BY transaction_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by account IDs: %w", err)
	}
	defer rows.Close()

	transactionsMap := make(map[string][]domain.Transaction)
	for rows.Next() {
		modelTxn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row during batch fetch: %w", err)
		}
		domainTxn := toDomainTransaction(modelTxn)
		transactionsMap[domainTxn.AccountID] = append(transactionsMap[domainTxn.AccountID], domainTxn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows during batch fetch: %w", err)
	}

	return transactionsMap, nil
}

// UpdateTransactionInTx overwrites the mutable fields of an existing transaction row.
func (r *PgxTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET amount = $2, description = $3, transaction_date = $4, category_id = $5, last_updated_at = $6
		WHERE transaction_id = $1;
	`
	// transaction_type and account_id are immutable by contract.

	cmdTag, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Amount,
		nullable(modelTxn.Description),
		modelTxn.TransactionDate,
		nullable(modelTxn.CategoryID),
		modelTxn.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: referenced category does not exist", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to execute update transaction %s: %w", modelTxn.TransactionID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeleteTransactionInTx removes a transaction row within a transaction.
func (r *PgxTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`

	cmdTag, err := tx.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to execute delete transaction %s: %w", transactionID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
