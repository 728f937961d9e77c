package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// txWriter is the database transaction handle row writes execute against.
type txWriter = pgx.Tx

// applyLedgerWrite is the balance-mutation primitive shared by the
// transaction engine. It opens a database transaction, locks the affected
// account rows, runs the row write, applies the balance deltas and commits,
// so the write and its balance effect land both-or-neither.
func (s *transactionService) applyLedgerWrite(ctx context.Context, accountIDs []string, balanceChanges map[string]decimal.Decimal, now time.Time, rowWrite func(tx txWriter) error) error {
	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits
	defer s.transactionRepo.Rollback(ctx, tx)

	if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}

	if err := rowWrite(tx); err != nil {
		return err
	}

	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, balanceChanges, now); err != nil {
		return fmt.Errorf("failed to apply balance changes: %w", err)
	}

	return s.transactionRepo.Commit(ctx, tx)
}
