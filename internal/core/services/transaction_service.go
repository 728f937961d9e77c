package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountNotPositive = errors.New("transaction amount must be positive")
	ErrTransferImmutable = errors.New("transfer legs cannot be edited directly")
)

// transactionService provides the income/expense transaction engine. Every
// balance-touching write locks the affected account row and applies the
// signed effect within the same database transaction, so concurrent effects
// on one account compose by addition.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryWithTx
	accountRepo     portsrepo.AccountRepositoryFacade
	categoryRepo    portsrepo.CategoryRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade, categoryRepo portsrepo.CategoryRepository) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records an income or expense entry and applies its
// signed effect to the owning account, atomically.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	if req.TransactionType != domain.Income && req.TransactionType != domain.Expense {
		return nil, fmt.Errorf("%w: transaction type must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	txnDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction date is required in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	categoryID := ""
	if req.CategoryID != nil && *req.CategoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, *req.CategoryID)
			}
			return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategoryID, err)
		}
		categoryID = *req.CategoryID
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       req.AccountID,
		CategoryID:      categoryID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err = s.applyLedgerWrite(ctx, []string{req.AccountID}, map[string]decimal.Decimal{req.AccountID: txn.SignedEffect()}, now, func(tx txWriter) error {
		return s.transactionRepo.SaveTransactionInTx(ctx, tx, txn)
	})
	if err != nil {
		logger.Error("Failed to create transaction", slog.String("account_id", req.AccountID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

// GetTransactionByID retrieves a specific transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactionsByAccount retrieves transactions for one account, newest first.
func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, limit, offset)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	return txns, nil
}

// UpdateTransaction replaces amount/description/date/category and adjusts
// the owning account's balance by the signed delta, atomically. The type and
// the owning account are immutable; transfer legs are not editable.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction for update", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	if existing.IsTransferLeg() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransferImmutable)
	}

	updated := *existing
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
		}
		updated.Amount = *req.Amount
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Date != nil {
		txnDate, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction date must use YYYY-MM-DD format", apperrors.ErrValidation)
		}
		updated.TransactionDate = txnDate
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			updated.CategoryID = ""
		} else {
			if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, *req.CategoryID)
				}
				return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategoryID, err)
			}
			updated.CategoryID = *req.CategoryID
		}
	}

	now := time.Now().UTC()
	updated.LastUpdatedAt = now

	// Remove the old effect, apply the new one. The type is unchanged, so
	// the delta reduces to new signed amount minus old signed amount.
	delta := updated.SignedEffect().Sub(existing.SignedEffect())

	err = s.applyLedgerWrite(ctx, []string{existing.AccountID}, map[string]decimal.Decimal{existing.AccountID: delta}, now, func(tx txWriter) error {
		return s.transactionRepo.UpdateTransactionInTx(ctx, tx, updated)
	})
	if err != nil {
		logger.Error("Failed to update transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transaction updated successfully",
		slog.String("transaction_id", transactionID),
		slog.String("balance_delta", delta.String()))
	return &updated, nil
}

// DeleteTransaction reverses the transaction's signed effect on its account
// and removes the record, atomically. Transfer legs can be deleted too; the
// reversal restores only that leg's side.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction for delete", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return err
	}

	now := time.Now().UTC()
	reversal := existing.SignedEffect().Neg()

	err = s.applyLedgerWrite(ctx, []string{existing.AccountID}, map[string]decimal.Decimal{existing.AccountID: reversal}, now, func(tx txWriter) error {
		return s.transactionRepo.DeleteTransactionInTx(ctx, tx, transactionID)
	})
	if err != nil {
		logger.Error("Failed to delete transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Transaction deleted successfully",
		slog.String("transaction_id", transactionID),
		slog.String("balance_delta", reversal.String()))
	return nil
}
