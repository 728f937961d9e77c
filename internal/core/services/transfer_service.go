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

var ErrSameAccount = errors.New("source and destination accounts must differ")

// transferService provides the atomic two-account transfer engine, built on
// the same locked-write primitive as the transaction engine: both legs and
// both balance updates commit together or not at all.
type transferService struct {
	transactionRepo portsrepo.TransactionRepositoryWithTx
	accountRepo     portsrepo.AccountRepositoryFacade
}

// NewTransferService creates a new TransferService.
func NewTransferService(transactionRepo portsrepo.TransactionRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade) portssvc.TransferSvc {
	return &transferService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Ensure transferService implements the portssvc.TransferSvc interface
var _ portssvc.TransferSvc = (*transferService)(nil)

// Transfer debits the source account and credits the destination account.
// No overdraft check is applied; balances may go negative.
func (s *transferService) Transfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSameAccount)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	transferDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse(dto.DateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: transfer date must use YYYY-MM-DD format", apperrors.ErrValidation)
		}
		transferDate = parsed
	}

	now := time.Now().UTC()
	transferID := uuid.NewString()

	outgoing := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       req.FromAccountID,
		Amount:          req.Amount,
		TransactionType: domain.TransferOut,
		Description:     req.Description,
		TransactionDate: transferDate,
		TransferID:      transferID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	incoming := outgoing
	incoming.TransactionID = uuid.NewString()
	incoming.AccountID = req.ToAccountID
	incoming.TransactionType = domain.TransferIn

	balanceChanges := map[string]decimal.Decimal{
		req.FromAccountID: req.Amount.Neg(),
		req.ToAccountID:   req.Amount,
	}

	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits
	defer s.transactionRepo.Rollback(ctx, tx)

	lockedAccounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{req.FromAccountID, req.ToAccountID})
	if err != nil {
		// Includes ErrNotFound when either account is missing
		return nil, err
	}

	if err := s.transactionRepo.SaveTransactionsInTx(ctx, tx, []domain.Transaction{outgoing, incoming}); err != nil {
		return nil, fmt.Errorf("failed to save transfer legs: %w", err)
	}

	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, balanceChanges, now); err != nil {
		return nil, fmt.Errorf("failed to apply transfer balance changes: %w", err)
	}

	if err := s.transactionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	fromAccount := lockedAccounts[req.FromAccountID]
	toAccount := lockedAccounts[req.ToAccountID]
	fromAccount.Balance = fromAccount.Balance.Sub(req.Amount)
	toAccount.Balance = toAccount.Balance.Add(req.Amount)

	logger.Info("Transfer completed successfully",
		slog.String("transfer_id", transferID),
		slog.String("from_account_id", req.FromAccountID),
		slog.String("to_account_id", req.ToAccountID),
		slog.String("amount", req.Amount.String()))

	return &domain.TransferResult{
		Outgoing:    outgoing,
		Incoming:    incoming,
		FromAccount: fromAccount,
		ToAccount:   toAccount,
	}, nil
}
