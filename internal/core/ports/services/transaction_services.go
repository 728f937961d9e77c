package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// TransactionSvcFacade defines the income/expense transaction engine. Every
// write keeps the owning account's balance consistent with the ledger
// atomically.
type TransactionSvcFacade interface {
	// CreateTransaction records an income or expense entry and applies its
	// signed effect to the account balance.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves transactions for one account,
	// newest first.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error)

	// UpdateTransaction replaces amount/description/date/category and
	// adjusts the account balance by the signed delta.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction reverses the transaction's signed effect and removes
	// the record.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransferSvc defines the atomic two-account transfer engine.
type TransferSvc interface {
	// Transfer debits the source and credits the destination, both-or-neither.
	Transfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.TransferResult, error)
}
