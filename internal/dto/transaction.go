package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates. Transactions carry a
// date without a time component.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to record an income or
// expense entry. Amount is always positive; the sign of the balance effect
// is carried by the type.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required,dgt0"`
	TransactionType domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID      *string                `json:"categoryID"`
	Description     string                 `json:"description"`
	Date            string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the fields that may be replaced on an
// existing transaction. Type and owning account are immutable.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *string          `json:"categoryID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	AccountID       string                 `json:"accountID"`
	CategoryID      string                 `json:"categoryID,omitempty"`
	CategoryName    string                 `json:"categoryName,omitempty"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"type"`
	Description     string                 `json:"description"`
	Date            string                 `json:"date"`
	TransferID      string                 `json:"transferID,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdated     time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		CategoryID:      txn.CategoryID,
		CategoryName:    txn.CategoryName,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		Description:     txn.Description,
		Date:            txn.TransactionDate.Format(DateLayout),
		TransferID:      txn.TransferID,
		CreatedAt:       txn.CreatedAt,
		LastUpdated:     txn.LastUpdatedAt,
	}
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txns))}
	for i, txn := range txns {
		res.Transactions[i] = ToTransactionResponse(&txn)
	}
	return res
}
