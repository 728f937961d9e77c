package dto

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed for an atomic two-account
// balance move. Source and destination must differ; amount must be positive.
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description   string          `json:"description"`
	Date          string          `json:"date" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
}

// TransferResponse returns both persisted legs and the updated balances of
// the two affected accounts.
type TransferResponse struct {
	Outgoing    TransactionResponse `json:"outgoing"`
	Incoming    TransactionResponse `json:"incoming"`
	FromAccount AccountBalance      `json:"fromAccount"`
	ToAccount   AccountBalance      `json:"toAccount"`
}

// AccountBalance is a minimal account projection used in transfer responses.
type AccountBalance struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToTransferResponse converts a domain.TransferResult to its response DTO.
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		Outgoing: ToTransactionResponse(&res.Outgoing),
		Incoming: ToTransactionResponse(&res.Incoming),
		FromAccount: AccountBalance{
			AccountID: res.FromAccount.AccountID,
			Name:      res.FromAccount.Name,
			Balance:   res.FromAccount.Balance,
		},
		ToAccount: AccountBalance{
			AccountID: res.ToAccount.AccountID,
			Name:      res.ToAccount.Name,
			Balance:   res.ToAccount.Balance,
		},
	}
}
