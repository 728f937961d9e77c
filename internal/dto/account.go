package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=BANCO EFECTIVO TARJETA INVERSION AHORRO"`
	Balance     decimal.Decimal    `json:"balance"` // Initial balance, defaults to zero
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
//
// Balance is a direct override of the stored balance, independent of the
// transaction ledger.
type UpdateAccountRequest struct {
	Name    *string          `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID    string                `json:"accountID"`
	Name         string                `json:"name"`
	AccountType  domain.AccountType    `json:"accountType"`
	Balance      decimal.Decimal       `json:"balance"`
	CreatedAt    time.Time             `json:"createdAt"`
	LastUpdated  time.Time             `json:"lastUpdatedAt"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:    acc.AccountID,
		Name:         acc.Name,
		AccountType:  acc.AccountType,
		Balance:      acc.Balance,
		CreatedAt:    acc.CreatedAt,
		LastUpdated:  acc.LastUpdatedAt,
		Transactions: make([]TransactionResponse, len(acc.Transactions)),
	}
	for i, txn := range acc.Transactions {
		resp.Transactions[i] = ToTransactionResponse(&txn)
	}
	return resp
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i, acc := range accounts {
		res.Accounts[i] = ToAccountResponse(&acc)
	}
	return res
}
