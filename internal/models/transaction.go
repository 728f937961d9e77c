package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for storage.
type TransactionType string

const (
	Income      TransactionType = "INCOME"
	Expense     TransactionType = "EXPENSE"
	TransferIn  TransactionType = "TRANSFER_IN"
	TransferOut TransactionType = "TRANSFER_OUT"
)

// Transaction represents a money movement row affecting one account.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	CategoryID      string          `db:"category_id"` // Nullable
	Amount          decimal.Decimal `db:"amount"`      // Positive value
	TransactionType TransactionType `db:"transaction_type"`
	Description     string          `db:"description"`      // Nullable
	TransactionDate time.Time       `db:"transaction_date"` // DATE column
	TransferID      string          `db:"transfer_id"`      // Nullable; links transfer legs
	AuditFields
}
