package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction's balance effect.
type TransactionType string

const (
	Income      TransactionType = "INCOME"
	Expense     TransactionType = "EXPENSE"
	TransferIn  TransactionType = "TRANSFER_IN"
	TransferOut TransactionType = "TRANSFER_OUT"
)

// Transaction represents a single money movement against one account.
// Amount is always stored positive; the sign of the balance effect is
// carried by TransactionType.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	AccountID       string          `json:"accountID"`     // FK -> Account.AccountID (Not Null)
	CategoryID      string          `json:"categoryID"`    // Nullable FK -> Category.CategoryID
	Amount          decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"`     // Nullable
	TransactionDate time.Time       `json:"transactionDate"` // Calendar date, no time component
	TransferID      string          `json:"transferID"`      // Set only on transfer legs; shared by the pair
	AuditFields

	// CategoryName is resolved for display (reports) and not persisted on
	// the transaction row.
	CategoryName string `json:"categoryName,omitempty"`
}

// SignedEffect returns the balance delta this transaction contributes to its
// account: positive for INCOME/TRANSFER_IN, negative for EXPENSE/TRANSFER_OUT.
func (t Transaction) SignedEffect() decimal.Decimal {
	switch t.TransactionType {
	case Income, TransferIn:
		return t.Amount
	case Expense, TransferOut:
		return t.Amount.Neg()
	}
	return decimal.Zero
}

// IsTransferLeg reports whether the transaction was produced by a transfer.
func (t Transaction) IsTransferLeg() bool {
	return t.TransactionType == TransferIn || t.TransactionType == TransferOut
}
