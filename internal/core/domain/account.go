package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType describes the kind of monetary account. It is informational
// only and has no effect on balance arithmetic.
type AccountType string

const (
	Bank       AccountType = "BANCO"
	Cash       AccountType = "EFECTIVO"
	CreditCard AccountType = "TARJETA"
	Investment AccountType = "INVERSION"
	Savings    AccountType = "AHORRO"
)

// Account represents a monetary account within the core domain.
// This is the primary representation used by services.
//
// Balance is stored, not derived: it starts at the initial balance given at
// creation and is thereafter mutated only by the transaction and transfer
// services, except for explicit overrides through the account update
// operation.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	Name        string          `json:"name"`      // User-defined name, unique
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"` // Signed; may go negative
	AuditFields

	// Transactions is populated on demand (e.g., when listing accounts for
	// the client) and is nil otherwise.
	Transactions []Transaction `json:"transactions,omitempty"`
}
