package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType for storage.
type AccountType string

const (
	Bank       AccountType = "BANCO"
	Cash       AccountType = "EFECTIVO"
	CreditCard AccountType = "TARJETA"
	Investment AccountType = "INVERSION"
	Savings    AccountType = "AHORRO"
)

// Account represents a monetary account row.
type Account struct {
	AccountID   string          `db:"account_id"`
	Name        string          `db:"name"` // Unique
	AccountType AccountType     `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
