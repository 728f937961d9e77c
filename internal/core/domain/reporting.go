package domain

import (
	"github.com/shopspring/decimal"
)

// ReportScope is the calendar window a report aggregates over: a whole
// month, or a single day when Day > 0.
type ReportScope struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day,omitempty"`
}

// PeriodReport holds aggregated income/expense totals for a report scope.
// Transfer legs are excluded from the totals.
type PeriodReport struct {
	Scope        ReportScope     `json:"scope"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"` // TotalIncome - TotalExpense

	// Transactions is populated only when the caller asked for detail.
	Transactions []Transaction `json:"transactions,omitempty"`
}
