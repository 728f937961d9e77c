package dto

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyReportParams defines query parameters for the monthly report.
// Year and month default to the current date when omitted.
type MonthlyReportParams struct {
	Year                int  `form:"year" binding:"omitempty,min=1"`
	Month               int  `form:"month" binding:"omitempty,min=1,max=12"`
	IncludeTransactions bool `form:"includeTransactions,default=false"`
}

// DailyReportParams defines query parameters for the daily report. The day
// is validated against the length of the requested month.
type DailyReportParams struct {
	Year                int  `form:"year" binding:"omitempty,min=1"`
	Month               int  `form:"month" binding:"omitempty,min=1,max=12"`
	Day                 int  `form:"day" binding:"required,min=1,max=31"`
	IncludeTransactions bool `form:"includeTransactions,default=false"`
}

// PeriodReportResponse represents the monthly or daily report response.
// Day is omitted for monthly scopes.
type PeriodReportResponse struct {
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Day          int                   `json:"day,omitempty"`
	TotalIncome  decimal.Decimal       `json:"totalIncome"`
	TotalExpense decimal.Decimal       `json:"totalExpense"`
	NetBalance   decimal.Decimal       `json:"netBalance"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
}

// ToPeriodReportResponse converts a domain.PeriodReport to its response DTO.
func ToPeriodReportResponse(report *domain.PeriodReport) PeriodReportResponse {
	resp := PeriodReportResponse{
		Year:         report.Scope.Year,
		Month:        report.Scope.Month,
		Day:          report.Scope.Day,
		TotalIncome:  report.TotalIncome,
		TotalExpense: report.TotalExpense,
		NetBalance:   report.NetBalance,
	}
	if report.Transactions != nil {
		resp.Transactions = make([]TransactionResponse, len(report.Transactions))
		for i, txn := range report.Transactions {
			resp.Transactions[i] = ToTransactionResponse(&txn)
		}
	}
	return resp
}
