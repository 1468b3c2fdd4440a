package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsSummaryResponse aggregates a user's activity over a date range.
// ExpensesByCategory only contains categories with at least one expense.
type AnalyticsSummaryResponse struct {
	StartDate          time.Time                  `json:"startDate"`
	EndDate            time.Time                  `json:"endDate"`
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	Net                decimal.Decimal            `json:"net"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	TransactionCount   int                        `json:"transactionCount"`
}
