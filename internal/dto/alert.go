package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetAlertResponse reports the outcome of a budget alert evaluation.
// EmailSent and EmailError are only populated for notify requests.
type BudgetAlertResponse struct {
	Active      bool            `json:"active"`
	BudgetID    string          `json:"budgetId,omitempty"`
	Period      string          `json:"period,omitempty"`
	WindowStart *time.Time      `json:"windowStart,omitempty"`
	WindowEnd   *time.Time      `json:"windowEnd,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	ProgressPct decimal.Decimal `json:"progressPct"`
	Threshold   int             `json:"threshold"`
	ShouldAlert bool            `json:"shouldAlert"`
	EmailSent   *bool           `json:"emailSent,omitempty"`
	EmailError  string          `json:"emailError,omitempty"`
}
