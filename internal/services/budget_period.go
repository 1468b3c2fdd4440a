package services

import (
	"errors"
	"time"

	"budgetbuddy-api/internal/models"
)

var (
	ErrInvalidDate         = errors.New("invalid start date")
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
	ErrInvalidBudget       = errors.New("invalid budget")
)

// ComputeBudgetWindow returns the active window for a budget period
// anchored at startDate.
//
// Weekly windows span seven days, monthly windows one calendar month.
// AddDate normalizes an overflowing day-of-month into the following
// month (Jan 31 + 1 month = Mar 2 or 3), matching how the window was
// defined historically. Both boundaries are part of the window.
func ComputeBudgetWindow(period string, startDate time.Time) (time.Time, time.Time, error) {
	if startDate.IsZero() {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	switch period {
	case models.BudgetPeriodWeekly:
		return startDate, startDate.AddDate(0, 0, 7), nil
	case models.BudgetPeriodMonthly:
		return startDate, startDate.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidBudgetPeriod
	}
}

// SelectCurrentBudget picks the budget whose window contains now.
// When several windows overlap, the most recently started budget wins;
// budgets with equal start dates keep their storage order, so callers
// should pass slices ordered start_date DESC, id ASC. Budgets that fail
// validation are skipped. Returns nil when no budget is active.
func SelectCurrentBudget(budgets []models.Budget, now time.Time) *models.Budget {
	var best *models.Budget

	for i := range budgets {
		budget := &budgets[i]

		if budget.Validate() != nil {
			continue
		}

		windowStart, windowEnd, err := ComputeBudgetWindow(budget.Period, budget.StartDate)
		if err != nil {
			continue
		}

		if now.Before(windowStart) || now.After(windowEnd) {
			continue
		}

		if best == nil || budget.StartDate.After(best.StartDate) {
			best = budget
		}
	}

	return best
}
