package services

import (
	"time"

	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingService aggregates transaction amounts over inclusive date
// windows. It operates on in-memory slices so the same logic serves
// alert evaluation and analytics regardless of how the transactions
// were loaded.
type SpendingService struct{}

// NewSpendingService creates a new spending service
func NewSpendingService() SpendingServiceInterface {
	return &SpendingService{}
}

// TotalExpenses sums expense amounts for the owner inside [from, to].
// Both boundary dates count. An empty selection sums to zero.
func (s *SpendingService) TotalExpenses(transactions []models.Transaction, ownerID uuid.UUID, from, to time.Time) decimal.Decimal {
	return s.sumByType(transactions, ownerID, models.TransactionTypeExpense, from, to)
}

// TotalIncome sums income amounts for the owner inside [from, to]
func (s *SpendingService) TotalIncome(transactions []models.Transaction, ownerID uuid.UUID, from, to time.Time) decimal.Decimal {
	return s.sumByType(transactions, ownerID, models.TransactionTypeIncome, from, to)
}

// ExpensesByCategory groups the owner's expense totals per category.
// Categories without any expense in the window are absent from the map.
func (s *SpendingService) ExpensesByCategory(transactions []models.Transaction, ownerID uuid.UUID, from, to time.Time) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)

	for i := range transactions {
		tx := &transactions[i]
		if !s.matches(tx, ownerID, models.TransactionTypeExpense, from, to) {
			continue
		}

		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	return totals
}

func (s *SpendingService) sumByType(transactions []models.Transaction, ownerID uuid.UUID, txType string, from, to time.Time) decimal.Decimal {
	total := decimal.Zero

	for i := range transactions {
		tx := &transactions[i]
		if !s.matches(tx, ownerID, txType, from, to) {
			continue
		}

		total = total.Add(tx.Amount)
	}

	return total
}

func (s *SpendingService) matches(tx *models.Transaction, ownerID uuid.UUID, txType string, from, to time.Time) bool {
	if tx.UserID != ownerID || tx.Type != txType {
		return false
	}

	if tx.Date.Before(from) || tx.Date.After(to) {
		return false
	}

	return true
}
