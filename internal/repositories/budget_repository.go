package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// BudgetRepository handles database operations for budgets
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &BudgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database
func (r *BudgetRepository) Create(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// GetByID retrieves a budget scoped to its owner
func (r *BudgetRepository) GetByID(id, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by ID: %w", err)
	}

	return &budget, nil
}

// ListByUser retrieves all budgets for a user, most recently started first.
// The secondary id ordering keeps results stable when start dates collide.
func (r *BudgetRepository) ListByUser(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := r.db.Where("user_id = ?", userID).
		Order("start_date DESC, id ASC").
		Find(&budgets).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for user: %w", err)
	}

	return budgets, nil
}

// Update updates a budget in the database
func (r *BudgetRepository) Update(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Save(budget).Error; err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	return nil
}

// Delete removes a budget scoped to its owner
func (r *BudgetRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}
