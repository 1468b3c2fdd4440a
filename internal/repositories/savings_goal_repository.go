package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSavingsGoalNotFound = errors.New("savings goal not found")
)

// SavingsGoalRepository handles database operations for savings goals
type SavingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository
func NewSavingsGoalRepository(db *gorm.DB) SavingsGoalRepositoryInterface {
	return &SavingsGoalRepository{
		db: db,
	}
}

// Create creates a new savings goal in the database
func (r *SavingsGoalRepository) Create(goal *models.SavingsGoal) error {
	if goal == nil {
		return errors.New("savings goal cannot be nil")
	}

	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}

	return nil
}

// GetByID retrieves a savings goal scoped to its owner
func (r *SavingsGoalRepository) GetByID(id, userID uuid.UUID) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavingsGoalNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal by ID: %w", err)
	}

	return &goal, nil
}

// ListByUser retrieves all savings goals for a user, nearest deadline first
func (r *SavingsGoalRepository) ListByUser(userID uuid.UUID) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal

	err := r.db.Where("user_id = ?", userID).
		Order("deadline ASC NULLS LAST, created_at ASC").
		Find(&goals).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals for user: %w", err)
	}

	return goals, nil
}

// Update updates a savings goal in the database
func (r *SavingsGoalRepository) Update(goal *models.SavingsGoal) error {
	if goal == nil {
		return errors.New("savings goal cannot be nil")
	}

	if err := r.db.Save(goal).Error; err != nil {
		return fmt.Errorf("failed to update savings goal: %w", err)
	}

	return nil
}

// Delete removes a savings goal scoped to its owner
func (r *SavingsGoalRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavingsGoal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete savings goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavingsGoalNotFound
	}

	return nil
}
