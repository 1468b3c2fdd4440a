package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
)

// ReminderRepository handles database operations for bill reminders
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) ReminderRepositoryInterface {
	return &ReminderRepository{
		db: db,
	}
}

// Create creates a new reminder in the database
func (r *ReminderRepository) Create(reminder *models.Reminder) error {
	if reminder == nil {
		return errors.New("reminder cannot be nil")
	}

	if err := r.db.Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

// GetByID retrieves a reminder scoped to its owner
func (r *ReminderRepository) GetByID(id, userID uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder by ID: %w", err)
	}

	return &reminder, nil
}

// ListByUser retrieves reminders for a user ordered by due date.
// Completed reminders are excluded unless includeCompleted is set.
func (r *ReminderRepository) ListByUser(userID uuid.UUID, includeCompleted bool) ([]models.Reminder, error) {
	var reminders []models.Reminder

	query := r.db.Where("user_id = ?", userID)
	if !includeCompleted {
		query = query.Where("is_completed = ?", false)
	}

	err := query.Order("due_date ASC").Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders for user: %w", err)
	}

	return reminders, nil
}

// Update updates a reminder in the database
func (r *ReminderRepository) Update(reminder *models.Reminder) error {
	if reminder == nil {
		return errors.New("reminder cannot be nil")
	}

	if err := r.db.Save(reminder).Error; err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	return nil
}

// Delete removes a reminder scoped to its owner
func (r *ReminderRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Reminder{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}
