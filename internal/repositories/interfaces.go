package repositories

import (
	"time"

	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateLastLogin(userID uuid.UUID, loginTime time.Time) error
	Delete(userID uuid.UUID) error
}

// RefreshTokenRepositoryInterface defines the contract for refresh token repository operations
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id, userID uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id, userID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id, userID uuid.UUID) (*models.Budget, error)
	ListByUser(userID uuid.UUID) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id, userID uuid.UUID) error
}

// SavingsGoalRepositoryInterface defines the contract for savings goal repository operations
type SavingsGoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	GetByID(id, userID uuid.UUID) (*models.SavingsGoal, error)
	ListByUser(userID uuid.UUID) ([]models.SavingsGoal, error)
	Update(goal *models.SavingsGoal) error
	Delete(id, userID uuid.UUID) error
}

// ReminderRepositoryInterface defines the contract for reminder repository operations
type ReminderRepositoryInterface interface {
	Create(reminder *models.Reminder) error
	GetByID(id, userID uuid.UUID) (*models.Reminder, error)
	ListByUser(userID uuid.UUID, includeCompleted bool) ([]models.Reminder, error)
	Update(reminder *models.Reminder) error
	Delete(id, userID uuid.UUID) error
}
