package services

import (
	"context"
	"time"

	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingServiceInterface aggregates transaction amounts over date windows
type SpendingServiceInterface interface {
	TotalExpenses(transactions []models.Transaction, ownerID uuid.UUID, from, to time.Time) decimal.Decimal
	TotalIncome(transactions []models.Transaction, ownerID uuid.UUID, from, to time.Time) decimal.Decimal
	ExpensesByCategory(transactions []models.Transaction, ownerID uuid.UUID, from, to time.Time) map[string]decimal.Decimal
}

// BudgetAlertServiceInterface evaluates budget consumption and dispatches alerts
type BudgetAlertServiceInterface interface {
	Evaluate(budgets []models.Budget, transactions []models.Transaction, ownerID uuid.UUID, now time.Time) (*AlertDecision, error)
	EvaluateAndNotify(ctx context.Context, owner *models.User, budgets []models.Budget, transactions []models.Transaction, now time.Time) (*AlertDecision, error)
}

// NotificationServiceInterface delivers email notifications.
// Send never returns an error; delivery failures are reported in the result.
type NotificationServiceInterface interface {
	Send(ctx context.Context, msg *EmailMessage) *DispatchResult
	Enabled() bool
}

// AuthServiceInterface defines authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken string) (*dto.TokenResponse, error)
	Logout(accessToken string) error
}

// TokenServiceInterface defines JWT operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// MetricsRecorderInterface abstracts metrics recording for testability
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// CircuitBreakerInterface guards calls to external dependencies
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
}

// SampleDataServiceInterface seeds development data
type SampleDataServiceInterface interface {
	SeedUser(email, password string) (*models.User, error)
	SeedFinanceData(userID uuid.UUID, months int) error
}
