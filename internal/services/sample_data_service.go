package services

import (
	"fmt"
	"log/slog"
	"time"

	"budgetbuddy-api/internal/models"
	"budgetbuddy-api/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// expenseProfile drives plausible fake spending per category
var expenseProfiles = map[string][2]float64{
	models.CategoryFood:          {5, 60},
	models.CategoryTransport:     {2, 40},
	models.CategoryAcademic:      {10, 150},
	models.CategoryEntertainment: {5, 80},
	models.CategoryShopping:      {10, 120},
	models.CategoryUtilities:     {20, 100},
	models.CategoryHealth:        {10, 90},
	models.CategoryHousing:       {300, 900},
	models.CategoryOther:         {5, 50},
}

// SampleDataService seeds fake finance data for development environments
type SampleDataService struct {
	userRepo        repositories.UserRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	goalRepo        repositories.SavingsGoalRepositoryInterface
	reminderRepo    repositories.ReminderRepositoryInterface
	passwordService PasswordServiceInterface
	logger          *slog.Logger
}

// NewSampleDataService creates a new sample data service
func NewSampleDataService(
	userRepo repositories.UserRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	goalRepo repositories.SavingsGoalRepositoryInterface,
	reminderRepo repositories.ReminderRepositoryInterface,
	passwordService PasswordServiceInterface,
	logger *slog.Logger,
) SampleDataServiceInterface {
	return &SampleDataService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		reminderRepo:    reminderRepo,
		passwordService: passwordService,
		logger:          logger,
	}
}

// SeedUser creates a demo user, returning the existing one if the email
// is already taken
func (s *SampleDataService) SeedUser(email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return existing, nil
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         gofakeit.Name(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	s.logger.Info("seeded demo user", "email", email)

	return user, nil
}

// SeedFinanceData populates transactions, a budget, goals and reminders
// covering the last N months
func (s *SampleDataService) SeedFinanceData(userID uuid.UUID, months int) error {
	if months <= 0 {
		months = 3
	}

	now := time.Now().UTC()

	for month := 0; month < months; month++ {
		monthStart := now.AddDate(0, -month, 0)

		// Monthly income
		income := &models.Transaction{
			UserID:      userID,
			Type:        models.TransactionTypeIncome,
			Amount:      decimal.NewFromFloat(gofakeit.Float64Range(1800, 3200)).Round(2),
			Category:    models.CategoryOther,
			Description: gofakeit.JobTitle() + " salary",
			Date:        monthStart,
		}
		if err := s.transactionRepo.Create(income); err != nil {
			return fmt.Errorf("failed to seed income: %w", err)
		}

		// A spread of expenses across categories
		for category, bounds := range expenseProfiles {
			count := gofakeit.Number(1, 4)
			for i := 0; i < count; i++ {
				expense := &models.Transaction{
					UserID:      userID,
					Type:        models.TransactionTypeExpense,
					Amount:      decimal.NewFromFloat(gofakeit.Float64Range(bounds[0], bounds[1])).Round(2),
					Category:    category,
					Description: gofakeit.ProductName(),
					Date:        monthStart.AddDate(0, 0, -gofakeit.Number(0, 27)),
				}
				if err := s.transactionRepo.Create(expense); err != nil {
					return fmt.Errorf("failed to seed expense: %w", err)
				}
			}
		}
	}

	budget := &models.Budget{
		UserID:         userID,
		Period:         models.BudgetPeriodMonthly,
		Amount:         decimal.NewFromInt(1500),
		StartDate:      time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		AlertThreshold: 80,
		CategoryLimits: models.CategoryLimits{
			models.CategoryFood:    decimal.NewFromInt(400),
			models.CategoryHousing: decimal.NewFromInt(800),
		},
	}
	if err := s.budgetRepo.Create(budget); err != nil {
		return fmt.Errorf("failed to seed budget: %w", err)
	}

	deadline := now.AddDate(0, 6, 0)
	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(3000),
		CurrentAmount: decimal.NewFromFloat(gofakeit.Float64Range(100, 1500)).Round(2),
		Deadline:      &deadline,
	}
	if err := s.goalRepo.Create(goal); err != nil {
		return fmt.Errorf("failed to seed savings goal: %w", err)
	}

	rentCategory := models.CategoryHousing
	reminder := &models.Reminder{
		UserID:   userID,
		Title:    "Pay rent",
		DueDate:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0),
		Category: &rentCategory,
	}
	if err := s.reminderRepo.Create(reminder); err != nil {
		return fmt.Errorf("failed to seed reminder: %w", err)
	}

	s.logger.Info("seeded finance data", "user_id", userID, "months", months)

	return nil
}
