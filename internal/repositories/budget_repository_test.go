package repositories

import (
	"testing"
	"time"

	"budgetbuddy-api/internal/database"
	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BudgetRepositoryInterface
	user *models.User
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "budgets@example.com")
}

func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetRepositorySuite) TestBudgetRepository_Create() {
	budget := &models.Budget{
		UserID:         s.user.ID,
		Period:         models.BudgetPeriodMonthly,
		Amount:         decimal.NewFromInt(1000),
		StartDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		AlertThreshold: 80,
		CategoryLimits: models.CategoryLimits{
			models.CategoryFood: decimal.NewFromInt(300),
		},
	}

	err := s.repo.Create(budget)
	s.NoError(err)
	s.NotEqual(uuid.Nil, budget.ID)
}

func (s *BudgetRepositorySuite) TestBudgetRepository_CategoryLimits_RoundTrip() {
	budget := &models.Budget{
		UserID:         s.user.ID,
		Period:         models.BudgetPeriodWeekly,
		Amount:         decimal.NewFromInt(200),
		StartDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		AlertThreshold: 80,
		CategoryLimits: models.CategoryLimits{
			models.CategoryFood:      decimal.RequireFromString("75.50"),
			models.CategoryTransport: decimal.NewFromInt(40),
		},
	}
	s.NoError(s.repo.Create(budget))

	found, err := s.repo.GetByID(budget.ID, s.user.ID)
	s.NoError(err)
	s.Len(found.CategoryLimits, 2)
	s.True(found.CategoryLimits[models.CategoryFood].Equal(decimal.RequireFromString("75.50")))
}

func (s *BudgetRepositorySuite) TestBudgetRepository_GetByID_ScopedToOwner() {
	budget := database.CreateTestBudget(s.T(), s.db, s.user.ID, models.BudgetPeriodMonthly, "500", time.Now())

	otherUser := database.CreateTestUser(s.T(), s.db, "otherbudget@example.com")
	_, err := s.repo.GetByID(budget.ID, otherUser.ID)
	s.Equal(ErrBudgetNotFound, err)
}

func (s *BudgetRepositorySuite) TestBudgetRepository_ListByUser_MostRecentFirst() {
	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	database.CreateTestBudget(s.T(), s.db, s.user.ID, models.BudgetPeriodMonthly, "400", older)
	database.CreateTestBudget(s.T(), s.db, s.user.ID, models.BudgetPeriodMonthly, "600", newer)

	budgets, err := s.repo.ListByUser(s.user.ID)
	s.NoError(err)
	s.Require().Len(budgets, 2)
	s.True(budgets[0].StartDate.Equal(newer))
	s.True(budgets[1].StartDate.Equal(older))
}

func (s *BudgetRepositorySuite) TestBudgetRepository_ListByUser_Empty() {
	budgets, err := s.repo.ListByUser(uuid.New())
	s.NoError(err)
	s.Empty(budgets)
}

func (s *BudgetRepositorySuite) TestBudgetRepository_Update() {
	budget := database.CreateTestBudget(s.T(), s.db, s.user.ID, models.BudgetPeriodWeekly, "150", time.Now())

	budget.Amount = decimal.NewFromInt(250)
	budget.AlertThreshold = 90
	err := s.repo.Update(budget)
	s.NoError(err)

	found, err := s.repo.GetByID(budget.ID, s.user.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(250)))
	s.Equal(90, found.AlertThreshold)
}

func (s *BudgetRepositorySuite) TestBudgetRepository_Delete() {
	budget := database.CreateTestBudget(s.T(), s.db, s.user.ID, models.BudgetPeriodMonthly, "500", time.Now())

	err := s.repo.Delete(budget.ID, s.user.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(budget.ID, s.user.ID)
	s.Equal(ErrBudgetNotFound, err)

	err = s.repo.Delete(uuid.New(), s.user.ID)
	s.Equal(ErrBudgetNotFound, err)
}
