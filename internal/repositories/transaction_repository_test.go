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

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
	user *models.User
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "transactions@example.com")
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Create() {
	tx := &models.Transaction{
		UserID:      s.user.ID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(42),
		Category:    models.CategoryFood,
		Description: "groceries",
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	err := s.repo.Create(tx)
	s.NoError(err)
	s.NotEqual(uuid.Nil, tx.ID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByID_ScopedToOwner() {
	tx := database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "10.50", models.CategoryTransport, time.Now())

	found, err := s.repo.GetByID(tx.ID, s.user.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.RequireFromString("10.50")))

	// Another user must not see this transaction
	otherUser := database.CreateTestUser(s.T(), s.db, "other@example.com")
	_, err = s.repo.GetByID(tx.ID, otherUser.ID)
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByDateRange_InclusiveBounds() {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "100", models.CategoryFood, start)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "200", models.CategoryShopping, end)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "300", models.CategoryOther, end.AddDate(0, 0, 1))

	transactions, err := s.repo.GetByDateRange(s.user.ID, start, end)
	s.NoError(err)
	s.Len(transactions, 2)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetWithFilters() {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "50", models.CategoryFood, date)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "75", models.CategoryTransport, date)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeIncome, "2000", models.CategoryOther, date)

	// Filter by type
	expenses, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: s.user.ID,
		Type:   models.TransactionTypeExpense,
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(expenses, 2)

	// Filter by category
	food, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID:   s.user.ID,
		Category: models.CategoryFood,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.True(food[0].Amount.Equal(decimal.NewFromInt(50)))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetWithFilters_Search() {
	tx := &models.Transaction{
		UserID:      s.user.ID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(12),
		Category:    models.CategoryFood,
		Description: "Lunch at Campus Cafe",
		Date:        time.Now(),
	}
	s.NoError(s.repo.Create(tx))

	results, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: s.user.ID,
		Search: "campus",
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(tx.ID, results[0].ID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetWithFilters_OrderedNewestFirst() {
	older := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "10", models.CategoryFood, older)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "20", models.CategoryFood, newer)

	results, _, err := s.repo.GetWithFilters(models.TransactionFilters{UserID: s.user.ID})
	s.NoError(err)
	s.Require().Len(results, 2)
	s.True(results[0].Date.After(results[1].Date))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Update() {
	tx := database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "10", models.CategoryFood, time.Now())

	tx.Amount = decimal.NewFromInt(99)
	tx.Category = models.CategoryEntertainment
	err := s.repo.Update(tx)
	s.NoError(err)

	found, err := s.repo.GetByID(tx.ID, s.user.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(99)))
	s.Equal(models.CategoryEntertainment, found.Category)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Delete() {
	tx := database.CreateTestTransaction(s.T(), s.db, s.user.ID, models.TransactionTypeExpense, "10", models.CategoryFood, time.Now())

	err := s.repo.Delete(tx.ID, s.user.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(tx.ID, s.user.ID)
	s.Equal(ErrTransactionNotFound, err)

	err = s.repo.Delete(uuid.New(), s.user.ID)
	s.Equal(ErrTransactionNotFound, err)
}
