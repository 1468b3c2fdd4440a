package services

import (
	"testing"
	"time"

	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetPeriodTestSuite struct {
	suite.Suite
	ownerID uuid.UUID
}

func TestBudgetPeriodSuite(t *testing.T) {
	suite.Run(t, new(BudgetPeriodTestSuite))
}

func (s *BudgetPeriodTestSuite) SetupTest() {
	s.ownerID = uuid.New()
}

func (s *BudgetPeriodTestSuite) validBudget(period string, startDate time.Time) models.Budget {
	return models.Budget{
		ID:             uuid.New(),
		UserID:         s.ownerID,
		Period:         period,
		Amount:         decimal.NewFromInt(1000),
		StartDate:      startDate,
		AlertThreshold: 80,
	}
}

func (s *BudgetPeriodTestSuite) TestComputeBudgetWindow_Weekly() {
	start := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)

	windowStart, windowEnd, err := ComputeBudgetWindow(models.BudgetPeriodWeekly, start)

	s.NoError(err)
	s.Equal(start, windowStart)
	s.Equal(time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC), windowEnd)
}

func (s *BudgetPeriodTestSuite) TestComputeBudgetWindow_Monthly() {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	windowStart, windowEnd, err := ComputeBudgetWindow(models.BudgetPeriodMonthly, start)

	s.NoError(err)
	s.Equal(start, windowStart)
	s.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), windowEnd)
}

func (s *BudgetPeriodTestSuite) TestComputeBudgetWindow_MonthlyDayOverflow() {
	// Jan 31 + 1 month normalizes through Feb 29 (2024 is a leap year)
	// into Mar 2
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	_, windowEnd, err := ComputeBudgetWindow(models.BudgetPeriodMonthly, start)

	s.NoError(err)
	s.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), windowEnd)
}

func (s *BudgetPeriodTestSuite) TestComputeBudgetWindow_ZeroDate() {
	_, _, err := ComputeBudgetWindow(models.BudgetPeriodWeekly, time.Time{})
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *BudgetPeriodTestSuite) TestComputeBudgetWindow_UnknownPeriod() {
	_, _, err := ComputeBudgetWindow("quarterly", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s.ErrorIs(err, ErrInvalidBudgetPeriod)
}

func (s *BudgetPeriodTestSuite) TestSelectCurrentBudget_SingleActive() {
	budget := s.validBudget(models.BudgetPeriodMonthly, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	selected := SelectCurrentBudget([]models.Budget{budget}, now)

	s.Require().NotNil(selected)
	s.Equal(budget.ID, selected.ID)
}

func (s *BudgetPeriodTestSuite) TestSelectCurrentBudget_MostRecentStartWins() {
	older := s.validBudget(models.BudgetPeriodMonthly, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	newer := s.validBudget(models.BudgetPeriodMonthly, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	// Order in the slice must not matter
	selected := SelectCurrentBudget([]models.Budget{older, newer}, now)
	s.Require().NotNil(selected)
	s.Equal(newer.ID, selected.ID)

	selected = SelectCurrentBudget([]models.Budget{newer, older}, now)
	s.Require().NotNil(selected)
	s.Equal(newer.ID, selected.ID)
}

func (s *BudgetPeriodTestSuite) TestSelectCurrentBudget_EqualStartKeepsFirst() {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	first := s.validBudget(models.BudgetPeriodMonthly, start)
	second := s.validBudget(models.BudgetPeriodMonthly, start)
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	selected := SelectCurrentBudget([]models.Budget{first, second}, now)

	s.Require().NotNil(selected)
	s.Equal(first.ID, selected.ID)
}

func (s *BudgetPeriodTestSuite) TestSelectCurrentBudget_BoundariesInclusive() {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	budget := s.validBudget(models.BudgetPeriodWeekly, start)

	// now exactly at the window start
	selected := SelectCurrentBudget([]models.Budget{budget}, start)
	s.NotNil(selected)

	// now exactly at the window end
	windowEnd := start.AddDate(0, 0, 7)
	selected = SelectCurrentBudget([]models.Budget{budget}, windowEnd)
	s.NotNil(selected)

	// one instant past the window end
	selected = SelectCurrentBudget([]models.Budget{budget}, windowEnd.Add(time.Nanosecond))
	s.Nil(selected)
}

func (s *BudgetPeriodTestSuite) TestSelectCurrentBudget_SkipsInvalidBudgets() {
	invalid := s.validBudget(models.BudgetPeriodMonthly, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	invalid.Amount = decimal.Zero

	valid := s.validBudget(models.BudgetPeriodMonthly, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	selected := SelectCurrentBudget([]models.Budget{invalid, valid}, now)

	s.Require().NotNil(selected)
	s.Equal(valid.ID, selected.ID)
}

func (s *BudgetPeriodTestSuite) TestSelectCurrentBudget_NoneActive() {
	budget := s.validBudget(models.BudgetPeriodWeekly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	s.Nil(SelectCurrentBudget([]models.Budget{budget}, now))
	s.Nil(SelectCurrentBudget(nil, now))
}
