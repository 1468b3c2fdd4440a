package handlers

import (
	"net/http"
	"time"

	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/errors"
	"budgetbuddy-api/internal/repositories"
	"budgetbuddy-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles spending analytics endpoints
type AnalyticsHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	spendingService services.SpendingServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	spendingService services.SpendingServiceInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		transactionRepo: transactionRepo,
		spendingService: spendingService,
	}
}

// GetSummary aggregates income, expenses, and per-category spending over
// a date range. Without explicit dates the current calendar month is used.
// @Summary Spending summary
// @Description Aggregate total income, total expenses, net, and expenses by category over a date range (defaults to the current calendar month)
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD), inclusive"
// @Param endDate query string false "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.AnalyticsSummaryResponse "Spending summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid date range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	startDate, endDate, err := parseSummaryRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionRepo.GetByDateRange(userID, startDate, endDate)
	if err != nil {
		return SendSystemError(c, err)
	}

	totalIncome := h.spendingService.TotalIncome(transactions, userID, startDate, endDate)
	totalExpenses := h.spendingService.TotalExpenses(transactions, userID, startDate, endDate)

	return c.JSON(http.StatusOK, dto.AnalyticsSummaryResponse{
		StartDate:          startDate,
		EndDate:            endDate,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		Net:                totalIncome.Sub(totalExpenses),
		ExpensesByCategory: h.spendingService.ExpensesByCategory(transactions, userID, startDate, endDate),
		TransactionCount:   len(transactions),
	})
}

// parseSummaryRange resolves the requested date range, defaulting to the
// current calendar month when no dates are supplied
func parseSummaryRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if value := c.QueryParam("startDate"); value != "" {
		parsed, err := dto.ParseDate(value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = parsed
	}

	if value := c.QueryParam("endDate"); value != "" {
		parsed, err := dto.ParseDate(value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endDate = parsed
	}

	return startDate, endDate, nil
}
