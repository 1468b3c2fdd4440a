package handlers

import (
	"net/http"
	"time"

	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/errors"
	"budgetbuddy-api/internal/models"
	"budgetbuddy-api/internal/repositories"
	"budgetbuddy-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AlertHandler exposes budget alert evaluation endpoints
type AlertHandler struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	alertService    services.BudgetAlertServiceInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	alertService services.BudgetAlertServiceInterface,
) *AlertHandler {
	return &AlertHandler{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		alertService:    alertService,
	}
}

// GetBudgetAlert evaluates the current budget without sending email
// @Summary Evaluate budget alert
// @Description Compute budget consumption and alert status for the authenticated user's current budget window
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BudgetAlertResponse "Alert evaluation result"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /alerts/budget [get]
func (h *AlertHandler) GetBudgetAlert(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	now := time.Now()
	budgets, transactions, err := loadAlertInputs(h.budgetRepo, h.transactionRepo, userID, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	decision, err := h.alertService.Evaluate(budgets, transactions, userID, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toAlertResponse(decision))
}

// NotifyBudgetAlert evaluates the current budget and dispatches an alert
// email when the threshold is reached. Email delivery failures are
// reported in the response body, not as request failures.
// @Summary Evaluate budget alert and notify
// @Description Compute budget alert status and send an alert email when the threshold is reached
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BudgetAlertResponse "Alert evaluated, email dispatched if due"
// @Success 207 {object} dto.BudgetAlertResponse "Alert evaluated but email delivery failed"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /alerts/budget/notify [post]
func (h *AlertHandler) NotifyBudgetAlert(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	now := time.Now()
	budgets, transactions, err := loadAlertInputs(h.budgetRepo, h.transactionRepo, userID, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	decision, err := h.alertService.EvaluateAndNotify(c.Request().Context(), user, budgets, transactions, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	status := http.StatusOK
	if decision.EmailSent != nil && !*decision.EmailSent {
		// The evaluation succeeded but delivery did not
		status = http.StatusMultiStatus
	}

	return c.JSON(status, toAlertResponse(decision))
}

// loadAlertInputs fetches the owner's budgets plus the transactions
// covering the currently active budget window. Evaluation with no
// active budget needs no transactions.
func loadAlertInputs(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userID uuid.UUID,
	now time.Time,
) ([]models.Budget, []models.Transaction, error) {
	budgets, err := budgetRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, err
	}

	current := services.SelectCurrentBudget(budgets, now)
	if current == nil {
		return budgets, nil, nil
	}

	windowStart, windowEnd, err := services.ComputeBudgetWindow(current.Period, current.StartDate)
	if err != nil {
		return nil, nil, err
	}

	transactions, err := transactionRepo.GetByDateRange(userID, windowStart, windowEnd)
	if err != nil {
		return nil, nil, err
	}

	return budgets, transactions, nil
}

// toAlertResponse converts an alert decision to its API representation
func toAlertResponse(decision *services.AlertDecision) dto.BudgetAlertResponse {
	response := dto.BudgetAlertResponse{
		Active:      decision.Active,
		Amount:      decision.Amount,
		Spent:       decision.Spent,
		Remaining:   decision.Remaining,
		ProgressPct: decision.ProgressPct,
		Threshold:   decision.Threshold,
		ShouldAlert: decision.ShouldAlert,
		EmailSent:   decision.EmailSent,
		EmailError:  decision.EmailError,
	}

	if decision.Active {
		response.BudgetID = decision.BudgetID.String()
		response.Period = decision.Period
		windowStart := decision.WindowStart
		windowEnd := decision.WindowEnd
		response.WindowStart = &windowStart
		response.WindowEnd = &windowEnd
	}

	return response
}
