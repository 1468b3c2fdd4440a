package handlers

import (
	stderrors "errors"
	"net/http"

	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/errors"
	"budgetbuddy-api/internal/models"
	"budgetbuddy-api/internal/repositories"
	"budgetbuddy-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget management endpoints
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo: budgetRepo,
		metrics:    metrics,
	}
}

// CreateBudget creates a new budget window
// @Summary Create budget
// @Description Create a budget window anchored at a start date. Weekly budgets span 7 days, monthly budgets one calendar month.
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse "Budget created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_002, BUDGET_003 or BUDGET_004 - Invalid budget fields"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.BudgetInvalidAmount)
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	categoryLimits, err := parseCategoryLimits(req.CategoryLimits)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	budget := &models.Budget{
		UserID:         userID,
		Period:         req.Period,
		Amount:         amount,
		StartDate:      startDate,
		CategoryLimits: categoryLimits,
		AlertThreshold: 80,
	}

	if req.AlertThreshold != nil {
		budget.AlertThreshold = *req.AlertThreshold
	}

	if err := h.budgetRepo.Create(budget); err != nil {
		if code, ok := mapBudgetValidationError(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("budget.created", nil)

	return c.JSON(http.StatusCreated, dto.BudgetResponse{Budget: budget})
}

// ListBudgets retrieves all budgets for the user, newest start date first
// @Summary List budgets
// @Description Retrieve all of the authenticated user's budgets ordered by start date descending
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BudgetListResponse "Budget list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgets, err := h.budgetRepo.ListByUser(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

// GetBudget retrieves a single budget by ID
// @Summary Get budget by ID
// @Description Retrieve one of the authenticated user's budgets
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} dto.BudgetResponse "Budget details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid budget ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	budget, err := h.budgetRepo.GetByID(budgetID, userID)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{Budget: budget})
}

// UpdateBudget applies a partial update to a budget
// @Summary Update budget
// @Description Update fields of an existing budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse "Budget updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_002, BUDGET_003 or BUDGET_004 - Invalid budget fields"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetRepo.GetByID(budgetID, userID)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Period != nil {
		budget.Period = *req.Period
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return SendError(c, errors.BudgetInvalidAmount)
		}
		budget.Amount = amount
	}
	if req.StartDate != nil {
		startDate, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		budget.StartDate = startDate
	}
	if req.CategoryLimits != nil {
		categoryLimits, err := parseCategoryLimits(req.CategoryLimits)
		if err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		budget.CategoryLimits = categoryLimits
	}
	if req.AlertThreshold != nil {
		budget.AlertThreshold = *req.AlertThreshold
	}

	if err := h.budgetRepo.Update(budget); err != nil {
		if code, ok := mapBudgetValidationError(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{Budget: budget})
}

// DeleteBudget removes a budget
// @Summary Delete budget
// @Description Delete one of the authenticated user's budgets
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Budget deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid budget ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	if err := h.budgetRepo.Delete(budgetID, userID); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budget deleted",
	})
}

// parseCategoryLimits converts the request's string amounts into decimals
func parseCategoryLimits(limits map[string]string) (models.CategoryLimits, error) {
	if len(limits) == 0 {
		return nil, nil
	}

	parsed := make(models.CategoryLimits, len(limits))
	for category, value := range limits {
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, stderrors.New("category limit for " + category + " is not a valid amount")
		}
		parsed[category] = amount
	}

	return parsed, nil
}

// mapBudgetValidationError maps model validation failures surfaced by
// GORM hooks to their API error codes
func mapBudgetValidationError(err error) (errors.ErrorCode, bool) {
	switch {
	case stderrors.Is(err, models.ErrInvalidBudgetPeriod):
		return errors.BudgetInvalidPeriod, true
	case stderrors.Is(err, models.ErrInvalidBudgetAmount):
		return errors.BudgetInvalidAmount, true
	case stderrors.Is(err, models.ErrInvalidAlertThreshold):
		return errors.BudgetInvalidThreshold, true
	case stderrors.Is(err, models.ErrInvalidStartDate):
		return errors.ValidationInvalidDate, true
	case stderrors.Is(err, models.ErrNegativeCategoryLimit):
		return errors.ValidationOutOfRange, true
	default:
		return "", false
	}
}
