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
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests.
// Recording or updating an expense also re-evaluates the current budget
// and dispatches an alert email when the threshold is reached; the
// create/update itself never fails on alert or email problems.
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	alertService    services.BudgetAlertServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	alertService services.BudgetAlertServiceInterface,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		userRepo:        userRepo,
		alertService:    alertService,
		metrics:         metrics,
	}
}

// CreateTransaction records a new income or expense
// @Summary Record a transaction
// @Description Record a new income or expense. Recording an expense re-evaluates the current budget; the alert outcome is returned in the response meta.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} SuccessResponse{data=models.Transaction,meta=dto.BudgetAlertResponse} "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("transaction.created", map[string]string{"type": transaction.Type})

	response := SuccessResponse{
		Data:    transaction,
		Message: "Transaction recorded",
	}

	if transaction.IsExpense() {
		if alert := h.evaluateAlert(c, userID); alert != nil {
			response.Meta = alert
		}
	}

	return c.JSON(http.StatusCreated, response)
}

// ListTransactions retrieves filtered transaction history
// @Summary List transactions
// @Description Retrieve the authenticated user's transactions with optional type, category, date, and search filters
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by transaction type" Enums(income, expense)
// @Param category query string false "Filter by category"
// @Param startDate query string false "Filter by start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter by end date (YYYY-MM-DD)"
// @Param search query string false "Case-insensitive description search"
// @Param offset query int false "Result offset" default(0)
// @Param limit query int false "Number of results (max 100)" default(20)
// @Success 200 {object} dto.TransactionListResponse "Transaction list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return err
	}

	filters := models.TransactionFilters{
		UserID:   userID,
		Type:     query.Type,
		Category: query.Category,
		Search:   query.Search,
		Offset:   query.Offset,
		Limit:    query.Limit,
	}

	if filters.Limit == 0 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if query.StartDate != "" {
		startDate, err := dto.ParseDate(query.StartDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		filters.StartDate = &startDate
	}

	if query.EndDate != "" {
		endDate, err := dto.ParseDate(query.EndDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		filters.EndDate = &endDate
	}

	transactions, total, err := h.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction by ID
// @Description Retrieve one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	transaction, err := h.transactionRepo.GetByID(transactionID, userID)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// UpdateTransaction applies a partial update to a transaction
// @Summary Update transaction
// @Description Update fields of an existing transaction. Updates that leave the transaction an expense re-evaluate the current budget.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} SuccessResponse{data=models.Transaction,meta=dto.BudgetAlertResponse} "Transaction updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionRepo.GetByID(transactionID, userID)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return SendError(c, errors.TransactionInvalidAmount)
		}
		transaction.Amount = amount
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		transaction.Date = date
	}

	if err := h.transactionRepo.Update(transaction); err != nil {
		return SendSystemError(c, err)
	}

	response := SuccessResponse{
		Data:    transaction,
		Message: "Transaction updated",
	}

	if transaction.IsExpense() {
		if alert := h.evaluateAlert(c, userID); alert != nil {
			response.Meta = alert
		}
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Delete one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionRepo.Delete(transactionID, userID); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted",
	})
}

// evaluateAlert runs the budget alert flow after an expense write.
// Failures here never surface to the caller of the write.
func (h *TransactionHandler) evaluateAlert(c echo.Context, userID uuid.UUID) *dto.BudgetAlertResponse {
	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		return nil
	}

	now := time.Now()
	budgets, transactions, err := loadAlertInputs(h.budgetRepo, h.transactionRepo, userID, now)
	if err != nil {
		return nil
	}

	decision, err := h.alertService.EvaluateAndNotify(c.Request().Context(), user, budgets, transactions, now)
	if err != nil {
		return nil
	}

	response := toAlertResponse(decision)
	return &response
}
