package handlers

import (
	stderrors "errors"
	"net/http"

	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/errors"
	"budgetbuddy-api/internal/models"
	"budgetbuddy-api/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SavingsGoalHandler handles savings goal endpoints
type SavingsGoalHandler struct {
	goalRepo repositories.SavingsGoalRepositoryInterface
}

// NewSavingsGoalHandler creates a new savings goal handler
func NewSavingsGoalHandler(goalRepo repositories.SavingsGoalRepositoryInterface) *SavingsGoalHandler {
	return &SavingsGoalHandler{
		goalRepo: goalRepo,
	}
}

// CreateSavingsGoal creates a new savings goal
// @Summary Create savings goal
// @Description Create a named savings target with an optional deadline
// @Tags SavingsGoals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSavingsGoalRequest true "Goal details"
// @Success 201 {object} dto.SavingsGoalResponse "Goal created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "GOAL_002 - Invalid target amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [post]
func (h *SavingsGoalHandler) CreateSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return SendError(c, errors.GoalInvalidTarget)
	}

	goal := &models.SavingsGoal{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: targetAmount,
		Description:  req.Description,
	}

	if req.Deadline != "" {
		deadline, err := dto.ParseDate(req.Deadline)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		goal.Deadline = &deadline
	}

	if err := h.goalRepo.Create(goal); err != nil {
		if stderrors.Is(err, models.ErrInvalidTargetAmount) {
			return SendError(c, errors.GoalInvalidTarget)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SavingsGoalResponse{
		Goal:     goal,
		Progress: goal.Progress(),
	})
}

// ListSavingsGoals retrieves all goals for the user
// @Summary List savings goals
// @Description Retrieve all of the authenticated user's savings goals, nearest deadline first
// @Tags SavingsGoals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SavingsGoalListResponse "Goal list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [get]
func (h *SavingsGoalHandler) ListSavingsGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goalRepo.ListByUser(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SavingsGoalListResponse{
		Goals: goals,
		Total: len(goals),
	})
}

// GetSavingsGoal retrieves a single goal by ID
// @Summary Get savings goal by ID
// @Description Retrieve one of the authenticated user's savings goals with its progress
// @Tags SavingsGoals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} dto.SavingsGoalResponse "Goal details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid goal ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [get]
func (h *SavingsGoalHandler) GetSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	goal, err := h.goalRepo.GetByID(goalID, userID)
	if err != nil {
		if err == repositories.ErrSavingsGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SavingsGoalResponse{
		Goal:     goal,
		Progress: goal.Progress(),
	})
}

// UpdateSavingsGoal applies a partial update to a goal
// @Summary Update savings goal
// @Description Update fields of an existing savings goal
// @Tags SavingsGoals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.UpdateSavingsGoalRequest true "Fields to update"
// @Success 200 {object} dto.SavingsGoalResponse "Goal updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [put]
func (h *SavingsGoalHandler) UpdateSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	var req dto.UpdateSavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalRepo.GetByID(goalID, userID)
	if err != nil {
		if err == repositories.ErrSavingsGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		targetAmount, err := decimal.NewFromString(*req.TargetAmount)
		if err != nil {
			return SendError(c, errors.GoalInvalidTarget)
		}
		goal.TargetAmount = targetAmount
	}
	if req.CurrentAmount != nil {
		currentAmount, err := decimal.NewFromString(*req.CurrentAmount)
		if err != nil || currentAmount.IsNegative() {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Current amount must be a non-negative number"))
		}
		goal.CurrentAmount = currentAmount
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			goal.Deadline = nil
		} else {
			deadline, err := dto.ParseDate(*req.Deadline)
			if err != nil {
				return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
			}
			goal.Deadline = &deadline
		}
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}

	if err := h.goalRepo.Update(goal); err != nil {
		if stderrors.Is(err, models.ErrInvalidTargetAmount) {
			return SendError(c, errors.GoalInvalidTarget)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SavingsGoalResponse{
		Goal:     goal,
		Progress: goal.Progress(),
	})
}

// Contribute adds funds toward a savings goal
// @Summary Contribute to savings goal
// @Description Add an amount to the goal's current balance. The balance may exceed the target.
// @Tags SavingsGoals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.ContributeRequest true "Contribution amount"
// @Success 200 {object} dto.SavingsGoalResponse "Contribution applied"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id}/contribute [post]
func (h *SavingsGoalHandler) Contribute(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	var req dto.ContributeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Contribution amount must be a valid number"))
	}

	goal, err := h.goalRepo.GetByID(goalID, userID)
	if err != nil {
		if err == repositories.ErrSavingsGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)

	if err := h.goalRepo.Update(goal); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SavingsGoalResponse{
		Goal:     goal,
		Progress: goal.Progress(),
	})
}

// DeleteSavingsGoal removes a goal
// @Summary Delete savings goal
// @Description Delete one of the authenticated user's savings goals
// @Tags SavingsGoals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Goal deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid goal ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [delete]
func (h *SavingsGoalHandler) DeleteSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	if err := h.goalRepo.Delete(goalID, userID); err != nil {
		if err == repositories.ErrSavingsGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Savings goal deleted",
	})
}
