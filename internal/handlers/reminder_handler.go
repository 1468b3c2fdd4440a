package handlers

import (
	"net/http"

	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/errors"
	"budgetbuddy-api/internal/models"
	"budgetbuddy-api/internal/repositories"

	"github.com/labstack/echo/v4"
)

// ReminderHandler handles bill reminder endpoints
type ReminderHandler struct {
	reminderRepo repositories.ReminderRepositoryInterface
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderRepo repositories.ReminderRepositoryInterface) *ReminderHandler {
	return &ReminderHandler{
		reminderRepo: reminderRepo,
	}
}

// CreateReminder creates a new reminder
// @Summary Create reminder
// @Description Create a dated reminder, optionally tagged with a spending category
// @Tags Reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReminderRequest true "Reminder details"
// @Success 201 {object} dto.ReminderResponse "Reminder created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	reminder := &models.Reminder{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Category:    req.Category,
	}

	if err := h.reminderRepo.Create(reminder); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ReminderResponse{Reminder: reminder})
}

// ListReminders retrieves reminders for the user, soonest due first
// @Summary List reminders
// @Description Retrieve the authenticated user's reminders ordered by due date. Completed reminders are excluded unless includeCompleted=true.
// @Tags Reminders
// @Security BearerAuth
// @Produce json
// @Param includeCompleted query bool false "Include completed reminders" default(false)
// @Success 200 {object} dto.ReminderListResponse "Reminder list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reminders [get]
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	includeCompleted := c.QueryParam("includeCompleted") == "true"

	reminders, err := h.reminderRepo.ListByUser(userID, includeCompleted)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReminderListResponse{
		Reminders: reminders,
		Total:     len(reminders),
	})
}

// GetReminder retrieves a single reminder by ID
// @Summary Get reminder by ID
// @Description Retrieve one of the authenticated user's reminders
// @Tags Reminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID (UUID)"
// @Success 200 {object} dto.ReminderResponse "Reminder details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid reminder ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "REMINDER_001 - Reminder not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reminders/{id} [get]
func (h *ReminderHandler) GetReminder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Reminder ID must be a valid UUID"))
	}

	reminder, err := h.reminderRepo.GetByID(reminderID, userID)
	if err != nil {
		if err == repositories.ErrReminderNotFound {
			return SendError(c, errors.ReminderNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReminderResponse{Reminder: reminder})
}

// UpdateReminder applies a partial update to a reminder, including
// marking it completed
// @Summary Update reminder
// @Description Update fields of an existing reminder. Set isCompleted to mark it done.
// @Tags Reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID (UUID)"
// @Param request body dto.UpdateReminderRequest true "Fields to update"
// @Success 200 {object} dto.ReminderResponse "Reminder updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "REMINDER_001 - Reminder not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Reminder ID must be a valid UUID"))
	}

	var req dto.UpdateReminderRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	reminder, err := h.reminderRepo.GetByID(reminderID, userID)
	if err != nil {
		if err == repositories.ErrReminderNotFound {
			return SendError(c, errors.ReminderNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		reminder.DueDate = dueDate
	}
	if req.Category != nil {
		reminder.Category = req.Category
	}
	if req.IsCompleted != nil {
		reminder.IsCompleted = *req.IsCompleted
	}

	if err := h.reminderRepo.Update(reminder); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReminderResponse{Reminder: reminder})
}

// DeleteReminder removes a reminder
// @Summary Delete reminder
// @Description Delete one of the authenticated user's reminders
// @Tags Reminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Reminder deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid reminder ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "REMINDER_001 - Reminder not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Reminder ID must be a valid UUID"))
	}

	if err := h.reminderRepo.Delete(reminderID, userID); err != nil {
		if err == repositories.ErrReminderNotFound {
			return SendError(c, errors.ReminderNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Reminder deleted",
	})
}
