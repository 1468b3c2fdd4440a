package dto

import (
	"budgetbuddy-api/internal/models"
)

// Reminder Request DTOs

// CreateReminderRequest represents the request payload for creating a bill reminder
type CreateReminderRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
	DueDate     string  `json:"dueDate" validate:"required"`
	Category    *string `json:"category,omitempty" validate:"omitempty,finance_category"`
}

// UpdateReminderRequest represents the request payload for updating a reminder
type UpdateReminderRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DueDate     *string `json:"dueDate,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,finance_category"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// Reminder Response DTOs

// ReminderResponse wraps a single reminder
type ReminderResponse struct {
	Reminder *models.Reminder `json:"reminder"`
}

// ReminderListResponse represents reminders for a user
type ReminderListResponse struct {
	Reminders []models.Reminder `json:"reminders"`
	Total     int               `json:"total"`
}
