package dto

import (
	"budgetbuddy-api/internal/models"

	"github.com/shopspring/decimal"
)

// Savings Goal Request DTOs

// CreateSavingsGoalRequest represents the request payload for creating a savings goal
type CreateSavingsGoalRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	TargetAmount string `json:"targetAmount" validate:"required,decimal_amount"`
	Deadline     string `json:"deadline,omitempty"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateSavingsGoalRequest represents the request payload for updating a savings goal
type UpdateSavingsGoalRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TargetAmount  *string `json:"targetAmount,omitempty" validate:"omitempty,decimal_amount"`
	CurrentAmount *string `json:"currentAmount,omitempty"`
	Deadline      *string `json:"deadline,omitempty"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ContributeRequest adds funds toward a savings goal
type ContributeRequest struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

// Savings Goal Response DTOs

// SavingsGoalResponse wraps a single goal with its computed progress
type SavingsGoalResponse struct {
	Goal     *models.SavingsGoal `json:"goal"`
	Progress decimal.Decimal     `json:"progress"`
}

// SavingsGoalListResponse represents all goals for a user
type SavingsGoalListResponse struct {
	Goals []models.SavingsGoal `json:"goals"`
	Total int                  `json:"total"`
}
