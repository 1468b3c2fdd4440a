package dto

import (
	"budgetbuddy-api/internal/models"
)

// Budget Request DTOs

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	Period         string            `json:"period" validate:"required,budget_period"`
	Amount         string            `json:"amount" validate:"required,decimal_amount"`
	StartDate      string            `json:"startDate" validate:"required"`
	CategoryLimits map[string]string `json:"categoryLimits,omitempty"`
	AlertThreshold *int              `json:"alertThreshold,omitempty" validate:"omitempty,min=0,max=100"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
// Omitted fields are left unchanged.
type UpdateBudgetRequest struct {
	Period         *string           `json:"period,omitempty" validate:"omitempty,budget_period"`
	Amount         *string           `json:"amount,omitempty" validate:"omitempty,decimal_amount"`
	StartDate      *string           `json:"startDate,omitempty"`
	CategoryLimits map[string]string `json:"categoryLimits,omitempty"`
	AlertThreshold *int              `json:"alertThreshold,omitempty" validate:"omitempty,min=0,max=100"`
}

// Budget Response DTOs

// BudgetResponse wraps a single budget
type BudgetResponse struct {
	Budget *models.Budget `json:"budget"`
}

// BudgetListResponse represents all budgets for a user
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Total   int             `json:"total"`
}
