package dto

import (
	"budgetbuddy-api/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Type        string `json:"type" validate:"required,transaction_type"`
	Amount      string `json:"amount" validate:"required,decimal_amount"`
	Category    string `json:"category" validate:"required,finance_category"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Date        string `json:"date" validate:"required"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
// Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Amount      *string `json:"amount,omitempty" validate:"omitempty,decimal_amount"`
	Category    *string `json:"category,omitempty" validate:"omitempty,finance_category"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Date        *string `json:"date,omitempty"`
}

// ListTransactionsQuery captures the supported list filters
type ListTransactionsQuery struct {
	Type      string `query:"type" validate:"omitempty,transaction_type"`
	Category  string `query:"category" validate:"omitempty,finance_category"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Search    string `query:"search"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Transaction Response DTOs

// TransactionResponse wraps a single transaction
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
