package validation

import (
	"reflect"
	"strings"

	"budgetbuddy-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("finance_category", validateFinanceCategory)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that a transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	txType := fl.Field().String()
	return txType == models.TransactionTypeIncome || txType == models.TransactionTypeExpense
}

// validateFinanceCategory validates that a category is one of the known spending categories
func validateFinanceCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateBudgetPeriod validates that a budget period is weekly or monthly
func validateBudgetPeriod(fl validator.FieldLevel) bool {
	period := fl.Field().String()
	return period == models.BudgetPeriodWeekly || period == models.BudgetPeriodMonthly
}

// validateDecimalAmount validates that an amount string parses as a positive
// decimal with at most 2 fractional digits
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if !amount.IsPositive() {
		return false
	}

	return amount.Exponent() >= -2
}
