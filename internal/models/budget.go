package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
)

var (
	ErrInvalidBudgetPeriod   = errors.New("invalid budget period")
	ErrInvalidBudgetAmount   = errors.New("budget amount must be positive")
	ErrInvalidAlertThreshold = errors.New("alert threshold must be between 0 and 100")
	ErrInvalidStartDate      = errors.New("invalid or missing start date")
	ErrNegativeCategoryLimit = errors.New("category limits must be non-negative")
)

// CategoryLimits maps spending categories to optional per-category
// ceilings. Stored as a JSONB column.
type CategoryLimits map[string]decimal.Decimal

// Value implements driver.Valuer for CategoryLimits
func (cl CategoryLimits) Value() (driver.Value, error) {
	if cl == nil {
		return nil, nil
	}
	return json.Marshal(cl)
}

// Scan implements sql.Scanner for CategoryLimits
func (cl *CategoryLimits) Scan(value interface{}) error {
	if value == nil {
		*cl = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for CategoryLimits: %T", value)
	}

	return json.Unmarshal(data, cl)
}

// Budget represents a single spending window for one user. A budget
// models exactly one window anchored at StartDate; a new recurring
// period requires a new record, there is no automatic rollover.
type Budget struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Period         string          `gorm:"type:varchar(10);not null" json:"period"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	StartDate      time.Time       `gorm:"not null;index" json:"start_date"`
	CategoryLimits CategoryLimits  `gorm:"type:jsonb" json:"category_limits,omitempty"`
	AlertThreshold int             `gorm:"not null;default:80" json:"alert_threshold"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	if b.AlertThreshold < 0 || b.AlertThreshold > 100 {
		return ErrInvalidAlertThreshold
	}

	if b.StartDate.IsZero() {
		return ErrInvalidStartDate
	}

	for category, limit := range b.CategoryLimits {
		if !IsValidCategory(category) {
			return fmt.Errorf("category limit references unknown category %q", category)
		}
		if limit.IsNegative() {
			return ErrNegativeCategoryLimit
		}
	}

	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidBudgetPeriod checks if the budget period is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly:
		return true
	default:
		return false
	}
}
