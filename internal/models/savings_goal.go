package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetAmount   = errors.New("target amount must be positive")
	ErrNegativeCurrentAmount = errors.New("current amount must not be negative")
)

// SavingsGoal tracks progress toward a named savings target. The
// current amount may exceed the target; display progress is clamped
// but the stored value never is.
type SavingsGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for SavingsGoal
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for SavingsGoal
func (g *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the savings goal fields
func (g *SavingsGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if g.Name == "" {
		return errors.New("goal name is required")
	}

	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTargetAmount
	}

	if g.CurrentAmount.IsNegative() {
		return ErrNegativeCurrentAmount
	}

	return nil
}

// Progress returns current/target as a percentage, uncapped
func (g *SavingsGoal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

// DisplayProgress returns the progress percentage clamped to 100
func (g *SavingsGoal) DisplayProgress() decimal.Decimal {
	progress := g.Progress()
	hundred := decimal.NewFromInt(100)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}

// IsReached returns true once the current amount meets the target
func (g *SavingsGoal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// TableName returns the table name for SavingsGoal
func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
