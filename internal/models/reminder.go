package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder is a dated to-do item, optionally tagged with one of the
// shared spending categories.
type Reminder struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	DueDate     time.Time `gorm:"not null;index" json:"due_date"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	Category    *string   `gorm:"type:varchar(20)" json:"category,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Reminder
func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for Reminder
func (r *Reminder) BeforeUpdate(tx *gorm.DB) error {
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	r.UpdatedAt = time.Now()
	return r.Validate()
}

// Validate validates the reminder fields
func (r *Reminder) Validate() error {
	if r.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if r.Title == "" {
		return errors.New("reminder title is required")
	}

	if r.DueDate.IsZero() {
		return ErrInvalidDate
	}

	if r.Category != nil && !IsValidCategory(*r.Category) {
		return ErrInvalidCategory
	}

	return nil
}

// IsOverdue returns true for incomplete reminders past their due date
func (r *Reminder) IsOverdue(now time.Time) bool {
	return !r.IsCompleted && now.After(r.DueDate)
}

// Complete marks the reminder as done
func (r *Reminder) Complete() {
	r.IsCompleted = true
}

// TableName returns the table name for Reminder
func (r *Reminder) TableName() string {
	return "reminders"
}
