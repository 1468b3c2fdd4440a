package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavingsGoal_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		goal    SavingsGoal
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid goal",
			goal: SavingsGoal{
				UserID:        validUserID,
				Name:          "Emergency fund",
				TargetAmount:  decimal.NewFromInt(5000),
				CurrentAmount: decimal.NewFromInt(1200),
			},
			wantErr: false,
		},
		{
			name: "current amount may exceed target",
			goal: SavingsGoal{
				UserID:        validUserID,
				Name:          "New laptop",
				TargetAmount:  decimal.NewFromInt(1000),
				CurrentAmount: decimal.NewFromInt(1500),
			},
			wantErr: false,
		},
		{
			name: "missing name",
			goal: SavingsGoal{
				UserID:       validUserID,
				TargetAmount: decimal.NewFromInt(1000),
			},
			wantErr: true,
			errMsg:  "goal name is required",
		},
		{
			name: "zero target",
			goal: SavingsGoal{
				UserID: validUserID,
				Name:   "Nothing",
			},
			wantErr: true,
			errMsg:  "target amount must be positive",
		},
		{
			name: "negative current amount",
			goal: SavingsGoal{
				UserID:        validUserID,
				Name:          "Vacation",
				TargetAmount:  decimal.NewFromInt(2000),
				CurrentAmount: decimal.NewFromInt(-50),
			},
			wantErr: true,
			errMsg:  "current amount must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSavingsGoal_Progress(t *testing.T) {
	goal := SavingsGoal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(250),
	}
	assert.True(t, goal.Progress().Equal(decimal.NewFromInt(25)))
	assert.False(t, goal.IsReached())
}

func TestSavingsGoal_ProgressUncappedButDisplayClamped(t *testing.T) {
	goal := SavingsGoal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(1500),
	}

	assert.True(t, goal.Progress().Equal(decimal.NewFromInt(150)))
	assert.True(t, goal.DisplayProgress().Equal(decimal.NewFromInt(100)))
	assert.True(t, goal.IsReached())
}
