package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Validate(t *testing.T) {
	validUserID := uuid.New()
	validStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		budget  Budget
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid monthly budget",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(1000),
				StartDate:      validStart,
				AlertThreshold: 80,
			},
			wantErr: false,
		},
		{
			name: "valid weekly budget with category limits",
			budget: Budget{
				UserID:    validUserID,
				Period:    BudgetPeriodWeekly,
				Amount:    decimal.NewFromInt(250),
				StartDate: validStart,
				CategoryLimits: CategoryLimits{
					CategoryFood:      decimal.NewFromInt(100),
					CategoryTransport: decimal.NewFromInt(50),
				},
				AlertThreshold: 90,
			},
			wantErr: false,
		},
		{
			name: "threshold of zero is allowed",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(500),
				StartDate:      validStart,
				AlertThreshold: 0,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			budget: Budget{
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(1000),
				StartDate:      validStart,
				AlertThreshold: 80,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "invalid period",
			budget: Budget{
				UserID:         validUserID,
				Period:         "yearly",
				Amount:         decimal.NewFromInt(1000),
				StartDate:      validStart,
				AlertThreshold: 80,
			},
			wantErr: true,
			errMsg:  "invalid budget period",
		},
		{
			name: "non-positive amount",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.Zero,
				StartDate:      validStart,
				AlertThreshold: 80,
			},
			wantErr: true,
			errMsg:  "budget amount must be positive",
		},
		{
			name: "threshold above 100",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(1000),
				StartDate:      validStart,
				AlertThreshold: 101,
			},
			wantErr: true,
			errMsg:  "alert threshold must be between 0 and 100",
		},
		{
			name: "negative threshold",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(1000),
				StartDate:      validStart,
				AlertThreshold: -1,
			},
			wantErr: true,
			errMsg:  "alert threshold must be between 0 and 100",
		},
		{
			name: "missing start date",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(1000),
				AlertThreshold: 80,
			},
			wantErr: true,
			errMsg:  "invalid or missing start date",
		},
		{
			name: "negative category limit",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(1000),
				StartDate:      validStart,
				AlertThreshold: 80,
				CategoryLimits: CategoryLimits{
					CategoryFood: decimal.NewFromInt(-10),
				},
			},
			wantErr: true,
			errMsg:  "category limits must be non-negative",
		},
		{
			name: "unknown category in limits",
			budget: Budget{
				UserID:         validUserID,
				Period:         BudgetPeriodMonthly,
				Amount:         decimal.NewFromInt(1000),
				StartDate:      validStart,
				AlertThreshold: 80,
				CategoryLimits: CategoryLimits{
					"groceries": decimal.NewFromInt(100),
				},
			},
			wantErr: true,
			errMsg:  "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryLimits_ValueAndScan(t *testing.T) {
	limits := CategoryLimits{
		CategoryFood:    decimal.NewFromFloat(150.50),
		CategoryHousing: decimal.NewFromInt(800),
	}

	value, err := limits.Value()
	require.NoError(t, err)

	var scanned CategoryLimits
	require.NoError(t, scanned.Scan(value))

	assert.True(t, limits[CategoryFood].Equal(scanned[CategoryFood]))
	assert.True(t, limits[CategoryHousing].Equal(scanned[CategoryHousing]))
}

func TestCategoryLimits_ScanNil(t *testing.T) {
	var limits CategoryLimits
	require.NoError(t, limits.Scan(nil))
	assert.Nil(t, limits)
}

func TestIsValidBudgetPeriod(t *testing.T) {
	assert.True(t, IsValidBudgetPeriod(BudgetPeriodWeekly))
	assert.True(t, IsValidBudgetPeriod(BudgetPeriodMonthly))
	assert.False(t, IsValidBudgetPeriod("daily"))
	assert.False(t, IsValidBudgetPeriod(""))
}
