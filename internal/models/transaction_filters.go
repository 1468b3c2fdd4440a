package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction list queries.
// All filters are combined with AND; zero values mean "no filter".
type TransactionFilters struct {
	UserID    uuid.UUID
	Type      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Search    string
	Offset    int
	Limit     int
}
