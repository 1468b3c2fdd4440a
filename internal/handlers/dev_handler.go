package handlers

import (
	"net/http"

	"budgetbuddy-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// These endpoints must only be routed in development environments.
type DevHandler struct {
	sampleData services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{
		sampleData: sampleData,
	}
}

// SeedSampleData creates a demo user with several months of realistic
// finance data (transactions, a budget, a savings goal, a reminder)
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Request body (all optional):
//   - email: Demo account email (default: demo@budgetbuddy.local)
//   - password: Demo account password (default: demo-password-1)
//   - months: Months of transaction history, 1-12 (default: 3)
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Months   int    `json:"months"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" {
		req.Email = "demo@budgetbuddy.local"
	}
	if req.Password == "" {
		req.Password = "demo-password-1"
	}
	if req.Months < 1 {
		req.Months = 3
	}
	if req.Months > 12 {
		req.Months = 12
	}

	user, err := h.sampleData.SeedUser(req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to seed demo user")
	}

	if err := h.sampleData.SeedFinanceData(user.ID, req.Months); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to seed finance data")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "sample data seeded",
		"user_id": user.ID,
		"email":   user.Email,
		"months":  req.Months,
	})
}
