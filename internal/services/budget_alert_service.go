package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertDecision is the outcome of evaluating a user's current budget.
// EmailSent and EmailError are only populated by EvaluateAndNotify.
type AlertDecision struct {
	Active      bool
	BudgetID    uuid.UUID
	Period      string
	WindowStart time.Time
	WindowEnd   time.Time
	Amount      decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	ProgressPct decimal.Decimal
	Threshold   int
	ShouldAlert bool
	EmailSent   *bool
	EmailError  string
}

// BudgetAlertService evaluates budget consumption against alert
// thresholds and dispatches alert emails
type BudgetAlertService struct {
	spending     SpendingServiceInterface
	notification NotificationServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	appURL       string
}

// NewBudgetAlertService creates a new budget alert service
func NewBudgetAlertService(
	spending SpendingServiceInterface,
	notification NotificationServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	appURL string,
) BudgetAlertServiceInterface {
	return &BudgetAlertService{
		spending:     spending,
		notification: notification,
		metrics:      metrics,
		logger:       logger,
		appURL:       appURL,
	}
}

// Evaluate computes the alert decision for the owner at the given time.
// Having no active budget is a normal outcome, not an error.
func (s *BudgetAlertService) Evaluate(budgets []models.Budget, transactions []models.Transaction, ownerID uuid.UUID, now time.Time) (*AlertDecision, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("alert.evaluation", time.Since(start))
	}()

	budget := SelectCurrentBudget(budgets, now)
	if budget == nil {
		s.metrics.IncrementCounter("alert.evaluated", map[string]string{"outcome": "no_active_budget"})
		return &AlertDecision{Active: false}, nil
	}

	windowStart, windowEnd, err := ComputeBudgetWindow(budget.Period, budget.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget window: %w", err)
	}

	if budget.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidBudget)
	}

	spent := s.spending.TotalExpenses(transactions, ownerID, windowStart, windowEnd)
	progressPct := spent.Div(budget.Amount).Mul(decimal.NewFromInt(100))

	remaining := budget.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	decision := &AlertDecision{
		Active:      true,
		BudgetID:    budget.ID,
		Period:      budget.Period,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Amount:      budget.Amount,
		Spent:       spent,
		Remaining:   remaining,
		ProgressPct: progressPct,
		Threshold:   budget.AlertThreshold,
		ShouldAlert: progressPct.GreaterThanOrEqual(decimal.NewFromInt(int64(budget.AlertThreshold))),
	}

	outcome := "below_threshold"
	if decision.ShouldAlert {
		outcome = "threshold_reached"
		s.metrics.IncrementCounter("alert.fired", nil)
	}
	s.metrics.IncrementCounter("alert.evaluated", map[string]string{"outcome": outcome})

	return decision, nil
}

// EvaluateAndNotify evaluates the owner's budget and, when the alert
// threshold is reached, dispatches an alert email. The dispatch outcome
// is reported on the decision and never raised as an error.
func (s *BudgetAlertService) EvaluateAndNotify(ctx context.Context, owner *models.User, budgets []models.Budget, transactions []models.Transaction, now time.Time) (*AlertDecision, error) {
	if owner == nil {
		return nil, fmt.Errorf("owner cannot be nil")
	}

	decision, err := s.Evaluate(budgets, transactions, owner.ID, now)
	if err != nil {
		return nil, err
	}

	if !decision.Active || !decision.ShouldAlert {
		return decision, nil
	}

	msg, err := s.renderAlertEmail(owner, decision)
	if err != nil {
		// Rendering failure is reported like a dispatch failure
		s.logger.Error("failed to render alert email",
			"error", err,
			"user_id", owner.ID,
			"budget_id", decision.BudgetID)
		sent := false
		decision.EmailSent = &sent
		decision.EmailError = err.Error()
		return decision, nil
	}

	result := s.notification.Send(ctx, msg)
	decision.EmailSent = &result.Success
	decision.EmailError = result.Error

	if !result.Success {
		s.logger.Warn("budget alert computed but email not delivered",
			"user_id", owner.ID,
			"budget_id", decision.BudgetID,
			"reason", result.Error)
	}

	return decision, nil
}

var alertEmailTemplate = template.Must(template.New("budget_alert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 24px;">
  <div style="max-width: 520px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #1a1a2e; margin-top: 0;">Budget Alert</h2>
    <p>Hi {{.Name}},</p>
    <p>You have used <strong>{{.ProgressPct}}%</strong> of your {{.Period}} budget.</p>
    <div style="background: #e5e7eb; border-radius: 6px; height: 14px; margin: 16px 0;">
      <div style="background: {{.BarColor}}; border-radius: 6px; height: 14px; width: {{.BarPct}}%;"></div>
    </div>
    <table style="width: 100%; font-size: 14px; color: #374151;">
      <tr><td>Budget</td><td style="text-align: right;">${{.Amount}}</td></tr>
      <tr><td>Spent</td><td style="text-align: right;">${{.Spent}}</td></tr>
      <tr><td>Remaining</td><td style="text-align: right;"><strong>${{.Remaining}}</strong></td></tr>
    </table>
    <p style="margin-top: 24px;">
      <a href="{{.AppURL}}/dashboard" style="background: #4f46e5; color: #ffffff; padding: 10px 18px; border-radius: 6px; text-decoration: none;">View your budget</a>
    </p>
    <p style="color: #9ca3af; font-size: 12px;">You are receiving this because your alert threshold is set to {{.Threshold}}%.</p>
  </div>
</body>
</html>`))

type alertEmailData struct {
	Name        string
	Period      string
	ProgressPct string
	BarPct      string
	BarColor    string
	Amount      string
	Spent       string
	Remaining   string
	Threshold   int
	AppURL      string
}

func (s *BudgetAlertService) renderAlertEmail(owner *models.User, decision *AlertDecision) (*EmailMessage, error) {
	// The visual bar is clamped to [0, 100] even when spending exceeds
	// the budget; the displayed percentage is not.
	barPct := decision.ProgressPct
	if barPct.GreaterThan(decimal.NewFromInt(100)) {
		barPct = decimal.NewFromInt(100)
	}
	if barPct.IsNegative() {
		barPct = decimal.Zero
	}

	barColor := "#f59e0b"
	if decision.ProgressPct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		barColor = "#ef4444"
	}

	data := alertEmailData{
		Name:        owner.Name,
		Period:      decision.Period,
		ProgressPct: decision.ProgressPct.Round(1).String(),
		BarPct:      barPct.Round(0).String(),
		BarColor:    barColor,
		Amount:      decision.Amount.StringFixed(2),
		Spent:       decision.Spent.StringFixed(2),
		Remaining:   decision.Remaining.StringFixed(2),
		Threshold:   decision.Threshold,
		AppURL:      s.appURL,
	}

	var buf bytes.Buffer
	if err := alertEmailTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render alert email: %w", err)
	}

	subject := fmt.Sprintf("Budget Alert: %s%% of your %s budget used", data.ProgressPct, decision.Period)

	return &EmailMessage{
		To:      owner.Email,
		Subject: subject,
		HTML:    buf.String(),
	}, nil
}
