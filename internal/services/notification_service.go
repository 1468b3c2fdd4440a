package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"budgetbuddy-api/internal/config"
)

// EmailMessage is a rendered email ready for dispatch
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// DispatchResult reports the outcome of an email dispatch attempt
type DispatchResult struct {
	Success bool
	Error   string
}

// NotificationService delivers email via a Resend-compatible HTTP API.
// Send reports failures in the result instead of returning errors so
// that alert evaluation is never aborted by a delivery problem.
type NotificationService struct {
	cfg     config.NotificationConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	cfg config.NotificationConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// Enabled reports whether an API key is configured
func (s *NotificationService) Enabled() bool {
	return s.cfg.APIKey != ""
}

// Send dispatches the message with a bounded timeout
func (s *NotificationService) Send(ctx context.Context, msg *EmailMessage) *DispatchResult {
	if !s.Enabled() {
		return s.failure("email notifications are not configured")
	}

	if msg == nil || msg.To == "" {
		return s.failure("missing recipient")
	}

	if s.breaker.IsOpen() {
		s.logger.Warn("email dispatch skipped, circuit breaker open", "to", msg.To)
		return s.failure(ErrCircuitBreakerOpen.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := s.post(ctx, msg); err != nil {
		s.breaker.RecordFailure()
		s.metrics.IncrementCounter("notification.email", map[string]string{"status": "failed"})
		s.logger.Error("email dispatch failed",
			"error", err,
			"to", msg.To,
			"subject", msg.Subject)
		return s.failure(err.Error())
	}

	s.breaker.RecordSuccess()
	s.metrics.IncrementCounter("notification.email", map[string]string{"status": "sent"})
	s.logger.Info("email dispatched", "to", msg.To, "subject", msg.Subject)

	return &DispatchResult{Success: true}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *NotificationService) post(ctx context.Context, msg *EmailMessage) error {
	payload := emailPayload{
		From:    s.cfg.FromEmail,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a bounded amount of the error body for logging
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}

func (s *NotificationService) failure(reason string) *DispatchResult {
	return &DispatchResult{Success: false, Error: reason}
}
