package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"budgetbuddy-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// newTestEcho builds an Echo instance wired with the shared validator
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds an Echo context for a JSON request
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// authenticate stores the user ID in the context the way the auth
// middleware does
func authenticate(c echo.Context, userID uuid.UUID) {
	c.Set("user_id", userID)
}

func decimalFromString(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}

// noopMetrics discards all recordings
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)     {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration) {}

// stubNotifier records dispatched messages and returns a canned result
type stubNotifier struct {
	mu     sync.Mutex
	result services.DispatchResult
	sent   []*services.EmailMessage
}

func newStubNotifier(success bool, errMsg string) *stubNotifier {
	return &stubNotifier{
		result: services.DispatchResult{Success: success, Error: errMsg},
	}
}

func (s *stubNotifier) Send(ctx context.Context, msg *services.EmailMessage) *services.DispatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	result := s.result
	return &result
}

func (s *stubNotifier) Enabled() bool {
	return true
}

func (s *stubNotifier) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}
