package services

import (
	"context"
	"sync"
	"time"
)

// noopMetrics records nothing; used where metrics are irrelevant
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}

// stubNotifier captures dispatched messages and returns a canned result
type stubNotifier struct {
	mu      sync.Mutex
	result  DispatchResult
	sent    []*EmailMessage
	enabled bool
}

func newStubNotifier(success bool, errMsg string) *stubNotifier {
	return &stubNotifier{
		result:  DispatchResult{Success: success, Error: errMsg},
		enabled: true,
	}
}

func (n *stubNotifier) Send(_ context.Context, msg *EmailMessage) *DispatchResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	result := n.result
	return &result
}

func (n *stubNotifier) Enabled() bool {
	return n.enabled
}

func (n *stubNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}
