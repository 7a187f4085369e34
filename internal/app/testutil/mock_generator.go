package testutil

import (
	"context"
	"sync"

	"audio-insights/internal/app/api"
)

// MockGenerator is a scripted api.Generator: each call pops the next
// queued response, so a test can drive the summarize / identify / count
// sequence deterministically.
type MockGenerator struct {
	mu sync.Mutex

	Responses []string
	Err       error

	CallCount int
	Requests  []api.GenerationRequest
}

func NewMockGenerator(responses ...string) *MockGenerator {
	return &MockGenerator{Responses: responses}
}

func (m *MockGenerator) Generate(ctx context.Context, request api.GenerationRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.Requests = append(m.Requests, request)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	next := m.Responses[0]
	m.Responses = m.Responses[1:]
	return next, nil
}
