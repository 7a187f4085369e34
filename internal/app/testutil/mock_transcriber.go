package testutil

import (
	"context"
	"sync"
)

// MockTranscriber is a configurable api.Transcriber for tests. It
// records every call so tests can assert that validation failures stop
// the pipeline before any service call happens.
type MockTranscriber struct {
	mu sync.Mutex

	Response string
	Err      error

	CallCount int
	Calls     []string
}

func NewMockTranscriber(response string) *MockTranscriber {
	return &MockTranscriber{Response: response}
}

func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.Calls = append(m.Calls, inputFilePath)

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
