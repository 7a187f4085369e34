package testutil

import (
	"sync"

	"audio-insights/internal/app/model"
)

// MockRunDAO is an in-memory repository.RunDAO.
type MockRunDAO struct {
	mu sync.Mutex

	Records []model.RunRecord
	Err     error
}

func NewMockRunDAO() *MockRunDAO {
	return &MockRunDAO{}
}

func (m *MockRunDAO) Close() error { return nil }

func (m *MockRunDAO) RecordRun(record model.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockRunDAO) GetAllRuns() ([]model.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]model.RunRecord, len(m.Records))
	copy(out, m.Records)
	return out, nil
}
