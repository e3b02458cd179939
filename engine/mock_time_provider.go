package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for tests and headless rendering
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	frame       time.Duration
}

// NewMockTimeProvider creates a mock clock at startTime advancing frame per Tick
func NewMockTimeProvider(startTime time.Time, frame time.Duration) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		frame:       frame,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Tick advances one frame period and returns the new time
func (m *MockTimeProvider) Tick() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(m.frame)
	return m.currentTime
}
