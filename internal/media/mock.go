package media

import (
	"context"
	"sync"
	"time"
)

// MockSurface records calls for testing and can simulate load or
// autoplay failures.
type MockSurface struct {
	LoadErr error
	PlayErr error

	mu     sync.Mutex
	loads  []string
	plays  int
	pauses int
	seeks  []time.Duration
}

func (m *MockSurface) Load(ctx context.Context, src string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return m.LoadErr
	}
	m.loads = append(m.loads, src)
	return nil
}

func (m *MockSurface) Play(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlayErr != nil {
		return m.PlayErr
	}
	m.plays++
	return nil
}

func (m *MockSurface) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
}

func (m *MockSurface) Seek(to time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeks = append(m.seeks, to)
}

func (m *MockSurface) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

func (m *MockSurface) Plays() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plays
}

func (m *MockSurface) Pauses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

func (m *MockSurface) Seeks() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seeks...)
}
