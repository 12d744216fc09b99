package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

// Memory keeps the session in process memory. Used when no durable backend
// is configured, and by tests.
type Memory struct {
	mu      sync.RWMutex
	session *models.Session
	disp    *dispatcher
}

func NewMemory(log zerolog.Logger) *Memory {
	return &Memory{disp: newDispatcher(log)}
}

func (m *Memory) Save(_ context.Context, s models.Session) error {
	m.mu.Lock()
	cp := s
	m.session = &cp
	m.mu.Unlock()

	m.disp.dispatch(Change{Session: &cp})
	return nil
}

func (m *Memory) Load(_ context.Context) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return nil, nil
	}
	cp := *m.session
	return &cp, nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	m.disp.dispatch(Change{})
	return nil
}

func (m *Memory) Subscribe() <-chan Change {
	return m.disp.subscribe()
}

func (m *Memory) Close() error {
	m.disp.close()
	return nil
}
