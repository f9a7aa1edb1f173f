package presenter

import (
	"context"
	"sync"

	"snapfind-api/core/domain"
	coreerrors "snapfind-api/core/errors"
)

// mockStore keeps sessions in a map and counts updates
type mockStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.SearchSession
	latest   map[string]string
	updates  int
}

func newMockStore(sessions ...*domain.SearchSession) *mockStore {
	m := &mockStore{
		sessions: make(map[string]*domain.SearchSession),
		latest:   make(map[string]string),
	}
	for _, s := range sessions {
		m.sessions[s.ID] = s
		if s.OwnerID != "" {
			m.latest[s.OwnerID] = s.ID
		}
	}
	return m
}

func (m *mockStore) Create(ctx context.Context, ownerID string, results domain.ResultSet) (string, error) {
	s := domain.NewSearchSession(ownerID, results)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s.ID, nil
}

func (m *mockStore) Get(ctx context.Context, id string) (*domain.SearchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, coreerrors.SessionNotFound(id)
	}
	copied := *s
	return &copied, nil
}

func (m *mockStore) Update(ctx context.Context, id string, mutate func(*domain.SearchSession)) (*domain.SearchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, coreerrors.SessionNotFound(id)
	}
	m.updates++
	mutate(s)
	copied := *s
	return &copied, nil
}

func (m *mockStore) Latest(ctx context.Context, ownerID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.latest[ownerID]
	if !ok {
		return "", coreerrors.SessionNotFound(ownerID)
	}
	return id, nil
}
