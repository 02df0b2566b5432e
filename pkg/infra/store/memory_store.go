package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ufobeep/quarantine/pkg/domain"
	"github.com/ufobeep/quarantine/pkg/domain/alert"
)

// MemoryStore holds the session's working set of alerts. Writes replace the
// whole map (copy-on-write), so a reader holding a snapshot never observes a
// half-updated alert.
type MemoryStore struct {
	mu     sync.Mutex
	alerts map[uuid.UUID]alert.EnrichedAlert
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		alerts: make(map[uuid.UUID]alert.EnrichedAlert),
	}
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (alert.EnrichedAlert, error) {
	s.mu.Lock()
	a, ok := s.alerts[id]
	s.mu.Unlock()
	if !ok {
		return alert.EnrichedAlert{}, domain.NewNotFoundError("alert", id)
	}
	return a, nil
}

func (s *MemoryStore) Put(ctx context.Context, a alert.EnrichedAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make(map[uuid.UUID]alert.EnrichedAlert, len(s.alerts)+1)
	for k, v := range s.alerts {
		next[k] = v
	}
	next[a.Sighting.ID] = a
	s.alerts = next
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]alert.EnrichedAlert, error) {
	s.mu.Lock()
	snapshot := s.alerts
	s.mu.Unlock()
	out := make([]alert.EnrichedAlert, 0, len(snapshot))
	for _, a := range snapshot {
		out = append(out, a)
	}
	return out, nil
}

func (s *MemoryStore) Evict(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alerts[id]; !ok {
		return domain.NewNotFoundError("alert", id)
	}
	next := make(map[uuid.UUID]alert.EnrichedAlert, len(s.alerts))
	for k, v := range s.alerts {
		if k != id {
			next[k] = v
		}
	}
	s.alerts = next
	return nil
}
