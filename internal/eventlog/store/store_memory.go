package store

import (
	"context"
	"sync"

	"warden/internal/eventlog"
	id "warden/pkg/domain"
)

// InMemory is a concurrency-safe member log for tests and ephemeral runs.
type InMemory struct {
	mu     sync.RWMutex
	events []eventlog.MemberEvent
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Append(_ context.Context, event eventlog.MemberEvent) (eventlog.MemberEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = int64(len(s.events) + 1)
	s.events = append(s.events, event)
	return event, nil
}

// ListByUser returns the user's events in insertion order.
func (s *InMemory) ListByUser(_ context.Context, userID id.UserID) ([]eventlog.MemberEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []eventlog.MemberEvent
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
