package store

import (
	"context"
	"sort"
	"sync"

	"warden/internal/decision"
	id "warden/pkg/domain"
)

type key struct {
	userID  id.UserID
	groupID id.GroupID
}

// InMemory is a concurrency-safe admission store for tests and ephemeral runs.
type InMemory struct {
	mu       sync.RWMutex
	requests map[key]decision.JoinRequest
}

func NewInMemory() *InMemory {
	return &InMemory{requests: make(map[key]decision.JoinRequest)}
}

func (s *InMemory) Upsert(_ context.Context, req decision.JoinRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[key{req.UserID, req.GroupID}] = req
	return nil
}

// Get returns the admission for (userID, groupID).
func (s *InMemory) Get(_ context.Context, userID id.UserID, groupID id.GroupID) (decision.JoinRequest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[key{userID, groupID}]
	return req, ok, nil
}

// List returns every admission ordered by group then user.
func (s *InMemory) List(_ context.Context) ([]decision.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]decision.JoinRequest, 0, len(s.requests))
	for _, req := range s.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GroupID != out[j].GroupID {
			return out[i].GroupID < out[j].GroupID
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}
