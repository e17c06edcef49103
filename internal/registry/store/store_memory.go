package store

import (
	"context"
	"sort"
	"sync"

	"warden/internal/registry"
	id "warden/pkg/domain"
)

// InMemory is a registry store for tests and single-process runs.
type InMemory struct {
	mu     sync.RWMutex
	groups map[id.GroupID]registry.Group
}

func NewInMemory() *InMemory {
	return &InMemory{groups: make(map[id.GroupID]registry.Group)}
}

func (s *InMemory) Get(_ context.Context, groupID id.GroupID) (registry.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[groupID]
	if !ok {
		return registry.Group{}, registry.ErrGroupNotFound
	}
	return g, nil
}

func (s *InMemory) ListByNetwork(_ context.Context, network registry.Network) ([]id.GroupID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []id.GroupID
	for _, g := range s.groups {
		if g.Network == network {
			ids = append(ids, g.ID)
		}
	}
	return ids, nil
}

func (s *InMemory) ListAll(_ context.Context) ([]registry.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	groups := make([]registry.Group, 0, len(s.groups))
	for _, g := range s.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups), nil
}

func (s *InMemory) Upsert(_ context.Context, groups []registry.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range groups {
		if existing, ok := s.groups[g.ID]; ok {
			g.Network = existing.Network
		}
		s.groups[g.ID] = g
	}
	return nil
}
