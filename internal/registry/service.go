// Package registry is the group registry: the set of managed groups and the
// network each one belongs to.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	id "warden/pkg/domain"
)

// Store persists groups.
type Store interface {
	// Get returns ErrGroupNotFound for unknown groups.
	Get(ctx context.Context, groupID id.GroupID) (Group, error)
	ListByNetwork(ctx context.Context, network Network) ([]id.GroupID, error)
	ListAll(ctx context.Context) ([]Group, error)
	Count(ctx context.Context) (int, error)
	// Upsert inserts groups keyed by ID. Existing rows keep their network.
	Upsert(ctx context.Context, groups []Group) error
}

// Service answers group lookups and seeds the store.
type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("group store is required")
	}
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Lookup returns the group with groupID, or ErrGroupNotFound.
func (s *Service) Lookup(ctx context.Context, groupID id.GroupID) (Group, error) {
	g, err := s.store.Get(ctx, groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return Group{}, err
		}
		return Group{}, fmt.Errorf("lookup group %s: %w", groupID, err)
	}
	return g, nil
}

// ListByNetwork returns the IDs of every group in network, in no particular order.
func (s *Service) ListByNetwork(ctx context.Context, network Network) ([]id.GroupID, error) {
	ids, err := s.store.ListByNetwork(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("list %s groups: %w", network, err)
	}
	return ids, nil
}

// ListAll returns every managed group.
func (s *Service) ListAll(ctx context.Context) ([]Group, error) {
	groups, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// Bootstrap seeds the store when it holds no groups. It returns the number of
// groups written, which is zero when the store was already populated.
func (s *Service) Bootstrap(ctx context.Context, seed []Group) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "group registry already seeded", "groups", n)
		return 0, nil
	}
	return s.Reseed(ctx, seed)
}

// Reseed upserts the seed list regardless of what the store holds.
func (s *Service) Reseed(ctx context.Context, seed []Group) (int, error) {
	if err := s.store.Upsert(ctx, seed); err != nil {
		return 0, fmt.Errorf("seed groups: %w", err)
	}
	s.logger.InfoContext(ctx, "group registry seeded", "groups", len(seed))
	return len(seed), nil
}
