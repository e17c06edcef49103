// Package cache puts a read-through cache of remote standings in front of a
// membership.Remote. Only successful lookups are cached.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"warden/internal/membership"
	"warden/internal/membership/metrics"
	id "warden/pkg/domain"
)

// Backend stores standings by key.
type Backend interface {
	Get(ctx context.Context, key string) (membership.Standing, bool, error)
	Set(ctx context.Context, key string, standing membership.Standing) error
}

// Remote is a caching membership.Remote.
type Remote struct {
	next    membership.Remote
	backend Backend
	logger  *slog.Logger
	metrics *metrics.Metrics
}

var _ membership.Remote = (*Remote)(nil)

type Option func(*Remote)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Remote) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Remote) {
		r.metrics = m
	}
}

// NewRemote wraps next with backend.
func NewRemote(next membership.Remote, backend Backend, opts ...Option) (*Remote, error) {
	if next == nil {
		return nil, errors.New("remote membership source is required")
	}
	if backend == nil {
		return nil, errors.New("cache backend is required")
	}
	r := &Remote{next: next, backend: backend, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Key identifies a (group, user) standing.
func Key(groupID id.GroupID, userID id.UserID) string {
	return fmt.Sprintf("%d:%d", groupID.Int64(), userID.Int64())
}

func (r *Remote) Standing(ctx context.Context, groupID id.GroupID, userID id.UserID) (membership.Standing, error) {
	key := Key(groupID, userID)

	standing, ok, err := r.backend.Get(ctx, key)
	switch {
	case err != nil:
		r.metrics.IncrementCache("error")
		r.logger.WarnContext(ctx, "membership cache read failed", "key", key, "error", err)
	case ok:
		r.metrics.IncrementCache("hit")
		return standing, nil
	default:
		r.metrics.IncrementCache("miss")
	}

	standing, err = r.next.Standing(ctx, groupID, userID)
	if err != nil {
		return membership.Standing{}, err
	}
	if err := r.backend.Set(ctx, key, standing); err != nil {
		r.logger.WarnContext(ctx, "membership cache write failed", "key", key, "error", err)
	}
	return standing, nil
}
