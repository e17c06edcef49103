// Package membership answers questions about a user's standing in managed
// groups by querying the platform.
package membership

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"warden/internal/botapi"
	"warden/internal/membership/metrics"
	"warden/internal/registry"
	id "warden/pkg/domain"
	"warden/pkg/requestcontext"
)

// DefaultFanout bounds concurrent lookups within one network search.
const DefaultFanout = 4

// Oracle evaluates membership predicates. Remote failures are logged and
// yield a negative answer; no method returns an error.
type Oracle struct {
	remote  Remote
	live    Remote
	groups  GroupLister
	fanout  int
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Oracle)

func WithLogger(logger *slog.Logger) Option {
	return func(o *Oracle) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Oracle) {
		o.metrics = m
	}
}

// WithFanout sets the number of groups probed concurrently during a network
// search. 1 probes groups one at a time.
func WithFanout(n int) Option {
	return func(o *Oracle) {
		if n > 0 {
			o.fanout = n
		}
	}
}

// WithLiveRemote sets the source IsCurrentMember reads from. It must not be
// cached: a user admitted a moment ago is a current member now.
func WithLiveRemote(remote Remote) Option {
	return func(o *Oracle) {
		if remote != nil {
			o.live = remote
		}
	}
}

// New constructs an Oracle.
func New(remote Remote, groups GroupLister, opts ...Option) (*Oracle, error) {
	if remote == nil {
		return nil, errors.New("remote membership source is required")
	}
	if groups == nil {
		return nil, errors.New("group lister is required")
	}
	o := &Oracle{
		remote: remote,
		groups: groups,
		fanout: DefaultFanout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.live == nil {
		o.live = remote
	}
	return o, nil
}

// IsCurrentMember reports whether userID is a full member of groupID now.
func (o *Oracle) IsCurrentMember(ctx context.Context, groupID id.GroupID, userID id.UserID) bool {
	standing, ok := o.standing(ctx, o.live, groupID, userID)
	return ok && standing.IsMember()
}

// IsLongStandingMember reports whether userID is a full member of groupID and
// joined at least minTenure ago. An unknown join time satisfies tenure.
func (o *Oracle) IsLongStandingMember(ctx context.Context, groupID id.GroupID, userID id.UserID, minTenure time.Duration) bool {
	standing, ok := o.standing(ctx, o.remote, groupID, userID)
	if !ok {
		return false
	}
	return standing.HasTenure(requestcontext.Now(ctx), minTenure)
}

// CurrentMember is IsCurrentMember as a Predicate.
func (o *Oracle) CurrentMember() Predicate {
	return o.IsCurrentMember
}

// LongStandingMember is IsLongStandingMember with a fixed tenure as a Predicate.
func (o *Oracle) LongStandingMember(minTenure time.Duration) Predicate {
	return func(ctx context.Context, groupID id.GroupID, userID id.UserID) bool {
		return o.IsLongStandingMember(ctx, groupID, userID, minTenure)
	}
}

// AnyMemberAcrossNetwork reports whether pred holds for userID in at least
// one group of network. The search stops at the first satisfying group:
// pending probes are not started and in-flight ones are cancelled.
func (o *Oracle) AnyMemberAcrossNetwork(ctx context.Context, network registry.Network, userID id.UserID, pred Predicate) bool {
	groupIDs, err := o.groups.ListByNetwork(ctx, network)
	if err != nil {
		o.logger.ErrorContext(ctx, "list network groups failed",
			"network", network.String(),
			"user_id", userID.Int64(),
			"error", err,
		)
		return false
	}
	if len(groupIDs) == 0 {
		return false
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		found  atomic.Bool
		probes atomic.Int64
	)
	g := new(errgroup.Group)
	g.SetLimit(o.fanout)
	for _, groupID := range groupIDs {
		if found.Load() || searchCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if found.Load() || searchCtx.Err() != nil {
				return nil
			}
			probes.Add(1)
			if pred(searchCtx, groupID, userID) {
				found.Store(true)
				cancel()
			}
			return nil
		})
	}
	_ = g.Wait()

	o.metrics.ObserveProbes(int(probes.Load()))
	return found.Load()
}

func (o *Oracle) standing(ctx context.Context, remote Remote, groupID id.GroupID, userID id.UserID) (Standing, bool) {
	standing, err := remote.Standing(ctx, groupID, userID)
	if err != nil {
		o.logLookupError(ctx, groupID, userID, err)
		return Standing{}, false
	}
	if standing.IsMember() {
		o.metrics.IncrementLookup("member")
	} else {
		o.metrics.IncrementLookup("non_member")
	}
	return standing, true
}

func (o *Oracle) logLookupError(ctx context.Context, groupID id.GroupID, userID id.UserID, err error) {
	attrs := []any{
		"group_id", groupID.Int64(),
		"user_id", userID.Int64(),
		"error", err,
	}
	switch {
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		// a sibling probe already answered the search
		o.metrics.IncrementLookup("cancelled")
		o.logger.DebugContext(ctx, "membership lookup cancelled", attrs...)
	case botapi.IsNotFound(err):
		o.metrics.IncrementLookup(string(botapi.CategoryNotFound))
		o.logger.DebugContext(ctx, "membership lookup: not found", attrs...)
	default:
		category := botapi.CategoryOf(err)
		o.metrics.IncrementLookup(string(category))
		o.logger.ErrorContext(ctx, "membership lookup failed",
			append(attrs, "category", string(category))...)
	}
}
