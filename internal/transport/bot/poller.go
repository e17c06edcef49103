package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"warden/internal/botapi"
	"warden/pkg/requestcontext"
)

// AllowedUpdates are the update kinds the poller subscribes to.
var AllowedUpdates = []string{botapi.UpdateMessage, botapi.UpdateChatJoinRequest, botapi.UpdateChatMember}

const DefaultPollLimit = 100

// Poller long-polls for updates and feeds them to the dispatcher in order.
// Its offset survives restarts by the supervisor.
type Poller struct {
	source      UpdateSource
	dispatcher  *Dispatcher
	timeout     time.Duration
	skipPending bool
	logger      *slog.Logger

	offset  int64
	skipped bool
}

type PollerOption func(*Poller)

func WithPollerLogger(logger *slog.Logger) PollerOption {
	return func(p *Poller) {
		p.logger = logger
	}
}

// WithSkipPending drops updates queued before the first poll.
func WithSkipPending(skip bool) PollerOption {
	return func(p *Poller) {
		p.skipPending = skip
	}
}

func NewPoller(source UpdateSource, dispatcher *Dispatcher, timeout time.Duration, opts ...PollerOption) (*Poller, error) {
	if source == nil {
		return nil, errors.New("update source is required")
	}
	if dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}
	p := &Poller{
		source:     source,
		dispatcher: dispatcher,
		timeout:    timeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run polls until ctx is cancelled or a poll fails. It is meant to be run
// under a supervisor, which restarts it on error.
func (p *Poller) Run(ctx context.Context) error {
	if p.skipPending && !p.skipped {
		if err := p.dropPending(ctx); err != nil {
			return err
		}
	}
	p.logger.InfoContext(ctx, "polling for updates", "offset", p.offset)

	for {
		updates, err := p.source.GetUpdates(ctx, botapi.GetUpdatesParams{
			Offset:         p.offset,
			Limit:          DefaultPollLimit,
			Timeout:        int(p.timeout.Seconds()),
			AllowedUpdates: AllowedUpdates,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("get updates: %w", err)
		}
		for _, u := range updates {
			uctx := requestcontext.WithUpdateID(ctx, u.UpdateID)
			uctx = requestcontext.WithTime(uctx, time.Now())
			p.dispatcher.Dispatch(uctx, u)
			p.offset = u.UpdateID + 1
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// dropPending confirms everything queued so far by asking for the newest
// update only and moving the offset past it.
func (p *Poller) dropPending(ctx context.Context) error {
	updates, err := p.source.GetUpdates(ctx, botapi.GetUpdatesParams{
		Offset:         -1,
		Limit:          1,
		AllowedUpdates: AllowedUpdates,
	})
	if err != nil {
		return fmt.Errorf("drop pending updates: %w", err)
	}
	if n := len(updates); n > 0 {
		p.offset = updates[n-1].UpdateID + 1
	}
	p.skipped = true
	p.logger.InfoContext(ctx, "dropped pending updates", "offset", p.offset)
	return nil
}
