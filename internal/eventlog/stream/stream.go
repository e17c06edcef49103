// Package stream forwards recorded member events to a message broker from a
// background worker so recording never waits on the broker.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"warden/internal/eventlog"
	"warden/internal/eventlog/metrics"
)

const (
	DefaultBufferSize = 1024
	DrainTimeout      = 5 * time.Second
)

// Producer publishes one keyed message.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

// Stream buffers events and publishes them in order from Run. When the buffer
// is full new events are dropped and counted.
type Stream struct {
	producer Producer
	inbox    chan eventlog.MemberEvent
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

var _ eventlog.Sink = (*Stream)(nil)

type Option func(*Stream)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Stream) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Stream) {
		s.metrics = m
	}
}

func New(producer Producer, bufferSize int, opts ...Option) (*Stream, error) {
	if producer == nil {
		return nil, errors.New("producer is required")
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	s := &Stream{
		producer: producer,
		inbox:    make(chan eventlog.MemberEvent, bufferSize),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Publish enqueues event without blocking.
func (s *Stream) Publish(event eventlog.MemberEvent) {
	select {
	case s.inbox <- event:
	default:
		s.metrics.IncDropped()
		s.logger.Warn("member event stream buffer full, dropping event",
			"user_id", event.UserID.Int64(),
			"group_id", event.GroupID.Int64(),
		)
	}
}

// Run publishes buffered events until ctx is cancelled, then spends up to
// DrainTimeout flushing what is already queued.
func (s *Stream) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DrainTimeout)
			s.drain(drainCtx)
			cancel()
			return nil
		case event := <-s.inbox:
			s.send(ctx, event)
		}
	}
}

func (s *Stream) drain(ctx context.Context) {
	for {
		select {
		case event := <-s.inbox:
			s.send(ctx, event)
		default:
			return
		}
	}
}

func (s *Stream) send(ctx context.Context, event eventlog.MemberEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		s.logger.ErrorContext(ctx, "encode member event", "error", err)
		return
	}
	// Keyed by group so one chat's events stay ordered within a partition.
	key := []byte(strconv.FormatInt(event.GroupID.Int64(), 10))
	if err := s.producer.Publish(ctx, key, value); err != nil {
		s.metrics.IncPublishFailures()
		s.logger.WarnContext(ctx, "publish member event",
			"event_id", event.ID,
			"error", err,
		)
		return
	}
	s.metrics.IncPublished()
}
