// Package supervisor keeps a long-running loop alive.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"warden/internal/platform/metrics"
)

// Loop is a long-running function. It should return only on error or when
// ctx is cancelled.
type Loop func(ctx context.Context) error

// Supervisor restarts a Loop after a fixed delay whenever it returns an error
// or panics. It stops when its context is cancelled.
type Supervisor struct {
	name    string
	delay   time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
	sleep   func(ctx context.Context, d time.Duration) bool
}

type Option func(*Supervisor)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Supervisor) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Supervisor) {
		s.metrics = m
	}
}

// New builds a supervisor for the loop called name.
func New(name string, delay time.Duration, opts ...Option) *Supervisor {
	s := &Supervisor{
		name:   name,
		delay:  delay,
		logger: slog.Default(),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes loop until ctx is done. It returns nil on cancellation.
func (s *Supervisor) Run(ctx context.Context, loop Loop) error {
	for {
		err := s.runOnce(ctx, loop)
		if ctx.Err() != nil {
			s.logger.InfoContext(ctx, "supervised loop stopped", "loop", s.name)
			return nil
		}

		cause := "error"
		var p *panicError
		if errors.As(err, &p) {
			cause = "panic"
		}
		if err == nil {
			err = errors.New("loop returned without error")
		}
		s.metrics.IncrementRestart(s.name, cause)
		s.logger.ErrorContext(ctx, "supervised loop failed, restarting",
			"loop", s.name,
			"cause", cause,
			"error", err,
			"restart_in", s.delay.String(),
		)

		if !s.sleep(ctx, s.delay) {
			s.logger.InfoContext(ctx, "supervised loop stopped", "loop", s.name)
			return nil
		}
	}
}

func (s *Supervisor) runOnce(ctx context.Context, loop Loop) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return loop(ctx)
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
