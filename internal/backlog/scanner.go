// Package backlog drains join requests that arrived while the bot was not
// listening by listing each group's pending requests and adjudicating them.
package backlog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"warden/internal/backlog/metrics"
	"warden/internal/botapi"
	"warden/internal/decision"
	"warden/internal/registry"
	"warden/pkg/requestcontext"
)

const (
	DefaultPageSize    = 100
	DefaultConcurrency = 1
)

// Trigger names what started a scan.
type Trigger string

const (
	TriggerStartup  Trigger = "startup"
	TriggerInterval Trigger = "interval"
	TriggerCommand  Trigger = "command"
	TriggerHTTP     Trigger = "http"
	TriggerCLI      Trigger = "cli"
)

// Scanner runs backlog scans. Only one scan runs at a time; a scan requested
// while another is running waits for it to finish.
type Scanner struct {
	groups      GroupSource
	pending     PendingSource
	adjudicator Adjudicator
	pageSize    int
	concurrency int
	logger      *slog.Logger
	metrics     *metrics.Metrics

	mu sync.Mutex
}

type Option func(*Scanner)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scanner) {
		s.metrics = m
	}
}

// WithPageSize sets how many pending requests are fetched per group.
func WithPageSize(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithConcurrency sets how many groups are scanned at once.
func WithConcurrency(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func New(groups GroupSource, pending PendingSource, adjudicator Adjudicator, opts ...Option) (*Scanner, error) {
	if groups == nil {
		return nil, errors.New("group source is required")
	}
	if pending == nil {
		return nil, errors.New("pending source is required")
	}
	if adjudicator == nil {
		return nil, errors.New("adjudicator is required")
	}
	s := &Scanner{
		groups:      groups,
		pending:     pending,
		adjudicator: adjudicator,
		pageSize:    DefaultPageSize,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ScanAll adjudicates one page of pending requests for every registered
// group. Per-group failures are logged and skipped; the scan always completes
// and reports what it did.
func (s *Scanner) ScanAll(ctx context.Context, trigger Trigger) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summary{
		ScanID:    uuid.NewString(),
		Outcomes:  make(map[decision.Outcome]int),
		StartedAt: requestcontext.Now(ctx),
	}
	ctx = requestcontext.WithScanID(ctx, summary.ScanID)
	start := time.Now()

	s.logger.InfoContext(ctx, "backlog scan started", "trigger", string(trigger))

	groups, err := s.groups.ListAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "backlog scan could not list groups", "error", err)
	}
	summary.Groups = len(groups)

	reports := make([]groupReport, len(groups))
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, group := range groups {
		if ctx.Err() != nil {
			reports[i] = groupReport{failed: true}
			continue
		}
		g.Go(func() error {
			reports[i] = s.scanGroup(ctx, group)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range reports {
		summary.add(r)
	}
	summary.Cancelled = ctx.Err() != nil
	summary.Duration = time.Since(start)

	s.metrics.IncrementScan(string(trigger))
	s.metrics.ObserveScanDuration(summary.Duration)
	s.logger.InfoContext(ctx, "backlog scan finished",
		"trigger", string(trigger),
		"groups", summary.Groups,
		"failed_groups", summary.FailedGroups,
		"empty_groups", summary.EmptyGroups,
		"truncated_groups", summary.TruncatedGroups,
		"requests", summary.Requests,
		"approved", summary.Outcomes[decision.OutcomeApproved],
		"declined", summary.Outcomes[decision.OutcomeDeclined],
		"ignored", summary.Outcomes[decision.OutcomeIgnored],
		"undelivered", summary.Undelivered,
		"cancelled", summary.Cancelled,
		"duration_ms", summary.Duration.Milliseconds(),
	)
	return summary
}

// scanGroup adjudicates one page of a group's pending requests in order.
func (s *Scanner) scanGroup(ctx context.Context, group registry.Group) groupReport {
	users, err := s.pending.Pending(ctx, group.ID, s.pageSize)
	if err != nil {
		s.metrics.IncrementGroupFailure()
		s.logger.ErrorContext(ctx, "could not list pending join requests",
			"group_id", group.ID.Int64(),
			"network", string(group.Network),
			"category", string(botapi.CategoryOf(err)),
			"error", err,
		)
		return groupReport{failed: true}
	}

	report := groupReport{truncated: len(users) >= s.pageSize}
	if report.truncated {
		s.metrics.IncrementTruncated()
		s.logger.WarnContext(ctx, "pending join request page is full, later requests wait for the next scan",
			"group_id", group.ID.Int64(),
			"page_size", s.pageSize,
		)
	}

	for _, userID := range users {
		if ctx.Err() != nil {
			break
		}
		report.results = append(report.results, s.adjudicator.Adjudicate(ctx, userID, group.ID))
	}
	return report
}
