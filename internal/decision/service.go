// Package decision adjudicates pending join requests: it routes each request
// by the target group's network, applies the eligibility rules for the gated
// network, delivers the verdict and records admissions.
package decision

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"warden/internal/botapi"
	"warden/internal/decision/metrics"
	"warden/internal/decision/ports"
	"warden/internal/platform/logger"
	id "warden/pkg/domain"
	"warden/pkg/platform/sentinel"
	"warden/pkg/requestcontext"
)

// Service adjudicates join requests. Adjudicate never returns an error: every
// failure is folded into the Result and logged.
type Service struct {
	groups   ports.GroupDirectory
	policy   ports.EligibilityPolicy
	resolver ports.JoinRequestResolver
	store    Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(groups ports.GroupDirectory, policy ports.EligibilityPolicy, resolver ports.JoinRequestResolver, store Store, opts ...Option) (*Service, error) {
	if groups == nil {
		return nil, errors.New("group directory is required")
	}
	if policy == nil {
		return nil, errors.New("eligibility policy is required")
	}
	if resolver == nil {
		return nil, errors.New("join request resolver is required")
	}
	if store == nil {
		return nil, errors.New("join request store is required")
	}
	s := &Service{
		groups:   groups,
		policy:   policy,
		resolver: resolver,
		store:    store,
		logger:   slog.Default(),
		tracer:   otel.Tracer("warden/internal/decision"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Adjudicate decides the pending request of userID to join groupID and
// delivers the verdict. Requests to verification groups are left alone.
func (s *Service) Adjudicate(ctx context.Context, userID id.UserID, groupID id.GroupID) Result {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "decision.Adjudicate", trace.WithAttributes(
		attribute.Int64("warden.user_id", userID.Int64()),
		attribute.Int64("warden.group_id", groupID.Int64()),
	))
	defer span.End()

	res := s.adjudicate(ctx, userID, groupID)
	res.Duration = time.Since(start)

	span.SetAttributes(
		attribute.String("warden.outcome", string(res.Outcome)),
		attribute.String("warden.reason", string(res.Reason)),
	)
	if res.DeliveryErr != nil {
		span.RecordError(res.DeliveryErr)
		span.SetStatus(codes.Error, "verdict not delivered")
	}
	s.metrics.IncrementOutcome(string(res.Outcome), string(res.Reason), res.Delivered)
	s.metrics.ObserveAdjudicateLatency(res.Duration)
	s.logResult(ctx, res)
	return res
}

func (s *Service) adjudicate(ctx context.Context, userID id.UserID, groupID id.GroupID) Result {
	res := Result{UserID: userID, GroupID: groupID}

	group, err := s.groups.Lookup(ctx, groupID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return s.decline(ctx, res, ReasonGroupNotManaged)
		}
		s.logger.ErrorContext(ctx, "group lookup failed",
			"group_id", groupID.Int64(),
			"user_id", userID.Int64(),
			"error", err,
		)
		return s.decline(ctx, res, ReasonRegistryUnavailable)
	}
	res.Network = group.Network

	switch RouteFor(group.Network) {
	case RouteIgnore:
		res.Outcome = OutcomeIgnored
		res.Reason = ReasonVerificationNetwork
		return res
	case RouteGated:
		alreadyIn := s.policy.IsAlreadyInGatedNetwork(ctx, userID)
		eligible := false
		if !alreadyIn {
			eligible = s.policy.IsEligibleForGatedNetwork(ctx, userID)
		}
		outcome, reason := DecideGated(alreadyIn, eligible)
		if outcome == OutcomeApproved {
			return s.approve(ctx, res)
		}
		return s.decline(ctx, res, reason)
	default:
		s.logger.ErrorContext(ctx, "group has unrecognized network",
			"group_id", groupID.Int64(),
			"network", string(group.Network),
		)
		return s.decline(ctx, res, ReasonUnknownNetwork)
	}
}

func (s *Service) decline(ctx context.Context, res Result, reason Reason) Result {
	res.Outcome = OutcomeDeclined
	res.Reason = reason
	if err := s.resolver.Decline(ctx, res.GroupID, res.UserID); err != nil {
		res.DeliveryErr = err
		return res
	}
	res.Delivered = true
	return res
}

// approve delivers the approval and records the admission. The record is
// written only once the platform has accepted the approval.
func (s *Service) approve(ctx context.Context, res Result) Result {
	res.Outcome = OutcomeApproved
	res.Reason = ReasonEligible
	if err := s.resolver.Approve(ctx, res.GroupID, res.UserID); err != nil {
		res.DeliveryErr = err
		return res
	}
	res.Delivered = true

	req := JoinRequest{UserID: res.UserID, GroupID: res.GroupID, ApprovedAt: requestcontext.Now(ctx)}
	if err := s.store.Upsert(ctx, req); err != nil {
		s.metrics.IncrementPersistFailure()
		s.logger.ErrorContext(ctx, "admission approved but not recorded",
			"group_id", res.GroupID.Int64(),
			"user_id", res.UserID.Int64(),
			"error", err,
			logger.PriorityCritical(),
		)
		return res
	}
	res.Persisted = true
	return res
}

func (s *Service) logResult(ctx context.Context, res Result) {
	attrs := []any{
		"user_id", res.UserID.Int64(),
		"group_id", res.GroupID.Int64(),
		"network", string(res.Network),
		"outcome", string(res.Outcome),
		"reason", string(res.Reason),
		"duration_ms", res.Duration.Milliseconds(),
	}
	if res.DeliveryErr != nil {
		attrs = append(attrs, "error", res.DeliveryErr, "category", string(botapi.CategoryOf(res.DeliveryErr)))
		s.logger.WarnContext(ctx, "join request verdict not delivered", attrs...)
		return
	}
	if res.Outcome == OutcomeIgnored {
		s.logger.DebugContext(ctx, "join request left to moderators", attrs...)
		return
	}
	s.logger.InfoContext(ctx, "join request adjudicated", attrs...)
}
