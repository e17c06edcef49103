// Package policy decides who may join the gated network.
package policy

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"warden/internal/membership"
	"warden/internal/registry"
	id "warden/pkg/domain"
)

// DefaultMinTenure is how long a requester must have been a member of a
// verification group before becoming eligible.
const DefaultMinTenure = 7 * 24 * time.Hour

// Oracle is the membership search the policy needs.
type Oracle interface {
	AnyMemberAcrossNetwork(ctx context.Context, network registry.Network, userID id.UserID, pred membership.Predicate) bool
	CurrentMember() membership.Predicate
	LongStandingMember(minTenure time.Duration) membership.Predicate
}

// Verification evaluates eligibility for the gated network.
type Verification struct {
	oracle    Oracle
	minTenure time.Duration
	logger    *slog.Logger
}

type Option func(*Verification)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Verification) {
		v.logger = logger
	}
}

// WithMinTenure overrides DefaultMinTenure.
func WithMinTenure(d time.Duration) Option {
	return func(v *Verification) {
		if d >= 0 {
			v.minTenure = d
		}
	}
}

func New(oracle Oracle, opts ...Option) (*Verification, error) {
	if oracle == nil {
		return nil, errors.New("membership oracle is required")
	}
	v := &Verification{oracle: oracle, minTenure: DefaultMinTenure, logger: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// MinTenure returns the configured tenure threshold.
func (v *Verification) MinTenure() time.Duration {
	return v.minTenure
}

// IsEligibleForGatedNetwork reports whether userID has been a member of some
// verification-network group for at least the minimum tenure. Networks are
// searched in order and the search stops at the first match.
func (v *Verification) IsEligibleForGatedNetwork(ctx context.Context, userID id.UserID) bool {
	pred := v.oracle.LongStandingMember(v.minTenure)
	for _, network := range registry.VerificationNetworks {
		if v.oracle.AnyMemberAcrossNetwork(ctx, network, userID, pred) {
			v.logger.DebugContext(ctx, "requester verified",
				"user_id", userID.Int64(),
				"network", network.String(),
			)
			return true
		}
	}
	return false
}

// IsAlreadyInGatedNetwork reports whether userID currently belongs to any
// gated-network group, regardless of tenure.
func (v *Verification) IsAlreadyInGatedNetwork(ctx context.Context, userID id.UserID) bool {
	return v.oracle.AnyMemberAcrossNetwork(ctx, registry.NetworkPARNI, userID, v.oracle.CurrentMember())
}
