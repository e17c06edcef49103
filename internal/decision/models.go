package decision

import (
	"time"

	"warden/internal/registry"
	id "warden/pkg/domain"
)

// Outcome is the terminal state of one adjudication.
type Outcome string

const (
	// OutcomeIgnored leaves the request to human moderators.
	OutcomeIgnored  Outcome = "ignored"
	OutcomeDeclined Outcome = "declined"
	OutcomeApproved Outcome = "approved"
)

// Reason explains an outcome.
type Reason string

const (
	ReasonGroupNotManaged       Reason = "group_not_managed"
	ReasonRegistryUnavailable   Reason = "registry_unavailable"
	ReasonVerificationNetwork   Reason = "verification_network"
	ReasonAlreadyInGatedNetwork Reason = "already_in_gated_network"
	ReasonEligible              Reason = "eligible"
	ReasonNotEligible           Reason = "not_eligible"
	ReasonUnknownNetwork        Reason = "unknown_network"
)

// Result describes what Adjudicate decided and did.
type Result struct {
	UserID  id.UserID
	GroupID id.GroupID
	Network registry.Network
	Outcome Outcome
	Reason  Reason
	// Delivered is true when the approve or decline call reached the platform.
	// Ignored results are never delivered.
	Delivered bool
	// DeliveryErr is the platform error when Delivered is false.
	DeliveryErr error
	// Persisted is true when an approval was recorded in the store.
	Persisted bool
	Duration  time.Duration
}

// JoinRequest records an admission. (UserID, GroupID) is the key; a repeat
// admission only moves ApprovedAt.
type JoinRequest struct {
	UserID     id.UserID
	GroupID    id.GroupID
	ApprovedAt time.Time
}
