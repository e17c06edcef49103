package decision

import "warden/internal/registry"

// Route is how a request is handled based on the target group's network.
type Route int

const (
	// RouteIgnore leaves requests to verification groups untouched.
	RouteIgnore Route = iota
	// RouteGated runs the eligibility checks.
	RouteGated
	// RouteReject declines requests to groups with an unrecognized network.
	RouteReject
)

// RouteFor maps a network to its route. Pure: no I/O.
func RouteFor(network registry.Network) Route {
	switch {
	case network.IsVerification():
		return RouteIgnore
	case network.IsGated():
		return RouteGated
	default:
		return RouteReject
	}
}

// DecideGated applies the gated-network rule chain. Pure: no I/O.
// Rule priority (fail-fast):
//  1. Already in the gated network: decline, whatever the eligibility
//  2. Long-standing verification member: approve
//  3. Otherwise: decline
func DecideGated(alreadyInGated, eligible bool) (Outcome, Reason) {
	if alreadyInGated {
		return OutcomeDeclined, ReasonAlreadyInGatedNetwork
	}
	if eligible {
		return OutcomeApproved, ReasonEligible
	}
	return OutcomeDeclined, ReasonNotEligible
}
