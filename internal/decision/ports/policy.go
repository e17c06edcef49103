package ports

import (
	"context"

	id "warden/pkg/domain"
)

// EligibilityPolicy answers the two membership questions a gated request needs.
// Both fail closed: remote errors yield false.
type EligibilityPolicy interface {
	IsAlreadyInGatedNetwork(ctx context.Context, userID id.UserID) bool
	IsEligibleForGatedNetwork(ctx context.Context, userID id.UserID) bool
}
