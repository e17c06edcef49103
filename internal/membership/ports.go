package membership

import (
	"context"

	"warden/internal/registry"
	id "warden/pkg/domain"
)

// Remote fetches a user's standing in a group from the platform.
type Remote interface {
	Standing(ctx context.Context, groupID id.GroupID, userID id.UserID) (Standing, error)
}

// GroupLister lists the groups of a network.
type GroupLister interface {
	ListByNetwork(ctx context.Context, network registry.Network) ([]id.GroupID, error)
}
