package ports

import (
	"context"

	id "warden/pkg/domain"
)

// JoinRequestResolver delivers the verdict for a pending join request to the platform.
type JoinRequestResolver interface {
	Approve(ctx context.Context, groupID id.GroupID, userID id.UserID) error
	Decline(ctx context.Context, groupID id.GroupID, userID id.UserID) error
}
