package backlog

import (
	"context"

	"warden/internal/decision"
	"warden/internal/registry"
	id "warden/pkg/domain"
)

// GroupSource lists the groups a scan covers.
type GroupSource interface {
	ListAll(ctx context.Context) ([]registry.Group, error)
}

// PendingSource fetches one page of pending join requests for a group.
type PendingSource interface {
	Pending(ctx context.Context, groupID id.GroupID, limit int) ([]id.UserID, error)
}

// Adjudicator decides one join request.
type Adjudicator interface {
	Adjudicate(ctx context.Context, userID id.UserID, groupID id.GroupID) decision.Result
}
