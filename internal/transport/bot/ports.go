package bot

import (
	"context"

	"warden/internal/backlog"
	"warden/internal/botapi"
	"warden/internal/decision"
	id "warden/pkg/domain"
)

// UpdateSource long-polls the platform for updates.
type UpdateSource interface {
	GetUpdates(ctx context.Context, params botapi.GetUpdatesParams) ([]botapi.Update, error)
}

// Replier sends a text message into a chat.
type Replier interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyTo int64) (botapi.Message, error)
}

// Adjudicator decides a live join request.
type Adjudicator interface {
	Adjudicate(ctx context.Context, userID id.UserID, groupID id.GroupID) decision.Result
}

// Scanner runs a backlog scan.
type Scanner interface {
	ScanAll(ctx context.Context, trigger backlog.Trigger) backlog.Summary
}

// MemberLog records joins and leaves.
type MemberLog interface {
	Observe(ctx context.Context, update botapi.ChatMemberUpdated) (bool, error)
}
