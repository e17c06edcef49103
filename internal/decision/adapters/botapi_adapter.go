package adapters

import (
	"context"

	"warden/internal/decision/ports"
	id "warden/pkg/domain"
)

// JoinRequestClient is the slice of the bot client the resolver needs.
type JoinRequestClient interface {
	ApproveChatJoinRequest(ctx context.Context, chatID, userID int64) error
	DeclineChatJoinRequest(ctx context.Context, chatID, userID int64) error
}

// BotAPIResolver implements ports.JoinRequestResolver with the bot client.
type BotAPIResolver struct {
	client JoinRequestClient
}

var _ ports.JoinRequestResolver = (*BotAPIResolver)(nil)

func NewBotAPIResolver(client JoinRequestClient) *BotAPIResolver {
	return &BotAPIResolver{client: client}
}

func (a *BotAPIResolver) Approve(ctx context.Context, groupID id.GroupID, userID id.UserID) error {
	return a.client.ApproveChatJoinRequest(ctx, groupID.Int64(), userID.Int64())
}

func (a *BotAPIResolver) Decline(ctx context.Context, groupID id.GroupID, userID id.UserID) error {
	return a.client.DeclineChatJoinRequest(ctx, groupID.Int64(), userID.Int64())
}
