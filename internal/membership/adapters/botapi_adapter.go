package adapters

import (
	"context"

	"warden/internal/botapi"
	"warden/internal/membership"
	id "warden/pkg/domain"
)

// ChatMemberGetter is the slice of the bot client the adapter needs.
type ChatMemberGetter interface {
	GetChatMember(ctx context.Context, chatID, userID int64) (botapi.ChatMember, error)
}

// BotAPIRemote reads standings with getChatMember.
type BotAPIRemote struct {
	client ChatMemberGetter
}

var _ membership.Remote = (*BotAPIRemote)(nil)

func NewBotAPIRemote(client ChatMemberGetter) *BotAPIRemote {
	return &BotAPIRemote{client: client}
}

func (a *BotAPIRemote) Standing(ctx context.Context, groupID id.GroupID, userID id.UserID) (membership.Standing, error) {
	m, err := a.client.GetChatMember(ctx, groupID.Int64(), userID.Int64())
	if err != nil {
		return membership.Standing{}, err
	}
	return membership.Standing{Status: m.Status, JoinedAt: m.JoinedTime()}, nil
}
