package adapters

import (
	"context"

	"warden/internal/botapi"
	id "warden/pkg/domain"
)

// JoinRequestLister is the slice of the bot client the pending source needs.
type JoinRequestLister interface {
	GetChatJoinRequests(ctx context.Context, chatID int64, limit int, offsetUserID int64) ([]botapi.ChatJoinRequest, error)
}

// BotAPIPending implements backlog.PendingSource. It always reads the first
// page; requests past it wait for a later scan.
type BotAPIPending struct {
	client JoinRequestLister
}

func NewBotAPIPending(client JoinRequestLister) *BotAPIPending {
	return &BotAPIPending{client: client}
}

func (a *BotAPIPending) Pending(ctx context.Context, groupID id.GroupID, limit int) ([]id.UserID, error) {
	reqs, err := a.client.GetChatJoinRequests(ctx, groupID.Int64(), limit, 0)
	if err != nil {
		return nil, err
	}
	users := make([]id.UserID, 0, len(reqs))
	for _, r := range reqs {
		users = append(users, id.UserID(r.From.ID))
	}
	return users, nil
}
