package botapi

import (
	"encoding/json"
	"time"
)

// Chat member statuses reported by the platform.
const (
	StatusCreator       = "creator"
	StatusAdministrator = "administrator"
	StatusMember        = "member"
	StatusRestricted    = "restricted"
	StatusLeft          = "left"
	StatusKicked        = "kicked"
)

// Update kinds requested from getUpdates.
const (
	UpdateMessage         = "message"
	UpdateChatJoinRequest = "chat_join_request"
	UpdateChatMember      = "chat_member"
)

type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

// ChatMember is a user's standing in one chat. JoinedAt is a unix timestamp
// and is absent for memberships that predate join tracking.
type ChatMember struct {
	Status   string `json:"status"`
	User     User   `json:"user"`
	JoinedAt *int64 `json:"joined_at,omitempty"`
}

// JoinedTime converts JoinedAt to a time, or nil when absent.
func (m ChatMember) JoinedTime() *time.Time {
	if m.JoinedAt == nil || *m.JoinedAt <= 0 {
		return nil
	}
	t := time.Unix(*m.JoinedAt, 0).UTC()
	return &t
}

type ChatJoinRequest struct {
	Chat       Chat  `json:"chat"`
	From       User  `json:"from"`
	UserChatID int64 `json:"user_chat_id,omitempty"`
	Date       int64 `json:"date"`
}

type ChatMemberUpdated struct {
	Chat          Chat       `json:"chat"`
	From          User       `json:"from"`
	Date          int64      `json:"date"`
	OldChatMember ChatMember `json:"old_chat_member"`
	NewChatMember ChatMember `json:"new_chat_member"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      Chat   `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text,omitempty"`
}

// Update is one entry of a getUpdates batch. Exactly one payload field is set.
type Update struct {
	UpdateID        int64              `json:"update_id"`
	Message         *Message           `json:"message,omitempty"`
	ChatJoinRequest *ChatJoinRequest   `json:"chat_join_request,omitempty"`
	ChatMember      *ChatMemberUpdated `json:"chat_member,omitempty"`
}

// Kind names the payload carried by the update.
func (u Update) Kind() string {
	switch {
	case u.ChatJoinRequest != nil:
		return UpdateChatJoinRequest
	case u.ChatMember != nil:
		return UpdateChatMember
	case u.Message != nil:
		return UpdateMessage
	default:
		return "unknown"
	}
}

// GetUpdatesParams configures one long-poll request.
type GetUpdatesParams struct {
	Offset         int64    `json:"offset,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

type envelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
	Parameters  *responseParams `json:"parameters,omitempty"`
}

type responseParams struct {
	RetryAfter      int   `json:"retry_after,omitempty"`
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
}
