// Package eventlog keeps the append-only log of members joining and leaving
// managed chats.
package eventlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"warden/internal/botapi"
	id "warden/pkg/domain"
	"warden/pkg/requestcontext"
)

// Log records member events and forwards them to an optional sink.
type Log struct {
	store  Store
	sink   Sink
	logger *slog.Logger
}

type Option func(*Log)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// WithSink streams every recorded event to sink.
func WithSink(sink Sink) Option {
	return func(l *Log) {
		l.sink = sink
	}
}

func New(store Store, opts ...Option) (*Log, error) {
	if store == nil {
		return nil, errors.New("member event store is required")
	}
	l := &Log{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Record appends one event stamped with the request time. userID is the
// member whose status changed (the member_logs user_id column). When an
// admin adds or removes someone, that is the affected member and not the
// admin who acted.
func (l *Log) Record(ctx context.Context, userID id.UserID, groupID id.GroupID, kind Kind) error {
	event, err := l.store.Append(ctx, MemberEvent{
		UserID:  userID,
		GroupID: groupID,
		Kind:    kind,
		At:      requestcontext.Now(ctx),
	})
	if err != nil {
		return fmt.Errorf("record member event: %w", err)
	}
	l.logger.InfoContext(ctx, "member event recorded",
		"user_id", userID.Int64(),
		"group_id", groupID.Int64(),
		"event_type", string(kind),
	)
	if l.sink != nil {
		l.sink.Publish(event)
	}
	return nil
}

// Observe records a join or leave derived from a membership update. The
// recorded user is new_chat_member.user; from is used only when that is
// absent. Updates that are neither a join nor a leave are ignored and
// report false.
func (l *Log) Observe(ctx context.Context, update botapi.ChatMemberUpdated) (bool, error) {
	kind, ok := KindFromTransition(update.OldChatMember.Status, update.NewChatMember.Status)
	if !ok {
		return false, nil
	}
	userID := update.NewChatMember.User.ID
	if userID == 0 {
		userID = update.From.ID
	}
	if err := l.Record(ctx, id.UserID(userID), id.GroupID(update.Chat.ID), kind); err != nil {
		return false, err
	}
	return true, nil
}
