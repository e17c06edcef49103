package store

import (
	"context"
	"fmt"
	"time"

	"warden/internal/eventlog"
	"warden/internal/platform/database"
	id "warden/pkg/domain"
)

// SQLStore appends to the member_logs table.
type SQLStore struct {
	db *database.DB
}

func NewSQL(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Append(ctx context.Context, event eventlog.MemberEvent) (eventlog.MemberEvent, error) {
	query := `
		INSERT INTO member_logs (user_id, group_id, event_type, timestamp)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, s.db.Rebind(query),
		event.UserID.Int64(),
		event.GroupID.Int64(),
		string(event.Kind),
		event.At.UTC(),
	).Scan(&event.ID)
	if err != nil {
		return eventlog.MemberEvent{}, fmt.Errorf("append member event: %w", err)
	}
	return event, nil
}

// ListByUser returns the user's events in insertion order.
func (s *SQLStore) ListByUser(ctx context.Context, userID id.UserID) ([]eventlog.MemberEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		s.db.Rebind(`SELECT id, user_id, group_id, event_type, timestamp FROM member_logs WHERE user_id = ? ORDER BY id`),
		userID.Int64(),
	)
	if err != nil {
		return nil, fmt.Errorf("list member events: %w", err)
	}
	defer rows.Close()

	var out []eventlog.MemberEvent
	for rows.Next() {
		var (
			e               eventlog.MemberEvent
			userID, groupID int64
			kind            string
			at              time.Time
		)
		if err := rows.Scan(&e.ID, &userID, &groupID, &kind, &at); err != nil {
			return nil, fmt.Errorf("scan member event: %w", err)
		}
		e.UserID = id.UserID(userID)
		e.GroupID = id.GroupID(groupID)
		e.Kind = eventlog.Kind(kind)
		e.At = at.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
