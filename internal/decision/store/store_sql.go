package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"warden/internal/decision"
	"warden/internal/platform/database"
	id "warden/pkg/domain"
)

// SQLStore keeps admissions in the requests table.
type SQLStore struct {
	db *database.DB
}

func NewSQL(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Upsert(ctx context.Context, req decision.JoinRequest) error {
	query := `
		INSERT INTO requests (user_id, group_id, timestamp)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, group_id) DO UPDATE SET
			timestamp = excluded.timestamp
	`
	_, err := s.db.ExecContext(ctx, s.db.Rebind(query), req.UserID.Int64(), req.GroupID.Int64(), req.ApprovedAt.UTC())
	if err != nil {
		return fmt.Errorf("upsert join request: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, userID id.UserID, groupID id.GroupID) (decision.JoinRequest, bool, error) {
	var ts time.Time
	err := s.db.QueryRowContext(ctx,
		s.db.Rebind(`SELECT timestamp FROM requests WHERE user_id = ? AND group_id = ?`),
		userID.Int64(), groupID.Int64(),
	).Scan(&ts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decision.JoinRequest{}, false, nil
		}
		return decision.JoinRequest{}, false, fmt.Errorf("get join request: %w", err)
	}
	return decision.JoinRequest{UserID: userID, GroupID: groupID, ApprovedAt: ts.UTC()}, true, nil
}

func (s *SQLStore) List(ctx context.Context) ([]decision.JoinRequest, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id, group_id, timestamp FROM requests ORDER BY group_id, user_id`)
	if err != nil {
		return nil, fmt.Errorf("list join requests: %w", err)
	}
	defer rows.Close()

	var out []decision.JoinRequest
	for rows.Next() {
		var (
			userID, groupID int64
			ts              time.Time
		)
		if err := rows.Scan(&userID, &groupID, &ts); err != nil {
			return nil, fmt.Errorf("scan join request: %w", err)
		}
		out = append(out, decision.JoinRequest{
			UserID:     id.UserID(userID),
			GroupID:    id.GroupID(groupID),
			ApprovedAt: ts.UTC(),
		})
	}
	return out, rows.Err()
}
