package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"warden/internal/platform/database"
	"warden/internal/registry"
	id "warden/pkg/domain"
)

// SQLStore keeps groups in the groups table. Column names follow the first
// deployment's schema: city holds the label and is_old_group the legacy flag.
type SQLStore struct {
	db *database.DB
}

func NewSQL(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

const selectGroup = `SELECT group_id, city, region_code, is_old_group, network FROM groups`

func (s *SQLStore) Get(ctx context.Context, groupID id.GroupID) (registry.Group, error) {
	row := s.db.QueryRowContext(ctx, s.db.Rebind(selectGroup+` WHERE group_id = ?`), groupID.Int64())
	g, err := scanGroup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return registry.Group{}, registry.ErrGroupNotFound
		}
		return registry.Group{}, fmt.Errorf("get group: %w", err)
	}
	return g, nil
}

func (s *SQLStore) ListByNetwork(ctx context.Context, network registry.Network) ([]id.GroupID, error) {
	rows, err := s.db.QueryContext(ctx, s.db.Rebind(`SELECT group_id FROM groups WHERE network = ?`), string(network))
	if err != nil {
		return nil, fmt.Errorf("list groups by network: %w", err)
	}
	defer rows.Close()

	var ids []id.GroupID
	for rows.Next() {
		var groupID int64
		if err := rows.Scan(&groupID); err != nil {
			return nil, fmt.Errorf("scan group id: %w", err)
		}
		ids = append(ids, id.GroupID(groupID))
	}
	return ids, rows.Err()
}

func (s *SQLStore) ListAll(ctx context.Context) ([]registry.Group, error) {
	rows, err := s.db.QueryContext(ctx, selectGroup+` ORDER BY group_id`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []registry.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return n, nil
}

// Upsert writes all groups in one transaction. The network column is never
// overwritten for an existing row.
func (s *SQLStore) Upsert(ctx context.Context, groups []registry.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin group upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.db.Rebind(`
		INSERT INTO groups (group_id, city, region_code, is_old_group, network)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (group_id) DO UPDATE SET
			city = excluded.city,
			region_code = excluded.region_code,
			is_old_group = excluded.is_old_group`))
	if err != nil {
		return fmt.Errorf("prepare group upsert: %w", err)
	}
	defer stmt.Close()

	for _, g := range groups {
		var region sql.NullInt64
		if g.RegionCode != nil {
			region = sql.NullInt64{Int64: int64(*g.RegionCode), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, g.ID.Int64(), g.Label, region, g.Legacy, string(g.Network)); err != nil {
			return fmt.Errorf("upsert group %s: %w", g.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit group upsert: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (registry.Group, error) {
	var (
		groupID int64
		label   sql.NullString
		region  sql.NullInt64
		legacy  sql.NullBool
		network sql.NullString
	)
	if err := row.Scan(&groupID, &label, &region, &legacy, &network); err != nil {
		return registry.Group{}, err
	}
	g := registry.Group{
		ID:      id.GroupID(groupID),
		Network: registry.ParseNetwork(network.String),
		Label:   label.String,
		Legacy:  legacy.Bool,
	}
	// Region 0 was the first deployment's placeholder for "no region".
	if region.Valid && region.Int64 != 0 {
		r := int(region.Int64)
		g.RegionCode = &r
	}
	return g, nil
}
