// Package domain holds the identifier primitives shared by every module.
//
// Platform identifiers are opaque signed 64-bit integers assigned by the chat
// platform. Group identifiers of supergroups are negative; user identifiers
// are positive. The types are distinct so a user ID can never be passed where a
// group ID is expected.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// GroupID identifies a chat group on the platform.
type GroupID int64

// UserID identifies a platform user (the requester).
type UserID int64

// ParseGroupID parses a decimal group identifier. Zero is rejected.
func ParseGroupID(s string) (GroupID, error) {
	v, err := parseID(s)
	if err != nil {
		return 0, fmt.Errorf("invalid group id %q: %w", s, err)
	}
	return GroupID(v), nil
}

// ParseUserID parses a decimal user identifier. Only positive values are valid.
func ParseUserID(s string) (UserID, error) {
	v, err := parseID(s)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid user id %q: must be positive", s)
	}
	return UserID(v), nil
}

func parseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, fmt.Errorf("must be non-zero")
	}
	return v, nil
}

func (id GroupID) Int64() int64 { return int64(id) }

func (id GroupID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id UserID) Int64() int64 { return int64(id) }

func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }
