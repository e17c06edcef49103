package membership

import (
	"context"
	"time"

	id "warden/pkg/domain"
)

// StatusMember is the only platform status counted as full membership.
// Administrators and creators do not count.
const StatusMember = "member"

// Standing is a user's remote status in one group. JoinedAt is nil when the
// platform does not report a join time.
type Standing struct {
	Status   string     `json:"status"`
	JoinedAt *time.Time `json:"joined_at,omitempty"`
}

// IsMember reports whether the standing is full membership.
func (s Standing) IsMember() bool {
	return s.Status == StatusMember
}

// HasTenure reports whether a member has held membership for at least
// minTenure at now. A missing join time counts as satisfying tenure: the
// platform omits it for memberships that predate join tracking.
func (s Standing) HasTenure(now time.Time, minTenure time.Duration) bool {
	if !s.IsMember() {
		return false
	}
	if s.JoinedAt == nil {
		return true
	}
	return now.Sub(*s.JoinedAt) >= minTenure
}

// Predicate decides whether userID satisfies a membership condition in groupID.
// It returns false on any remote failure.
type Predicate func(ctx context.Context, groupID id.GroupID, userID id.UserID) bool
