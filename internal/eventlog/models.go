package eventlog

import (
	"time"

	id "warden/pkg/domain"
)

// Kind is the direction of a membership change.
type Kind string

const (
	KindJoin  Kind = "join"
	KindLeave Kind = "leave"
)

const statusMember = "member"

// MemberEvent is one append-only row of the member log.
type MemberEvent struct {
	ID      int64      `json:"id"`
	UserID  id.UserID  `json:"user_id"`
	GroupID id.GroupID `json:"group_id"`
	Kind    Kind       `json:"event_type"`
	At      time.Time  `json:"timestamp"`
}

// KindFromTransition derives the event for a status change. Only moves into
// or out of the plain member status produce an event; promotions, demotions
// and restrictions report false.
func KindFromTransition(oldStatus, newStatus string) (Kind, bool) {
	switch {
	case oldStatus != statusMember && newStatus == statusMember:
		return KindJoin, true
	case oldStatus == statusMember && newStatus != statusMember:
		return KindLeave, true
	default:
		return "", false
	}
}
