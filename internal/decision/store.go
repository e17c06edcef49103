package decision

import "context"

// Store persists admissions.
type Store interface {
	// Upsert inserts the record or moves ApprovedAt on the existing one.
	Upsert(ctx context.Context, req JoinRequest) error
}
