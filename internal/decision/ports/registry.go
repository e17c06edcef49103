package ports

import (
	"context"

	"warden/internal/registry"
	id "warden/pkg/domain"
)

// GroupDirectory resolves the network of a group.
// Lookup returns an error wrapping sentinel.ErrNotFound for unmanaged groups.
type GroupDirectory interface {
	Lookup(ctx context.Context, groupID id.GroupID) (registry.Group, error)
}
