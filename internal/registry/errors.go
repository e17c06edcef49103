package registry

import (
	"fmt"

	"warden/pkg/platform/sentinel"
)

// ErrGroupNotFound is returned by Lookup for groups the registry does not manage.
var ErrGroupNotFound = fmt.Errorf("group not found: %w", sentinel.ErrNotFound)
