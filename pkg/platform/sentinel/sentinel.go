package sentinel

import "errors"

// ErrNotFound is returned, optionally wrapped, by stores when an entity does
// not exist. Services use errors.Is to tell absence from failure.
var ErrNotFound = errors.New("not found")
