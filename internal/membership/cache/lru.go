package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"warden/internal/membership"
)

// LRU is an in-process Backend with a size bound and per-entry expiry.
type LRU struct {
	entries *expirable.LRU[string, membership.Standing]
}

// NewLRU builds an LRU backend. A size of zero means unbounded.
func NewLRU(size int, ttl time.Duration) *LRU {
	return &LRU{entries: expirable.NewLRU[string, membership.Standing](size, nil, ttl)}
}

func (c *LRU) Get(_ context.Context, key string) (membership.Standing, bool, error) {
	s, ok := c.entries.Get(key)
	return s, ok, nil
}

func (c *LRU) Set(_ context.Context, key string, standing membership.Standing) error {
	c.entries.Add(key, standing)
	return nil
}

// Len returns the number of live entries.
func (c *LRU) Len() int {
	return c.entries.Len()
}
