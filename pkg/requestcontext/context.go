// Package requestcontext provides context accessors for values scoped to one
// unit of work: a live update, a backlog scan, or an operator trigger.
//
// Usage in services (read values):
//
//	now := requestcontext.Now(ctx)
//	scanID := requestcontext.ScanID(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

type (
	requestTimeKey struct{}
	scanIDKey      struct{}
	updateIDKey    struct{}
)

var (
	ContextKeyRequestTime = requestTimeKey{}
	ContextKeyScanID      = scanIDKey{}
	ContextKeyUpdateID    = updateIDKey{}
)

// Now returns the time injected into the context, or time.Now() when none is set.
// Tenure checks read the clock through here so tests can pin it.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok && !t.IsZero() {
		return t
	}
	return time.Now()
}

// WithTime pins the clock for everything downstream of ctx.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}

// ScanID returns the backlog scan correlation ID, or "" outside a scan.
func ScanID(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyScanID).(string); ok {
		return v
	}
	return ""
}

func WithScanID(ctx context.Context, scanID string) context.Context {
	return context.WithValue(ctx, ContextKeyScanID, scanID)
}

// UpdateID returns the platform update ID being handled, or 0 outside the dispatcher.
func UpdateID(ctx context.Context) int64 {
	if v, ok := ctx.Value(ContextKeyUpdateID).(int64); ok {
		return v
	}
	return 0
}

func WithUpdateID(ctx context.Context, updateID int64) context.Context {
	return context.WithValue(ctx, ContextKeyUpdateID, updateID)
}
