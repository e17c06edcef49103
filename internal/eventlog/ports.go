package eventlog

import "context"

// Store appends member events. Append returns the event with its assigned ID.
type Store interface {
	Append(ctx context.Context, event MemberEvent) (MemberEvent, error)
}

// Sink receives recorded events for streaming. Publish must not block.
type Sink interface {
	Publish(event MemberEvent)
}
