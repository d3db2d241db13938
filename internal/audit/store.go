package audit

import "context"

type Store interface {
	Append(ctx context.Context, event Event) error
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]Event, error)
	// ListByCollection returns all events for one collection, oldest first.
	ListByCollection(ctx context.Context, collection string) ([]Event, error)
}
