package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vcc/internal/store"
)

// Publisher captures the command journal. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store  Store
	events chan Event
	wg     sync.WaitGroup
	logger *slog.Logger
	async  bool
}

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithAsyncBuffer enables async processing with the specified buffer size.
// Events are queued and persisted in a background goroutine.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.events = make(chan Event, size)
			p.async = true
		}
	}
}

// WithPublisherLogger sets a logger for async error reporting.
func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

// Attach subscribes the publisher to the store so every accepted command
// lands in the journal. Returns the unsubscribe func.
func (p *Publisher) Attach(st *store.Store) func() {
	return st.Subscribe(func(_ store.Snapshot, cmd store.Command, origin store.Origin) {
		p.Emit(context.Background(), Event{
			Collection: cmd.Collection(),
			Kind:       string(cmd.Kind()),
			Origin:     string(origin),
			TargetID:   cmd.TargetID(),
		})
	})
}

// processEvents runs in a goroutine and persists events from the channel.
func (p *Publisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.store.Append(context.Background(), event); err != nil {
			if p.logger != nil {
				p.logger.Error("failed to persist journal event",
					"error", err,
					"collection", event.Collection,
					"kind", event.Kind,
				)
			}
		}
	}
}

// Close shuts down the async publisher and waits for pending events to drain.
func (p *Publisher) Close() {
	if p.async && p.events != nil {
		close(p.events)
		p.wg.Wait()
	}
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}
	if p.async {
		// Non-blocking send; drop event if buffer is full to avoid blocking hot path
		select {
		case p.events <- base:
			return nil
		default:
			if p.logger != nil {
				p.logger.Warn("journal buffer full, event dropped",
					"collection", base.Collection,
					"kind", base.Kind,
				)
			}
			return nil
		}
	}
	return p.store.Append(ctx, base)
}

// Recent returns the newest events from the underlying store.
func (p *Publisher) Recent(ctx context.Context, limit int) ([]Event, error) {
	return p.store.Recent(ctx, limit)
}
