package store

import (
	"log/slog"
	"sync"
)

// Origin says where a command came from. Subscribers use it to avoid
// echoing remote-originated mutations back to the remote store.
type Origin string

const (
	OriginLocal  Origin = "local"
	OriginRemote Origin = "remote"
)

// SubscriberFunc receives the snapshot produced by a command together with
// the command itself. Callbacks run on the dispatching goroutine inside
// the store's critical section: they must return quickly, must not block,
// and must not dispatch back into the store. Hand work off to a channel
// the way the persistence adapter and reconciler do.
type SubscriberFunc func(snap Snapshot, cmd Command, origin Origin)

// Store is the serialized command processor. Local UI-driven commands and
// remote-feed-driven commands originate on different goroutines but both
// funnel through the same mutex-guarded apply, so Apply never executes
// concurrently with itself. Reads run lock-free against whatever snapshot
// value they already hold.
type Store struct {
	mu      sync.Mutex
	snap    Snapshot
	subs    []SubscriberFunc
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithMetrics attaches command counters.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New creates a store holding the given initial snapshot.
func New(initial Snapshot, opts ...Option) *Store {
	s := &Store{snap: initial}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current snapshot value.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers a callback invoked for every accepted command, in
// dispatch order. The returned function removes the subscription.
func (s *Store) Subscribe(fn SubscriberFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs[idx] = nil
	}
}

// Dispatch applies a locally-originated command and returns the resulting
// snapshot. Command application never fails; unknown-id updates and
// deletes are accepted no-ops.
func (s *Store) Dispatch(cmd Command) Snapshot {
	return s.dispatch(cmd, OriginLocal)
}

// DispatchRemote applies a command injected by the remote reconciler
// through the same serialized path as local commands.
func (s *Store) DispatchRemote(cmd Command) Snapshot {
	return s.dispatch(cmd, OriginRemote)
}

func (s *Store) dispatch(cmd Command, origin Origin) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = Apply(s.snap, cmd)
	if s.metrics != nil {
		s.metrics.CommandsApplied.WithLabelValues(cmd.Collection(), string(cmd.Kind()), string(origin)).Inc()
	}
	if s.logger != nil {
		s.logger.Debug("command applied",
			"collection", cmd.Collection(),
			"kind", string(cmd.Kind()),
			"origin", string(origin),
			"id", cmd.TargetID(),
		)
	}
	for _, fn := range s.subs {
		if fn != nil {
			fn(s.snap, cmd, origin)
		}
	}
	return s.snap
}
