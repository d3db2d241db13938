// Package persist is the local durability layer: the domain collections
// are serialized as one JSON blob under a fixed key in an embedded
// BadgerDB. Writes are debounced and best effort; a failed write is
// logged and dropped, never surfaced to the mutation path.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"vcc/internal/domain"
	"vcc/internal/store"
)

const stateKey = "vcc-state"

// persistedState is the blob schema. View state is deliberately absent:
// it is per-process and does not survive a restart on purpose.
type persistedState struct {
	Ventures        []domain.Venture         `json:"ventures"`
	Tasks           []domain.Task            `json:"tasks"`
	Milestones      []domain.Milestone       `json:"milestones"`
	TeamRoles       []domain.TeamRole        `json:"team_roles"`
	Registrations   []domain.Registration    `json:"registrations"`
	ActivityStats   []domain.ActivityStats   `json:"activity_stats"`
	HealthSnapshots []domain.HealthSnapshot  `json:"health_snapshots"`
	RecurringTasks  []domain.RecurringTask   `json:"recurring_tasks"`
	Financials      []domain.FinancialRecord `json:"financials"`
	Documents       []domain.Document        `json:"documents"`
	Risks           []domain.Risk            `json:"risks"`
	ResourceShares  []domain.ResourceShare   `json:"resource_shares"`
	Insights        []domain.Insight         `json:"insights"`
}

// Adapter owns the badger handle and the debounced write loop.
type Adapter struct {
	db       *badger.DB
	logger   *slog.Logger
	metrics  *Metrics
	debounce time.Duration

	trigger chan struct{}
	stop    chan struct{}
	done    chan struct{}
	source  func() store.Snapshot
}

type Option func(*Adapter)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(a *Adapter) { a.metrics = m }
}

func WithDebounce(d time.Duration) Option {
	return func(a *Adapter) { a.debounce = d }
}

// Open opens the blob store at dir, creating it if needed.
func Open(dir string, opts ...Option) (*Adapter, error) {
	if dir == "" {
		return nil, errors.New("persist: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("persist: create data directory: %w", err)
	}
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("persist: open badger: %w", err)
	}
	return newAdapter(db, opts...), nil
}

// OpenInMemory opens a non-durable adapter for tests.
func OpenInMemory(opts ...Option) (*Adapter, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("persist: open badger: %w", err)
	}
	return newAdapter(db, opts...), nil
}

func newAdapter(db *badger.DB, opts ...Option) *Adapter {
	a := &Adapter{
		db:       db,
		logger:   slog.Default(),
		debounce: 500 * time.Millisecond,
		trigger:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load reads the persisted blob. ok is false when no blob exists or it
// cannot be decoded; the caller falls back to the seed either way. Each
// empty collection inside a decoded blob also falls back to its seed
// counterpart, so a blob written before a collection existed still loads.
func (a *Adapter) Load(seed domain.Seed) (store.Snapshot, bool) {
	var raw []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(stateKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.Snapshot{}, false
	}
	if err != nil {
		a.logger.Warn("persisted state unreadable, falling back to seed", "error", err)
		return store.Snapshot{}, false
	}

	var ps persistedState
	if err := json.Unmarshal(raw, &ps); err != nil {
		a.logger.Warn("persisted state corrupt, falling back to seed", "error", err)
		return store.Snapshot{}, false
	}

	snap := store.Snapshot{
		Ventures:        fallback(ps.Ventures, seed.Ventures),
		Tasks:           fallback(ps.Tasks, seed.Tasks),
		Milestones:      fallback(ps.Milestones, seed.Milestones),
		TeamRoles:       fallback(ps.TeamRoles, seed.TeamRoles),
		Registrations:   fallback(ps.Registrations, seed.Registrations),
		ActivityStats:   fallback(ps.ActivityStats, seed.ActivityStats),
		HealthSnapshots: fallback(ps.HealthSnapshots, seed.HealthSnapshots),
		RecurringTasks:  fallback(ps.RecurringTasks, seed.RecurringTasks),
		Financials:      fallback(ps.Financials, seed.Financials),
		Documents:       fallback(ps.Documents, seed.Documents),
		Risks:           fallback(ps.Risks, seed.Risks),
		ResourceShares:  fallback(ps.ResourceShares, seed.ResourceShares),
		Insights:        ps.Insights, // no seed counterpart
	}
	return snap, true
}

func fallback[T any](loaded, seed []T) []T {
	if len(loaded) == 0 {
		return seed
	}
	return loaded
}

// Ping verifies the blob store is readable. An absent blob is healthy.
func (a *Adapter) Ping() error {
	err := a.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(stateKey))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

// Save writes the snapshot synchronously. Used by the write loop and by
// shutdown for the final flush.
func (a *Adapter) Save(snap store.Snapshot) error {
	raw, err := json.Marshal(persistedState{
		Ventures:        snap.Ventures,
		Tasks:           snap.Tasks,
		Milestones:      snap.Milestones,
		TeamRoles:       snap.TeamRoles,
		Registrations:   snap.Registrations,
		ActivityStats:   snap.ActivityStats,
		HealthSnapshots: snap.HealthSnapshots,
		RecurringTasks:  snap.RecurringTasks,
		Financials:      snap.Financials,
		Documents:       snap.Documents,
		Risks:           snap.Risks,
		ResourceShares:  snap.ResourceShares,
		Insights:        snap.Insights,
	})
	if err != nil {
		return fmt.Errorf("persist: encode state: %w", err)
	}
	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), raw)
	})
	if err != nil {
		return fmt.Errorf("persist: write state: %w", err)
	}
	return nil
}

// Watch subscribes to the store and starts the debounced write loop.
// The subscriber only pokes a buffered channel, so the store's critical
// section never waits on disk. Returns the store unsubscribe func;
// Close stops the loop itself.
func (a *Adapter) Watch(st *store.Store) func() {
	a.source = st.Snapshot
	go a.writeLoop()
	return st.Subscribe(func(store.Snapshot, store.Command, store.Origin) {
		select {
		case a.trigger <- struct{}{}:
		default:
		}
	})
}

func (a *Adapter) writeLoop() {
	defer close(a.done)
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-a.trigger:
			if timer == nil {
				timer = time.NewTimer(a.debounce)
				fire = timer.C
			}
		case <-fire:
			timer = nil
			fire = nil
			a.flush()
		case <-a.stop:
			if timer != nil {
				timer.Stop()
			}
			a.flush()
			return
		}
	}
}

func (a *Adapter) flush() {
	if err := a.Save(a.source()); err != nil {
		a.logger.Error("state write failed", "error", err)
		if a.metrics != nil {
			a.metrics.WriteFailures.Inc()
		}
		return
	}
	if a.metrics != nil {
		a.metrics.Writes.Inc()
	}
}

// Close stops the write loop, flushes any pending write, and closes the
// database.
func (a *Adapter) Close() error {
	if a.source != nil {
		close(a.stop)
		<-a.done
	}
	return a.db.Close()
}
