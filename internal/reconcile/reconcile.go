package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"vcc/internal/store"
	"vcc/pkg/platform/circuit"
)

// State is the reconciler's connection lifecycle phase.
type State string

const (
	StateDisconnected State = "disconnected"
	StateBulkLoading  State = "bulk_loading"
	StateSubscribed   State = "subscribed"
	StateReconnecting State = "reconnecting"
)

type pendingKey struct {
	table string
	id    string
}

// Reconciler drives convergence between the store and the remote row
// store: bulk load on connect, realtime feed while connected, outbound
// push for local mutations. Every failure is logged and absorbed; the
// local store stays authoritative throughout.
type Reconciler struct {
	client  Client
	dial    FeedDialer
	store   *store.Store
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	breaker *circuit.Breaker

	backoffBase time.Duration
	backoffMax  time.Duration

	mu      sync.Mutex
	state   State
	pending map[pendingKey]outboundOp

	pushCh chan outboundOp
}

// outboundOp is one remote write owed for a local mutation.
type outboundOp struct {
	table  string
	id     string
	record any // nil for deletes
	delete bool
}

type Option func(*Reconciler)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) { r.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(r *Reconciler) { r.metrics = m }
}

func WithBackoff(base, max time.Duration) Option {
	return func(r *Reconciler) { r.backoffBase, r.backoffMax = base, max }
}

func New(client Client, dial FeedDialer, st *store.Store, opts ...Option) *Reconciler {
	r := &Reconciler{
		client:      client,
		dial:        dial,
		store:       st,
		logger:      slog.Default(),
		tracer:      otel.Tracer("vcc/reconcile"),
		backoffBase: time.Second,
		backoffMax:  30 * time.Second,
		breaker:     circuit.New(circuit.WithFailureThreshold(5)),
		state:       StateDisconnected,
		pending:     map[pendingKey]outboundOp{},
		pushCh:      make(chan outboundOp, 256),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reconciler) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
	if r.metrics != nil {
		r.metrics.SetState(s)
	}
	r.logger.Info("reconciler state changed", "state", string(s))
}

// Run connects, converges, and keeps the feed alive until ctx ends. It
// also starts the outbound push worker and the store subscription; both
// stop when ctx is done.
func (r *Reconciler) Run(ctx context.Context) {
	unsubscribe := r.store.Subscribe(r.onCommand)
	defer unsubscribe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.pushLoop(ctx)
	}()

	backoff := r.backoffBase
	for {
		if ctx.Err() != nil {
			break
		}

		r.setState(StateBulkLoading)
		r.bulkLoad(ctx)

		feed, err := r.dial(ctx)
		if err != nil {
			r.logger.Warn("feed dial failed", "error", err)
		} else {
			r.setState(StateSubscribed)
			backoff = r.backoffBase
			r.consume(ctx, feed)
			feed.Close()
		}
		if ctx.Err() != nil {
			break
		}

		r.setState(StateReconnecting)
		select {
		case <-ctx.Done():
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, r.backoffMax)
	}

	r.setState(StateDisconnected)
	wg.Wait()
}

// bulkLoad fetches every synced table concurrently and replaces each
// local collection with the remote rows. A fetch error or an empty
// result leaves that collection's local data in place.
func (r *Reconciler) bulkLoad(ctx context.Context) {
	ctx, span := r.tracer.Start(ctx, "reconcile.bulk_load")
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, table := range BulkTables {
		g.Go(func() error {
			rows, err := r.client.List(ctx, table)
			if err != nil {
				r.logger.Warn("bulk load failed", "table", table, "error", err)
				if r.metrics != nil {
					r.metrics.BulkLoadFailures.WithLabelValues(table).Inc()
				}
				return nil
			}
			if len(rows) == 0 {
				return nil
			}
			cmd, err := bulkCommand(table, rows)
			if err != nil {
				r.logger.Warn("bulk load undecodable", "table", table, "error", err)
				return nil
			}
			r.store.DispatchRemote(cmd)
			return nil
		})
	}
	g.Wait()
	span.SetAttributes(attribute.Int("tables", len(BulkTables)))
}

func (r *Reconciler) consume(ctx context.Context, feed Feed) {
	for {
		ev, err := feed.Next(ctx)
		if err != nil {
			if ctx.Err() == nil {
				r.logger.Warn("feed closed", "error", err)
			}
			return
		}
		cmd, err := eventCommand(ev)
		if err != nil {
			r.logger.Warn("feed event dropped", "table", ev.Table, "error", err)
			continue
		}
		if r.metrics != nil {
			r.metrics.FeedEvents.WithLabelValues(ev.Table, string(ev.Type)).Inc()
		}
		r.store.DispatchRemote(cmd)
	}
}

// onCommand mirrors local mutations into the push queue. Remote-origin
// commands are skipped to break the echo loop, and full-collection sets
// stay local since they carry no per-row intent.
func (r *Reconciler) onCommand(_ store.Snapshot, cmd store.Command, origin store.Origin) {
	if origin != store.OriginLocal || cmd.Kind() == store.KindSet {
		return
	}
	op := outboundOp{table: cmd.Collection(), id: cmd.TargetID(), delete: cmd.Kind() == store.KindDelete}
	if !op.delete {
		rec, ok := cmd.Record()
		if !ok {
			return
		}
		op.record = rec
	}
	select {
	case r.pushCh <- op:
	default:
		// queue full: remember the op so the next retry pass sends it
		r.mu.Lock()
		r.pending[pendingKey{op.table, op.id}] = op
		r.mu.Unlock()
	}
}

func (r *Reconciler) pushLoop(ctx context.Context) {
	retry := time.NewTicker(10 * time.Second)
	defer retry.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case op := <-r.pushCh:
			r.push(ctx, op)
		case <-retry.C:
			r.retryPending(ctx)
		}
	}
}

// push sends one owed op, unless the circuit is open. Open-circuit ops
// park in the pending map and wait for the retry pass to probe the
// remote back to health.
func (r *Reconciler) push(ctx context.Context, op outboundOp) {
	if r.breaker.IsOpen() {
		r.mu.Lock()
		r.pending[pendingKey{op.table, op.id}] = op
		r.mu.Unlock()
		return
	}
	r.attempt(ctx, op)
}

func (r *Reconciler) attempt(ctx context.Context, op outboundOp) {
	ctx, span := r.tracer.Start(ctx, "reconcile.push", trace.WithAttributes(
		attribute.String("table", op.table),
		attribute.Bool("delete", op.delete),
	))
	defer span.End()

	var err error
	if op.delete {
		err = r.client.Delete(ctx, op.table, op.id)
	} else {
		err = r.client.Upsert(ctx, op.table, op.record)
	}

	key := pendingKey{op.table, op.id}
	r.mu.Lock()
	if err != nil {
		r.pending[key] = op
	} else {
		delete(r.pending, key)
	}
	r.mu.Unlock()

	if err != nil {
		if r.breaker.RecordFailure() {
			r.logger.Warn("push circuit opened")
		}
		r.logger.Warn("push failed", "table", op.table, "id", op.id, "error", err)
		if r.metrics != nil {
			r.metrics.PushFailures.WithLabelValues(op.table).Inc()
		}
		return
	}
	if r.breaker.RecordSuccess() {
		r.logger.Info("push circuit closed")
	}
	if r.metrics != nil {
		r.metrics.Pushes.WithLabelValues(op.table).Inc()
	}
}

// retryPending resends every owed op, bypassing the circuit so a retry
// pass doubles as the health probe. Later local mutations of the same
// row overwrite the owed record, so the retry always pushes the newest
// known state.
func (r *Reconciler) retryPending(ctx context.Context) {
	r.mu.Lock()
	ops := make([]outboundOp, 0, len(r.pending))
	for _, op := range r.pending {
		ops = append(ops, op)
	}
	r.mu.Unlock()
	for _, op := range ops {
		if ctx.Err() != nil {
			return
		}
		r.attempt(ctx, op)
	}
}

// PendingCount reports how many outbound writes are still owed.
func (r *Reconciler) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
