package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vcc/internal/audit"
	"vcc/internal/domain"
	"vcc/internal/persist"
	"vcc/internal/platform/config"
	"vcc/internal/platform/health"
	"vcc/internal/platform/logger"
	"vcc/internal/platform/metrics"
	"vcc/internal/reconcile"
	"vcc/internal/recurring"
	"vcc/internal/session"
	"vcc/internal/store"
	httptransport "vcc/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Domain logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing venture control center",
		"addr", cfg.Addr,
		"data_dir", cfg.DataDir,
		"remote", cfg.RemoteEnabled(),
	)

	adapter, err := persist.Open(cfg.DataDir,
		persist.WithLogger(log),
		persist.WithMetrics(persist.NewMetrics()),
		persist.WithDebounce(cfg.PersistDebounce),
	)
	if err != nil {
		log.Error("opening blob store failed", "error", err)
		os.Exit(1)
	}

	seed := domain.DefaultSeed()
	initial, ok := adapter.Load(seed)
	if !ok {
		initial = store.FromSeed(seed)
		log.Info("no persisted state, starting from seed")
	}

	st := store.New(initial,
		store.WithLogger(log),
		store.WithMetrics(store.NewMetrics()),
	)

	appMetrics := metrics.New()
	st.Subscribe(func(snap store.Snapshot, _ store.Command, _ store.Origin) {
		appMetrics.ObserveSnapshot(snap)
	})

	journal := audit.NewPublisher(audit.NewInMemoryStore(4096),
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	)
	journal.Attach(st)
	defer journal.Close()

	sess := session.NewManager()
	sess.Attach(st)
	adapter.Watch(st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.RemoteEnabled() {
		client := reconcile.NewRESTClient(cfg.RemoteURL, cfg.RemoteKey)
		dial := func(ctx context.Context) (reconcile.Feed, error) {
			return reconcile.DialFeed(ctx, cfg.RemoteFeedURL, cfg.RemoteKey, reconcile.FeedTables)
		}
		rec := reconcile.New(client, dial, st,
			reconcile.WithLogger(log),
			reconcile.WithMetrics(reconcile.NewMetrics()),
		)
		go rec.Run(ctx)
	}

	// hourly sweep for due recurring rules
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for _, cmd := range recurring.GenerateDue(st.Snapshot(), domain.Today()) {
					st.Dispatch(cmd)
				}
			}
		}
	}()

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("blob_store", adapter.Ping)

	handler := httptransport.NewHandler(st, sess, log,
		httptransport.WithMetrics(appMetrics),
		httptransport.WithJournal(journal),
	)
	router := httptransport.NewRouter(handler, healthHandler, log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := adapter.Close(); err != nil {
		log.Error("closing blob store failed", "error", err)
	}

	log.Info("server stopped")
}
