// Package httptransport is the HTTP surface over the store, stats,
// session, and alerts layers. Handlers translate requests into store
// commands and snapshots into JSON; none of them hold state of their
// own.
package httptransport

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"vcc/internal/audit"
	"vcc/internal/platform/metrics"
	"vcc/internal/session"
	"vcc/internal/store"
)

// Handler is the thin HTTP layer. It delegates to the store and the pure
// derivation packages so transport concerns remain isolated.
type Handler struct {
	store    *store.Store
	session  *session.Manager
	logger   *slog.Logger
	metrics  *metrics.Metrics
	journal  *audit.Publisher
	validate *validator.Validate
}

type Option func(*Handler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

func WithJournal(p *audit.Publisher) Option {
	return func(h *Handler) { h.journal = p }
}

func NewHandler(st *store.Store, sess *session.Manager, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		store:    st,
		session:  sess,
		logger:   logger,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
