package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vcc/internal/platform/health"
	"vcc/internal/platform/middleware"
)

// NewRouter wires all public endpoints with middleware.
func NewRouter(h *Handler, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	if h.metrics != nil {
		r.Use(middleware.Latency(h.metrics.ObserveEndpointLatency))
	}

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/ventures", func(r chi.Router) {
		r.Get("/", h.handleListVentures)
		r.Post("/", h.handleCreateVenture)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetVenture)
			r.Put("/", h.handleUpdateVenture)
			r.Delete("/", h.handleDeleteVenture)
			r.Get("/stats", h.handleVentureStats)
			r.Get("/trend", h.handleVentureTrend)
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.handleListTasks)
		r.Post("/", h.handleCreateTask)
		r.Put("/{id}", h.handleUpdateTask)
		r.Delete("/{id}", h.handleDeleteTask)
	})

	r.Route("/milestones", func(r chi.Router) {
		r.Post("/", h.handleCreateMilestone)
		r.Put("/{id}", h.handleUpdateMilestone)
		r.Delete("/{id}", h.handleDeleteMilestone)
	})

	r.Route("/team-roles", func(r chi.Router) {
		r.Post("/", h.handleCreateTeamRole)
		r.Put("/{id}", h.handleUpdateTeamRole)
		r.Delete("/{id}", h.handleDeleteTeamRole)
	})

	r.Route("/registrations", func(r chi.Router) {
		r.Post("/", h.handleCreateRegistration)
		r.Put("/{id}", h.handleUpdateRegistration)
	})

	r.Route("/risks", func(r chi.Router) {
		r.Post("/", h.handleCreateRisk)
		r.Put("/{id}", h.handleUpdateRisk)
		r.Delete("/{id}", h.handleDeleteRisk)
	})

	r.Route("/financials", func(r chi.Router) {
		r.Post("/", h.handleCreateFinancial)
		r.Delete("/{id}", h.handleDeleteFinancial)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Post("/", h.handleCreateDocument)
		r.Delete("/{id}", h.handleDeleteDocument)
	})

	r.Route("/resource-shares", func(r chi.Router) {
		r.Post("/", h.handleCreateResourceShare)
		r.Delete("/{id}", h.handleDeleteResourceShare)
	})

	r.Route("/insights", func(r chi.Router) {
		r.Get("/", h.handleListInsights)
		r.Post("/", h.handleCreateInsight)
		r.Post("/{id}/read", h.handleMarkInsightRead)
		r.Delete("/{id}", h.handleDeleteInsight)
	})

	r.Route("/recurring-tasks", func(r chi.Router) {
		r.Get("/", h.handleListRecurringTasks)
		r.Post("/", h.handleCreateRecurringTask)
		r.Put("/{id}", h.handleUpdateRecurringTask)
		r.Delete("/{id}", h.handleDeleteRecurringTask)
		r.Post("/{id}/generate", h.handleGenerateRecurringTask)
		r.Post("/generate-due", h.handleGenerateDue)
	})

	r.Get("/journal", h.handleJournal)
	r.Get("/portfolio", h.handlePortfolio)
	r.Get("/alerts", h.handleAlerts)
	r.Post("/health-snapshots/capture", h.handleCaptureHealthSnapshots)

	r.Route("/session", func(r chi.Router) {
		r.Get("/", h.handleGetSession)
		r.Put("/", h.handlePutSession)
	})

	return r
}
