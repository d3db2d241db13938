package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vcc/internal/alerts"
	"vcc/internal/domain"
	"vcc/internal/stats"
	"vcc/internal/store"
	"vcc/internal/transport/httputil"
	dErrors "vcc/pkg/domain-errors"
)

type ventureRequest struct {
	Name        string `json:"name" validate:"required"`
	Prefix      string `json:"prefix" validate:"required,max=8"`
	Geo         string `json:"geo"`
	Tier        string `json:"tier" validate:"required,oneof='Active Build' Incubating Parked"`
	Status      string `json:"status"`
	Stage       string `json:"stage"`
	Color       string `json:"color"`
	LightColor  string `json:"lightColor"`
	Description string `json:"description"`
}

// handleListVentures returns the derived venture list, filtered and
// sorted by the query string.
func (h *Handler) handleListVentures(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := stats.Filter{
		Tier:   q.Get("tier"),
		Geo:    q.Get("geo"),
		Search: q.Get("search"),
		SortBy: q.Get("sort"),
	}
	all := stats.All(h.store.Snapshot())
	httputil.WriteJSON(w, http.StatusOK, stats.FilterVentures(all, filter))
}

func (h *Handler) handleCreateVenture(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[ventureRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	now := domain.Now()
	v := domain.Venture{
		ID:          domain.NewID(),
		Name:        req.Name,
		Prefix:      req.Prefix,
		Geo:         req.Geo,
		Tier:        domain.VentureTier(req.Tier),
		Status:      req.Status,
		Stage:       req.Stage,
		Color:       req.Color,
		LightColor:  req.LightColor,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	h.store.Dispatch(store.AddVenture(v))
	httputil.WriteJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleGetVenture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, v := range h.store.Snapshot().Ventures {
		if v.ID == id {
			httputil.WriteJSON(w, http.StatusOK, v)
			return
		}
	}
	httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "venture not found"))
}

func (h *Handler) handleUpdateVenture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, ok := findVenture(h.store.Snapshot(), id)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "venture not found"))
		return
	}
	req, ok := httputil.DecodeJSON[ventureRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	v := domain.Venture{
		ID:          id,
		Name:        req.Name,
		Prefix:      req.Prefix,
		Geo:         req.Geo,
		Tier:        domain.VentureTier(req.Tier),
		Status:      req.Status,
		Stage:       req.Stage,
		Color:       req.Color,
		LightColor:  req.LightColor,
		Description: req.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   domain.Now(),
	}
	h.store.Dispatch(store.UpdateVenture(v))
	httputil.WriteJSON(w, http.StatusOK, v)
}

// handleDeleteVenture removes the venture only. Child records keep their
// dangling references and are filtered out at read time.
func (h *Handler) handleDeleteVenture(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteVenture(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleVentureStats(w http.ResponseWriter, r *http.Request) {
	vs, ok := stats.ForVenture(h.store.Snapshot(), chi.URLParam(r, "id"))
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "venture not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, vs)
}

func (h *Handler) handleVentureTrend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap := h.store.Snapshot()
	if _, ok := findVenture(snap, id); !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "venture not found"))
		return
	}
	trend, ok := stats.HealthTrend(snap, id)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "not enough health snapshots"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, trend)
}

func (h *Handler) handlePortfolio(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, stats.Totals(h.store.Snapshot()))
}

func (h *Handler) handleAlerts(w http.ResponseWriter, _ *http.Request) {
	found := alerts.Evaluate(h.store.Snapshot(), domain.Today())
	if h.metrics != nil {
		h.metrics.AlertsEvaluated.Inc()
	}
	if found == nil {
		found = []alerts.Alert{}
	}
	httputil.WriteJSON(w, http.StatusOK, found)
}

// handleCaptureHealthSnapshots appends one health snapshot per venture
// with the current derived score. Snapshots are append-only.
func (h *Handler) handleCaptureHealthSnapshots(w http.ResponseWriter, _ *http.Request) {
	now := domain.Now()
	captured := make([]domain.HealthSnapshot, 0)
	for _, vs := range stats.All(h.store.Snapshot()) {
		hs := domain.HealthSnapshot{
			ID:         domain.NewID(),
			VentureID:  vs.ID,
			Score:      vs.HealthScore,
			RecordedAt: now,
		}
		h.store.Dispatch(store.AddHealthSnapshot(hs))
		captured = append(captured, hs)
	}
	httputil.WriteJSON(w, http.StatusCreated, captured)
}

func findVenture(snap store.Snapshot, id string) (domain.Venture, bool) {
	for _, v := range snap.Ventures {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Venture{}, false
}
