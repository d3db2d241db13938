package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vcc/internal/domain"
	"vcc/internal/recurring"
	"vcc/internal/store"
	"vcc/internal/transport/httputil"
	dErrors "vcc/pkg/domain-errors"
)

type taskRequest struct {
	VentureID   string   `json:"venture_id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Status      string   `json:"status" validate:"required,oneof=backlog todo in-progress review done blocked"`
	Priority    string   `json:"priority" validate:"required,oneof=P0 P1 P2 P3"`
	ParentID    string   `json:"parent_id"`
	MilestoneID string   `json:"milestone_id"`
	BlockedBy   string   `json:"blocked_by"`
	DueDate     string   `json:"due_date"`
	Tags        []string `json:"tags"`
}

func (req taskRequest) toTask(id, createdAt string) domain.Task {
	return domain.Task{
		ID:          id,
		VentureID:   req.VentureID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		ParentID:    req.ParentID,
		MilestoneID: req.MilestoneID,
		BlockedBy:   req.BlockedBy,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		CreatedAt:   createdAt,
		UpdatedAt:   domain.Now(),
	}
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	ventureID := r.URL.Query().Get("venture_id")
	if ventureID == "" {
		httputil.WriteJSON(w, http.StatusOK, snap.Tasks)
		return
	}
	out := make([]domain.Task, 0)
	for _, t := range snap.Tasks {
		if t.VentureID == ventureID {
			out = append(out, t)
		}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// handleCreateTask requires the venture to exist at creation time. This
// is the only referential check; later venture deletes may strand the
// task.
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[taskRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}
	if _, ok := findVenture(h.store.Snapshot(), req.VentureID); !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "venture does not exist"))
		return
	}

	task := req.toTask(domain.NewID(), domain.Now())
	h.store.Dispatch(store.AddTask(task))
	httputil.WriteJSON(w, http.StatusCreated, task)
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var existing *domain.Task
	for _, t := range h.store.Snapshot().Tasks {
		if t.ID == id {
			existing = &t
			break
		}
	}
	if existing == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "task not found"))
		return
	}
	req, ok := httputil.DecodeJSON[taskRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	task := req.toTask(id, existing.CreatedAt)
	h.store.Dispatch(store.UpdateTask(task))
	httputil.WriteJSON(w, http.StatusOK, task)
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteTask(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

type milestoneRequest struct {
	VentureID  string `json:"venture_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	TargetDate string `json:"target_date"`
	Progress   int    `json:"progress" validate:"min=0,max=100"`
}

func (h *Handler) handleCreateMilestone(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[milestoneRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	now := domain.Now()
	m := domain.Milestone{
		ID:         domain.NewID(),
		VentureID:  req.VentureID,
		Name:       req.Name,
		TargetDate: req.TargetDate,
		Progress:   req.Progress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	h.store.Dispatch(store.AddMilestone(m))
	httputil.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var existing *domain.Milestone
	for _, m := range h.store.Snapshot().Milestones {
		if m.ID == id {
			existing = &m
			break
		}
	}
	if existing == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "milestone not found"))
		return
	}
	req, ok := httputil.DecodeJSON[milestoneRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	m := domain.Milestone{
		ID:         id,
		VentureID:  req.VentureID,
		Name:       req.Name,
		TargetDate: req.TargetDate,
		Progress:   req.Progress,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  domain.Now(),
	}
	h.store.Dispatch(store.UpdateMilestone(m))
	httputil.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteMilestone(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

type recurringTaskRequest struct {
	VentureID   string `json:"venture_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"required,oneof=P0 P1 P2 P3"`
	Recurrence  string `json:"recurrence" validate:"required,oneof=daily weekly biweekly monthly"`
	NextDue     string `json:"next_due" validate:"required,datetime=2006-01-02"`
	Active      bool   `json:"active"`
}

func (h *Handler) handleListRecurringTasks(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.store.Snapshot().RecurringTasks)
}

func (h *Handler) handleCreateRecurringTask(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[recurringTaskRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	rule := domain.RecurringTask{
		ID:          domain.NewID(),
		VentureID:   req.VentureID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		Recurrence:  domain.RecurrencePattern(req.Recurrence),
		NextDue:     req.NextDue,
		Active:      req.Active,
		CreatedAt:   domain.Now(),
	}
	h.store.Dispatch(store.AddRecurringTask(rule))
	httputil.WriteJSON(w, http.StatusCreated, rule)
}

func (h *Handler) handleUpdateRecurringTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, ok := findRecurring(h.store.Snapshot(), id)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "recurring task not found"))
		return
	}
	req, ok := httputil.DecodeJSON[recurringTaskRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	rule := domain.RecurringTask{
		ID:            id,
		VentureID:     req.VentureID,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      domain.TaskPriority(req.Priority),
		Recurrence:    domain.RecurrencePattern(req.Recurrence),
		NextDue:       req.NextDue,
		LastGenerated: existing.LastGenerated,
		Active:        req.Active,
		CreatedAt:     existing.CreatedAt,
	}
	h.store.Dispatch(store.UpdateRecurringTask(rule))
	httputil.WriteJSON(w, http.StatusOK, rule)
}

func (h *Handler) handleDeleteRecurringTask(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteRecurringTask(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

// handleGenerateRecurringTask materializes one rule immediately,
// regardless of its due date.
func (h *Handler) handleGenerateRecurringTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rule, ok := findRecurring(h.store.Snapshot(), id)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "recurring task not found"))
		return
	}
	var snap store.Snapshot
	for _, cmd := range recurring.Generate(rule, domain.Today()) {
		snap = h.store.Dispatch(cmd)
	}
	httputil.WriteJSON(w, http.StatusCreated, snap.Tasks[len(snap.Tasks)-1])
}

// handleGenerateDue runs the daily sweep over every active rule.
func (h *Handler) handleGenerateDue(w http.ResponseWriter, _ *http.Request) {
	cmds := recurring.GenerateDue(h.store.Snapshot(), domain.Today())
	for _, cmd := range cmds {
		h.store.Dispatch(cmd)
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"generated": len(cmds) / 2})
}

func findRecurring(snap store.Snapshot, id string) (domain.RecurringTask, bool) {
	for _, rt := range snap.RecurringTasks {
		if rt.ID == id {
			return rt, true
		}
	}
	return domain.RecurringTask{}, false
}
