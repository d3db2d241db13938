package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vcc/internal/audit"
	"vcc/internal/domain"
	"vcc/internal/session"
	"vcc/internal/store"
	"vcc/internal/transport/httputil"
	dErrors "vcc/pkg/domain-errors"
)

type teamRoleRequest struct {
	VentureID    string `json:"venture_id" validate:"required"`
	RoleName     string `json:"role_name" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=filled hiring later open"`
	AssigneeName string `json:"assignee_name"`
}

func (h *Handler) handleCreateTeamRole(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[teamRoleRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	role := domain.TeamRole{
		ID:           domain.NewID(),
		VentureID:    req.VentureID,
		RoleName:     req.RoleName,
		Status:       domain.RoleStatus(req.Status),
		AssigneeName: req.AssigneeName,
	}
	h.store.Dispatch(store.AddTeamRole(role))
	httputil.WriteJSON(w, http.StatusCreated, role)
}

func (h *Handler) handleUpdateTeamRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	found := false
	for _, existing := range h.store.Snapshot().TeamRoles {
		if existing.ID == id {
			found = true
			break
		}
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "team role not found"))
		return
	}
	req, ok := httputil.DecodeJSON[teamRoleRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	role := domain.TeamRole{
		ID:           id,
		VentureID:    req.VentureID,
		RoleName:     req.RoleName,
		Status:       domain.RoleStatus(req.Status),
		AssigneeName: req.AssigneeName,
	}
	h.store.Dispatch(store.UpdateTeamRole(role))
	httputil.WriteJSON(w, http.StatusOK, role)
}

func (h *Handler) handleDeleteTeamRole(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteTeamRole(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

type registrationRequest struct {
	VentureID string `json:"venture_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=domain company bank legal"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

func (h *Handler) handleCreateRegistration(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[registrationRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	reg := domain.Registration{
		ID:        domain.NewID(),
		VentureID: req.VentureID,
		Type:      domain.RegistrationType(req.Type),
		Completed: req.Completed,
		Notes:     req.Notes,
	}
	h.store.Dispatch(store.AddRegistration(reg))
	httputil.WriteJSON(w, http.StatusCreated, reg)
}

func (h *Handler) handleUpdateRegistration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	found := false
	for _, existing := range h.store.Snapshot().Registrations {
		if existing.ID == id {
			found = true
			break
		}
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "registration not found"))
		return
	}
	req, ok := httputil.DecodeJSON[registrationRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	reg := domain.Registration{
		ID:        id,
		VentureID: req.VentureID,
		Type:      domain.RegistrationType(req.Type),
		Completed: req.Completed,
		Notes:     req.Notes,
	}
	h.store.Dispatch(store.UpdateRegistration(reg))
	httputil.WriteJSON(w, http.StatusOK, reg)
}

type riskRequest struct {
	VentureID   string `json:"venture_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Likelihood  int    `json:"likelihood" validate:"min=1,max=5"`
	Impact      int    `json:"impact" validate:"min=1,max=5"`
	Status      string `json:"status" validate:"required,oneof=active mitigated accepted resolved"`
	Mitigation  string `json:"mitigation"`
}

func (h *Handler) handleCreateRisk(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[riskRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	risk := domain.Risk{
		ID:          domain.NewID(),
		VentureID:   req.VentureID,
		Title:       req.Title,
		Description: req.Description,
		Likelihood:  req.Likelihood,
		Impact:      req.Impact,
		Status:      domain.RiskStatus(req.Status),
		Mitigation:  req.Mitigation,
		CreatedAt:   domain.Now(),
	}
	h.store.Dispatch(store.AddRisk(risk))
	httputil.WriteJSON(w, http.StatusCreated, risk)
}

func (h *Handler) handleUpdateRisk(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var createdAt string
	found := false
	for _, existing := range h.store.Snapshot().Risks {
		if existing.ID == id {
			createdAt = existing.CreatedAt
			found = true
			break
		}
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "risk not found"))
		return
	}
	req, ok := httputil.DecodeJSON[riskRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	risk := domain.Risk{
		ID:          id,
		VentureID:   req.VentureID,
		Title:       req.Title,
		Description: req.Description,
		Likelihood:  req.Likelihood,
		Impact:      req.Impact,
		Status:      domain.RiskStatus(req.Status),
		Mitigation:  req.Mitigation,
		CreatedAt:   createdAt,
	}
	h.store.Dispatch(store.UpdateRisk(risk))
	httputil.WriteJSON(w, http.StatusOK, risk)
}

func (h *Handler) handleDeleteRisk(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteRisk(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

type financialRequest struct {
	VentureID string  `json:"venture_id" validate:"required"`
	Type      string  `json:"type" validate:"required,oneof=expense revenue funding runway"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Currency  string  `json:"currency" validate:"required,len=3"`
	Label     string  `json:"label" validate:"required"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Recurring bool    `json:"recurring"`
	Notes     string  `json:"notes"`
}

func (h *Handler) handleCreateFinancial(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[financialRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	rec := domain.FinancialRecord{
		ID:        domain.NewID(),
		VentureID: req.VentureID,
		Type:      domain.FinancialType(req.Type),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Label:     req.Label,
		Date:      req.Date,
		Recurring: req.Recurring,
		Notes:     req.Notes,
	}
	h.store.Dispatch(store.AddFinancial(rec))
	httputil.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleDeleteFinancial(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteFinancial(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

type documentRequest struct {
	VentureID string `json:"venture_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category"`
	URL       string `json:"url" validate:"required,url"`
	Notes     string `json:"notes"`
}

func (h *Handler) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[documentRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	doc := domain.Document{
		ID:        domain.NewID(),
		VentureID: req.VentureID,
		Name:      req.Name,
		Category:  req.Category,
		URL:       req.URL,
		Notes:     req.Notes,
		AddedAt:   domain.Now(),
	}
	h.store.Dispatch(store.AddDocument(doc))
	httputil.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteDocument(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

type resourceShareRequest struct {
	FromVentureID string `json:"from_venture_id" validate:"required"`
	ToVentureID   string `json:"to_venture_id" validate:"required,nefield=FromVentureID"`
	ResourceType  string `json:"resource_type" validate:"required,oneof=person tool budget knowledge"`
	ResourceName  string `json:"resource_name" validate:"required"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status        string `json:"status" validate:"required,oneof=active completed cancelled"`
	Notes         string `json:"notes"`
}

func (h *Handler) handleCreateResourceShare(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[resourceShareRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	share := domain.ResourceShare{
		ID:            domain.NewID(),
		FromVentureID: req.FromVentureID,
		ToVentureID:   req.ToVentureID,
		ResourceType:  domain.ResourceType(req.ResourceType),
		ResourceName:  req.ResourceName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        domain.SharingStatus(req.Status),
		Notes:         req.Notes,
		CreatedAt:     domain.Now(),
	}
	h.store.Dispatch(store.AddResourceShare(share))
	httputil.WriteJSON(w, http.StatusCreated, share)
}

func (h *Handler) handleDeleteResourceShare(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteResourceShare(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

type insightRequest struct {
	VentureID string `json:"venture_id"`
	Type      string `json:"type" validate:"required,oneof=summary alert suggestion health"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content"`
	Severity  string `json:"severity" validate:"required,oneof=info warning critical"`
}

func (h *Handler) handleListInsights(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.store.Snapshot().Insights)
}

func (h *Handler) handleCreateInsight(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[insightRequest](w, r)
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	ins := domain.Insight{
		ID:          domain.NewID(),
		VentureID:   req.VentureID,
		Type:        domain.InsightType(req.Type),
		Title:       req.Title,
		Content:     req.Content,
		Severity:    domain.InsightSeverity(req.Severity),
		GeneratedAt: domain.Now(),
	}
	h.store.Dispatch(store.AddInsight(ins))
	httputil.WriteJSON(w, http.StatusCreated, ins)
}

func (h *Handler) handleMarkInsightRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap := h.store.Dispatch(store.MarkInsightRead(id))
	for _, ins := range snap.Insights {
		if ins.ID == id {
			httputil.WriteJSON(w, http.StatusOK, ins)
			return
		}
	}
	httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "insight not found"))
}

func (h *Handler) handleDeleteInsight(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteInsight(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

// handleJournal returns the newest command journal entries. Returns 503
// when no journal is attached.
func (h *Handler) handleJournal(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "journal not enabled"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	events, err := h.journal.Recent(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "journal read failed"))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.session.State())
}

func (h *Handler) handlePutSession(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[session.State](w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.session.Update(*req))
}
