package httptransport

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcc/internal/domain"
	"vcc/internal/platform/health"
	"vcc/internal/session"
	"vcc/internal/stats"
	"vcc/internal/store"
)

func newTestServer(t *testing.T, snap store.Snapshot) (*httptest.Server, *store.Store) {
	t.Helper()
	st := store.New(snap)
	logger := slog.New(slog.DiscardHandler)
	h := NewHandler(st, session.NewManager(), logger)
	srv := httptest.NewServer(NewRouter(h, health.New("test"), logger))
	t.Cleanup(srv.Close)
	return srv, st
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateAndListVentures(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{})

	resp := doJSON(t, http.MethodPost, srv.URL+"/ventures", map[string]any{
		"name":   "TruCycle",
		"prefix": "TC",
		"tier":   "Active Build",
		"geo":    "UK",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.Venture](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	resp = doJSON(t, http.MethodGet, srv.URL+"/ventures", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]stats.VentureStats](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "TruCycle", list[0].Name)
}

func TestCreateVentureValidation(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{})

	resp := doJSON(t, http.MethodPost, srv.URL+"/ventures", map[string]any{
		"name": "No tier",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTaskRequiresExistingVenture(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{})

	resp := doJSON(t, http.MethodPost, srv.URL+"/tasks", map[string]any{
		"venture_id": "ghost",
		"title":      "Orphan",
		"status":     "todo",
		"priority":   "P2",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTaskLifecycle(t *testing.T) {
	srv, st := newTestServer(t, store.Snapshot{
		Ventures: []domain.Venture{{ID: "v1", Name: "Alpha", Prefix: "AL", Tier: domain.TierActive}},
	})

	resp := doJSON(t, http.MethodPost, srv.URL+"/tasks", map[string]any{
		"venture_id": "v1",
		"title":      "Ship login",
		"status":     "todo",
		"priority":   "P1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decodeBody[domain.Task](t, resp)

	resp = doJSON(t, http.MethodPut, srv.URL+"/tasks/"+task.ID, map[string]any{
		"venture_id": "v1",
		"title":      "Ship login",
		"status":     "done",
		"priority":   "P1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[domain.Task](t, resp)
	assert.Equal(t, domain.StatusDone, updated.Status)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/tasks/"+task.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, st.Snapshot().Tasks)
}

func TestUpdateUnknownTaskReturns404(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{})

	resp := doJSON(t, http.MethodPut, srv.URL+"/tasks/ghost", map[string]any{
		"venture_id": "v1",
		"title":      "Nope",
		"status":     "todo",
		"priority":   "P3",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVentureStatsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{
		Ventures: []domain.Venture{{ID: "v1", Name: "Alpha", Prefix: "AL", Tier: domain.TierActive}},
		Tasks: []domain.Task{
			{ID: "t1", VentureID: "v1", Status: domain.StatusDone},
			{ID: "t2", VentureID: "v1", Status: domain.StatusTodo},
		},
	})

	resp := doJSON(t, http.MethodGet, srv.URL+"/ventures/v1/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	vs := decodeBody[stats.VentureStats](t, resp)
	assert.Equal(t, 2, vs.Tasks.Total)
	assert.Equal(t, 1, vs.Tasks.Done)
	assert.Positive(t, vs.HealthScore)

	resp = doJSON(t, http.MethodGet, srv.URL+"/ventures/ghost/stats", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCaptureHealthSnapshots(t *testing.T) {
	srv, st := newTestServer(t, store.Snapshot{
		Ventures: []domain.Venture{
			{ID: "v1", Name: "Alpha", Prefix: "AL", Tier: domain.TierActive},
			{ID: "v2", Name: "Beta", Prefix: "BE", Tier: domain.TierParked},
		},
	})

	resp := doJSON(t, http.MethodPost, srv.URL+"/health-snapshots/capture", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	captured := decodeBody[[]domain.HealthSnapshot](t, resp)
	assert.Len(t, captured, 2)
	assert.Len(t, st.Snapshot().HealthSnapshots, 2)
}

func TestMarkInsightRead(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{
		Insights: []domain.Insight{{ID: "i1", Title: "Note", Severity: domain.SeverityInfo}},
	})

	resp := doJSON(t, http.MethodPost, srv.URL+"/insights/i1/read", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ins := decodeBody[domain.Insight](t, resp)
	assert.True(t, ins.IsRead)

	resp = doJSON(t, http.MethodPost, srv.URL+"/insights/ghost/read", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateRecurringTask(t *testing.T) {
	srv, st := newTestServer(t, store.Snapshot{
		RecurringTasks: []domain.RecurringTask{{
			ID:         "rr1",
			VentureID:  "v1",
			Title:      "Weekly report",
			Priority:   domain.PriorityP2,
			Recurrence: domain.RecurWeekly,
			NextDue:    "2026-08-24",
			Active:     true,
		}},
	})

	resp := doJSON(t, http.MethodPost, srv.URL+"/recurring-tasks/rr1/generate", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decodeBody[domain.Task](t, resp)
	assert.Equal(t, "Weekly report", task.Title)
	assert.Contains(t, task.Tags, "recurring")

	snap := st.Snapshot()
	require.Len(t, snap.Tasks, 1)
	assert.NotEqual(t, "2026-08-24", snap.RecurringTasks[0].NextDue)
}

func TestAlertsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{
		Ventures: []domain.Venture{{ID: "v1", Name: "Alpha", Tier: domain.TierActive}},
		Tasks: []domain.Task{
			{ID: "t1", VentureID: "v1", Status: domain.StatusBlocked},
			{ID: "t2", VentureID: "v1", Status: domain.StatusBlocked},
			{ID: "t3", VentureID: "v1", Status: domain.StatusBlocked},
		},
	})

	resp := doJSON(t, http.MethodGet, srv.URL+"/alerts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decodeBody[[]map[string]any](t, resp)
	require.NotEmpty(t, found)
	assert.Equal(t, "critical", found[0]["severity"])
}

func TestSessionRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{})

	resp := doJSON(t, http.MethodPut, srv.URL+"/session", session.State{
		ActiveView:        "kanban",
		SelectedVentureID: "v1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeBody[session.State](t, resp)
	assert.Equal(t, "kanban", state.ActiveView)
	assert.Equal(t, "v1", state.SelectedVentureID)
}

func TestPortfolioTotals(t *testing.T) {
	srv, _ := newTestServer(t, store.FromSeed(domain.DefaultSeed()))

	resp := doJSON(t, http.MethodGet, srv.URL+"/portfolio", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	totals := decodeBody[stats.PortfolioTotals](t, resp)
	assert.Equal(t, 10, totals.TotalVentures)
	assert.Positive(t, totals.TotalTasks)
	assert.NotEmpty(t, totals.ByCurrency)
}

func TestRejectsNonJSONContentType(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/ventures", bytes.NewBufferString("name=x"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, store.Snapshot{})

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		resp := doJSON(t, http.MethodGet, srv.URL+path, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
