package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vcc/internal/domain"
	"vcc/internal/stats"
	"vcc/internal/store"
)

func TestDefaultsOnStart(t *testing.T) {
	m := NewManager()
	s := m.State()
	assert.Equal(t, "dashboard", s.ActiveView)
	assert.Empty(t, s.SelectedVentureID)
	assert.Equal(t, "all", s.Filters.Tier)
}

func TestSelectionClearedOnVentureDelete(t *testing.T) {
	st := store.New(store.Snapshot{Ventures: []domain.Venture{{ID: "v1", Name: "Alpha"}}})
	m := NewManager()
	cancel := m.Attach(st)
	defer cancel()

	m.Select("v1")
	st.Dispatch(store.DeleteVenture("v1"))

	assert.Empty(t, m.State().SelectedVentureID)
}

func TestUnrelatedDeleteKeepsSelection(t *testing.T) {
	st := store.New(store.Snapshot{Ventures: []domain.Venture{
		{ID: "v1", Name: "Alpha"},
		{ID: "v2", Name: "Beta"},
	}})
	m := NewManager()
	cancel := m.Attach(st)
	defer cancel()

	m.Select("v1")
	st.Dispatch(store.DeleteVenture("v2"))

	assert.Equal(t, "v1", m.State().SelectedVentureID)
}

func TestRemoteDeleteAlsoClearsSelection(t *testing.T) {
	st := store.New(store.Snapshot{Ventures: []domain.Venture{{ID: "v1", Name: "Alpha"}}})
	m := NewManager()
	cancel := m.Attach(st)
	defer cancel()

	m.Select("v1")
	st.DispatchRemote(store.DeleteVenture("v1"))

	assert.Empty(t, m.State().SelectedVentureID)
}

func TestUpdateReplacesState(t *testing.T) {
	m := NewManager()
	out := m.Update(State{ActiveView: "kanban", Filters: stats.Filter{Tier: "Parked", SortBy: "health"}, SidebarCollapsed: true})

	assert.Equal(t, "kanban", out.ActiveView)
	assert.True(t, m.State().SidebarCollapsed)
	assert.Equal(t, "health", m.State().Filters.SortBy)
}
