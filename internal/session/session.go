// Package session tracks ephemeral view state: which view is active,
// which venture is selected, and the list filters. It is deliberately
// outside the snapshot so that none of it is persisted or pushed to the
// remote store, and losing it on restart is harmless.
package session

import (
	"sync"

	"vcc/internal/domain"
	"vcc/internal/stats"
	"vcc/internal/store"
)

// State is one copy of the current view state.
type State struct {
	ActiveView        string       `json:"activeView"`
	SelectedVentureID string       `json:"selectedVentureId,omitempty"`
	Filters           stats.Filter `json:"filters"`
	SidebarCollapsed  bool         `json:"sidebarCollapsed"`
}

// Manager guards view state behind its own lock, independent of the
// store's serialization.
type Manager struct {
	mu    sync.RWMutex
	state State
}

func NewManager() *Manager {
	return &Manager{state: State{ActiveView: "dashboard", Filters: stats.Filter{Tier: "all", Geo: "all", SortBy: "name"}}}
}

// Attach subscribes the manager to the store so a venture delete from
// any origin clears a matching selection. Returns the unsubscribe func.
func (m *Manager) Attach(st *store.Store) func() {
	return st.Subscribe(func(_ store.Snapshot, cmd store.Command, _ store.Origin) {
		if cmd.Collection() != domain.TableVentures || cmd.Kind() != store.KindDelete {
			return
		}
		m.mu.Lock()
		if m.state.SelectedVentureID == cmd.TargetID() {
			m.state.SelectedVentureID = ""
		}
		m.mu.Unlock()
	})
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Update replaces the view state wholesale.
func (m *Manager) Update(s State) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
	return m.state
}

func (m *Manager) Select(ventureID string) {
	m.mu.Lock()
	m.state.SelectedVentureID = ventureID
	m.mu.Unlock()
}

func (m *Manager) SetFilters(f stats.Filter) {
	m.mu.Lock()
	m.state.Filters = f
	m.mu.Unlock()
}
