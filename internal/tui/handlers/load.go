package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/state"
)

// LoadAll starts a fetch of every submission. It returns nil, leaving the
// state untouched, when the store is not configured.
func LoadAll(m *state.Model) tea.Cmd {
	next, ok := state.BeginLoad(m.AppState)
	if !ok {
		return nil
	}
	m.AppState = next

	store, ctx := m.Store, m.Ctx
	return func() tea.Msg {
		return SubmissionsLoadedMsg{Submissions: store.FetchAll(ctx)}
	}
}

// HandleSubmissionsLoaded replaces the collection with the fetched list
func HandleSubmissionsLoaded(m *state.Model, msg SubmissionsLoadedMsg) tea.Cmd {
	m.AppState = state.CompleteLoad(m.AppState, msg.Submissions)
	m.SyncDashboard()
	return nil
}

// Refresh reloads the dashboard on demand. It is a no-op outside the
// dashboard, without a store, or while a load is already running.
func Refresh(m *state.Model) tea.Cmd {
	if m.View != models.ViewDashboard || m.Loading {
		return nil
	}
	return LoadAll(m)
}
