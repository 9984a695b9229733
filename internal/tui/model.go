package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/handlers"
	"github.com/julianstephens/culturepulse/internal/tui/state"
)

type Model struct {
	state.Model
}

// NewModel builds the TUI around a store and an insight client. ctx is used
// for every remote call and should live as long as the program.
func NewModel(ctx context.Context, store state.Store, insights state.Insights) Model {
	m := Model{Model: state.New(ctx, store, insights)}
	handlers.ResetSurvey(&m.Model)
	m.SyncDashboard()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Form.Init(),
		m.Spinner.Tick,
		func() tea.Msg { return handlers.LoadRequestMsg{} },
	)
}

func (m Model) ShortHelp() []key.Binding {
	k := m.Keys
	if m.AppState.View == models.ViewSubmit {
		return []key.Binding{k.Tab, k.Back}
	}
	keys := []key.Binding{k.Tab, k.Generate}
	if m.StoreConfigured {
		keys = append(keys, k.Refresh)
	}
	return append(keys, k.Help, k.Quit)
}

func (m Model) FullHelp() [][]key.Binding {
	k := m.Keys
	if m.AppState.View == models.ViewSubmit {
		return [][]key.Binding{{k.Tab, k.Back}}
	}
	actions := []key.Binding{k.Survey, k.Generate}
	if m.StoreConfigured {
		actions = append(actions, k.Refresh)
	}
	return [][]key.Binding{
		{k.Tab, k.Help, k.Quit},
		{k.Up, k.Down},
		actions,
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ctx context.Context, store state.Store, insights state.Insights) error {
	p := tea.NewProgram(NewModel(ctx, store, insights), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
