package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/state"
)

// SwitchView changes the active view. Entering the dashboard reloads the
// collection; entering the survey starts a fresh form.
func SwitchView(m *state.Model, v models.AppView) tea.Cmd {
	next, reload := state.Navigate(m.AppState, v)
	m.AppState = next
	if reload {
		return LoadAll(m)
	}
	return ResetSurvey(m)
}

// HandleGlobalKeys handles keys that apply regardless of focus. In the survey
// view only ctrl+c, tab and esc are global so the form receives everything else.
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return true, tea.Quit
	}

	if m.View == models.ViewSubmit {
		if m.Submitting {
			// swallow input until the append finishes
			return true, nil
		}
		switch {
		case key.Matches(msg, m.Keys.Tab), key.Matches(msg, m.Keys.Back):
			return true, SwitchView(m, models.ViewDashboard)
		}
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Tab), key.Matches(msg, m.Keys.Survey):
		return true, SwitchView(m, models.ViewSubmit)
	case key.Matches(msg, m.Keys.Refresh):
		return true, Refresh(m)
	case key.Matches(msg, m.Keys.Generate):
		return true, GenerateActionPlan(m)
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	}
	return false, nil
}
