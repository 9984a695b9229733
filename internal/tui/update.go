package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		// header, notice and help take roughly four lines
		m.Dashboard.SetSize(msg.Width-h, msg.Height-v-4)
		if m.Form != nil {
			m.Form = m.Form.WithWidth(msg.Width - h)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case handlers.LoadRequestMsg:
		return m, handlers.LoadAll(&m.Model)

	case handlers.SubmissionsLoadedMsg:
		return m, handlers.HandleSubmissionsLoaded(&m.Model, msg)

	case handlers.SubmissionPostedMsg:
		return m, handlers.HandleSubmissionPosted(&m.Model, msg)

	case handlers.ActionPlanMsg:
		return m, handlers.HandleActionPlan(&m.Model, msg)

	case tea.KeyMsg:
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			return m, cmd
		}
	}

	if m.AppState.View == models.ViewSubmit {
		return m, handlers.HandleSurveyState(&m.Model, msg)
	}

	var cmd tea.Cmd
	m.Dashboard, cmd = m.Dashboard.Update(msg)
	return m, cmd
}
