package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.AppState.View {
	case models.ViewSubmit:
		content = m.viewSurvey()
	case models.ViewDashboard:
		content = m.Dashboard.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewBanner(),
		docStyle.Render(content),
		m.Help.View(m),
	)
}

func (m Model) viewHeader() string {
	parts := []string{titleStyle.Render("CulturePulse"), " "}
	for _, tab := range []struct {
		title string
		view  models.AppView
	}{
		{"Survey", models.ViewSubmit},
		{"Results", models.ViewDashboard},
	} {
		if m.AppState.View == tab.view {
			parts = append(parts, activeTabStyle.Render(tab.title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab.title))
		}
	}
	if m.Loading && m.AppState.View == models.ViewDashboard {
		parts = append(parts, " ", m.Spinner.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewBanner() string {
	switch {
	case m.Notice != "":
		return noticeStyle.Render(m.Notice)
	case !m.StoreConfigured:
		return warningStyle.Render(constants.ConfigWarningMessage)
	}
	return ""
}

func (m Model) viewSurvey() string {
	if m.Submitting {
		return m.Spinner.View() + " Sending feedback…"
	}
	if m.Form == nil {
		return ""
	}
	return m.Form.View()
}
