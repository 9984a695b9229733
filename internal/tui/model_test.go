package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/handlers"
)

type stubStore struct {
	configured bool
	rows       []models.Submission
}

func (s stubStore) Configured() bool { return s.configured }

func (s stubStore) FetchAll(context.Context) []models.Submission { return s.rows }

func (s stubStore) Append(context.Context, models.Submission) bool { return true }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelStartsOnSurvey(t *testing.T) {
	m := NewModel(context.Background(), stubStore{}, nil)
	if m.AppState.View != models.ViewSubmit {
		t.Errorf("View = %s, want SUBMIT", m.AppState.View)
	}
	if m.Form == nil || m.SurveyForm.Mood != constants.DefaultMood {
		t.Error("survey form should be ready with the default mood")
	}
	if m.Init() == nil {
		t.Error("Init() should return startup commands")
	}
}

func TestLoadRequestOnStart(t *testing.T) {
	store := stubStore{configured: true, rows: []models.Submission{{ID: "a", Mood: 4, Feedback: "x", Timestamp: 1}}}
	m := NewModel(context.Background(), store, nil)

	m, cmd := update(t, m, handlers.LoadRequestMsg{})
	if cmd == nil || !m.Loading {
		t.Fatal("LoadRequestMsg should start a load")
	}
	m, _ = update(t, m, cmd())
	if m.Loading || len(m.Submissions) != 1 {
		t.Errorf("loading=%v subs=%d", m.Loading, len(m.Submissions))
	}
}

func TestViewShowsConfigWarning(t *testing.T) {
	m := NewModel(context.Background(), stubStore{}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if !strings.Contains(m.View(), constants.ConfigWarningMessage) {
		t.Error("unconfigured store should show the warning banner")
	}

	configured := NewModel(context.Background(), stubStore{configured: true}, nil)
	if strings.Contains(configured.View(), constants.ConfigWarningMessage) {
		t.Error("configured store should not show the warning banner")
	}
}

func TestTabShowsDashboard(t *testing.T) {
	m := NewModel(context.Background(), stubStore{}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.AppState.View != models.ViewDashboard {
		t.Fatalf("View = %s, want DASHBOARD", m.AppState.View)
	}
	if !strings.Contains(m.View(), "Average Mood") {
		t.Error("dashboard should render stat cards")
	}
}

func TestQuitFromDashboard(t *testing.T) {
	m := NewModel(context.Background(), stubStore{}, nil)
	m.AppState.View = models.ViewDashboard

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !m.Quitting {
		t.Fatal("q should quit on the dashboard")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
