package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/state"
)

// GenerateActionPlan requests a plan for the current collection. Nothing
// happens when the collection is empty or a request is already running.
func GenerateActionPlan(m *state.Model) tea.Cmd {
	if len(m.Submissions) == 0 || m.PlanLoading || m.Insights == nil {
		return nil
	}

	m.PlanLoading = true
	m.PlanError = ""
	m.SyncDashboard()

	insights, ctx := m.Insights, m.Ctx
	subs := append([]models.Submission(nil), m.Submissions...)
	return func() tea.Msg {
		plan, err := insights.GenerateActionPlan(ctx, subs)
		return ActionPlanMsg{Plan: plan, Err: err}
	}
}

// HandleActionPlan stores a generated plan or shows the failure banner.
// A failed request keeps the previous plan.
func HandleActionPlan(m *state.Model, msg ActionPlanMsg) tea.Cmd {
	m.PlanLoading = false
	if msg.Err != nil {
		logger.Error("Error generating action plan", "err", msg.Err)
		m.PlanError = constants.PlanErrorMessage
	} else {
		plan := msg.Plan
		m.Plan = &plan
		m.PlanError = ""
	}
	m.SyncDashboard()
	return nil
}
