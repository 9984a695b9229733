package state

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/components/dashboard"
)

// Store is the submission store as seen by the TUI.
type Store interface {
	Configured() bool
	FetchAll(ctx context.Context) []models.Submission
	Append(ctx context.Context, sub models.Submission) bool
}

// Insights generates action plans.
type Insights interface {
	GenerateActionPlan(ctx context.Context, subs []models.Submission) (models.ActionPlan, error)
}

// SurveyFormModel is bound to the survey form fields
type SurveyFormModel struct {
	Mood     int
	Feedback string
}

// Model is the shared, mutable TUI state. It embeds AppState and is only ever
// modified from the Bubble Tea update loop.
type Model struct {
	AppState

	Ctx      context.Context
	Store    Store
	Insights Insights

	Keys      KeyMap
	Help      help.Model
	Spinner   spinner.Model
	Dashboard dashboard.Model

	Form       *huh.Form
	SurveyForm *SurveyFormModel
	Submitting bool
	Notice     string // transient message shown under the header

	Plan        *models.ActionPlan
	PlanLoading bool
	PlanError   string

	Quitting bool
	Width    int
	Height   int

	NewID func() string
	Now   func() time.Time
}

// New creates a state Model. ctx bounds every remote call the TUI makes.
func New(ctx context.Context, store Store, insights Insights) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		AppState:   NewAppState(store.Configured()),
		Ctx:        ctx,
		Store:      store,
		Insights:   insights,
		Keys:       DefaultKeyMap(),
		Help:       help.New(),
		Spinner:    sp,
		Dashboard:  dashboard.New(0, 0),
		SurveyForm: &SurveyFormModel{Mood: constants.DefaultMood},
		NewID:      func() string { return uuid.New().String() },
		Now:        time.Now,
	}
}

// Busy reports whether any remote call is in flight.
func (m *Model) Busy() bool {
	return m.Loading || m.Submitting || m.PlanLoading
}

// SyncDashboard pushes the current submissions and plan state into the dashboard component.
func (m *Model) SyncDashboard() {
	m.Dashboard.SetData(dashboard.Data{
		Submissions: m.Submissions,
		Plan:        m.Plan,
		PlanLoading: m.PlanLoading,
		PlanError:   m.PlanError,
	})
}
