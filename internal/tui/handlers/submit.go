package handlers

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/state"
)

// NewSurveyForm creates the mood and feedback form
func NewSurveyForm(fm *state.SurveyFormModel) *huh.Form {
	options := make([]huh.Option[int], 0, models.MaxMood)
	for mood := models.MinMood; mood <= models.MaxMood; mood++ {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  %s", models.MoodEmoji(mood), models.MoodLabel(mood)), mood))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How are you feeling today?").
				Options(options...).
				Value(&fm.Mood),
			huh.NewText().
				Title("What's on your mind?").
				Placeholder(constants.FeedbackPlaceholder).
				CharLimit(constants.FeedbackCharLimit).
				Value(&fm.Feedback).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("feedback cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// ResetSurvey replaces the form with a fresh one at the default mood
func ResetSurvey(m *state.Model) tea.Cmd {
	m.SurveyForm = &state.SurveyFormModel{Mood: constants.DefaultMood}
	m.Form = NewSurveyForm(m.SurveyForm)
	return m.Form.Init()
}

// HandleSurveyState forwards input to the survey form and submits it on completion
func HandleSurveyState(m *state.Model, msg tea.Msg) tea.Cmd {
	if m.Submitting || m.Form == nil {
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		draft := models.Draft{Mood: m.SurveyForm.Mood, Feedback: m.SurveyForm.Feedback}
		if submit := SubmitNew(m, draft); submit != nil {
			return submit
		}
		return ResetSurvey(m)
	case huh.StateAborted:
		return SwitchView(m, models.ViewDashboard)
	}
	return cmd
}

// SubmitNew inserts the draft into the collection immediately and returns the
// command that appends it remotely. Invalid drafts are dropped without a
// command. The optimistic entry stays even if the append fails; the next load
// reconciles the collection with the store.
func SubmitNew(m *state.Model, draft models.Draft) tea.Cmd {
	sub, err := models.NewSubmission(draft, m.NewID(), m.Now())
	if err != nil {
		logger.Debug("Ignoring invalid submission", "err", err)
		return nil
	}

	m.AppState = state.InsertOptimistic(m.AppState, sub)
	m.Submitting = true
	m.Notice = ""
	m.SyncDashboard()

	store, ctx := m.Store, m.Ctx
	return func() tea.Msg {
		return SubmissionPostedMsg{ID: sub.ID, OK: store.Append(ctx, sub)}
	}
}

// HandleSubmissionPosted finishes a submission and moves to the dashboard
func HandleSubmissionPosted(m *state.Model, msg SubmissionPostedMsg) tea.Cmd {
	m.Submitting = false
	if !msg.OK {
		logger.Warn("Submission was not saved", "id", msg.ID)
		m.Notice = constants.SubmitFailedNotice
	}
	return SwitchView(m, models.ViewDashboard)
}
