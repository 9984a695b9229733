package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/stats"
	"github.com/julianstephens/culturepulse/internal/tui/components/actionplan"
	"github.com/julianstephens/culturepulse/internal/tui/components/feed"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(2)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginTop(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().Width(10)
)

const barWidth = 30

// Data is everything the dashboard shows. It is rebuilt by the caller whenever
// submissions or the action plan change.
type Data struct {
	Submissions []models.Submission
	Plan        *models.ActionPlan
	PlanLoading bool
	PlanError   string
}

type Model struct {
	viewport viewport.Model
	plans    *actionplan.Renderer
	data     Data
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		plans:    actionplan.New("dark", width),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.plans = m.plans.Resize(width)
	m.Render()
}

func (m *Model) SetData(d Data) {
	m.data = d
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Render(m.data, m.width, m.plans))
}

// Render draws the full dashboard body: stat cards, histogram, insights and feed.
func Render(d Data, width int, plans *actionplan.Renderer) string {
	sections := []string{
		renderCards(d.Submissions),
		sectionStyle.Render("Mood Distribution"),
		renderHistogram(d.Submissions),
		sectionStyle.Render("AI Insights"),
		renderInsights(d, plans),
		sectionStyle.Render("Recent Feedback"),
		feed.Render(d.Submissions, width, constants.FeedLimit),
	}
	return strings.Join(sections, "\n")
}

func renderCards(subs []models.Submission) string {
	avg := cardStyle.Render(
		cardLabelStyle.Render("Average Mood") + "\n" +
			cardValueStyle.Render(stats.FormatAverage(subs)) + cardLabelStyle.Render(" / 5.0"),
	)
	count := cardStyle.Render(
		cardLabelStyle.Render("Responses") + "\n" +
			cardValueStyle.Render(fmt.Sprintf("%d", len(subs))),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, avg, count)
}

func renderHistogram(subs []models.Submission) string {
	buckets := stats.MoodHistogram(subs)
	max := stats.MaxCount(buckets)

	lines := make([]string, 0, len(buckets))
	// highest mood on top
	for i := len(buckets) - 1; i >= 0; i-- {
		b := buckets[i]
		n := 0
		if max > 0 {
			n = b.Count * barWidth / max
		}
		if b.Count > 0 && n == 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(feed.MoodColors[b.Mood]).Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("%s %s %s %d",
			models.MoodEmoji(b.Mood),
			labelStyle.Render(b.Label),
			bar,
			b.Count,
		))
	}
	return strings.Join(lines, "\n")
}

func renderInsights(d Data, plans *actionplan.Renderer) string {
	switch {
	case d.PlanLoading:
		return hintStyle.Render("Analyzing feedback…")
	case d.PlanError != "":
		return errorStyle.Render(d.PlanError)
	case d.Plan != nil:
		return plans.Render(*d.Plan) + "\n" + hintStyle.Render("g: refresh analysis")
	case len(d.Submissions) == 0:
		return hintStyle.Render("Submit feedback to unlock an action plan.")
	default:
		return hintStyle.Render("Press g to generate an action plan from the current feedback.")
	}
}
