package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
)

var (
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	itemStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1).
			MarginBottom(1)
)

// MoodColors maps mood levels 1..5 to terminal colors, shared with the histogram.
var MoodColors = map[int]lipgloss.Color{
	1: lipgloss.Color("196"),
	2: lipgloss.Color("208"),
	3: lipgloss.Color("220"),
	4: lipgloss.Color("112"),
	5: lipgloss.Color("42"),
}

// Badge renders the emoji and label for a mood level.
func Badge(mood int) string {
	label := models.MoodLabel(mood)
	if label == "" {
		label = fmt.Sprintf("Mood %d", mood)
	}
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := MoodColors[mood]; ok {
		style = style.Foreground(c)
	}
	return style.Render(models.MoodEmoji(mood) + " " + label)
}

// Render lists at most limit submissions in the order given. The caller is
// expected to pass them newest first.
func Render(subs []models.Submission, width, limit int) string {
	if len(subs) == 0 {
		return emptyStyle.Render(constants.EmptyFeedMessage)
	}
	if limit > 0 && len(subs) > limit {
		subs = subs[:limit]
	}

	textWidth := width - 4
	if textWidth < 20 {
		textWidth = 20
	}

	items := make([]string, 0, len(subs))
	for _, s := range subs {
		header := Badge(s.Mood) + "  " + dateStyle.Render(s.Time().Format(constants.DateFormat))
		body := textStyle.Width(textWidth).Render(s.Feedback)
		items = append(items, itemStyle.Render(header+"\n"+body))
	}
	return strings.Join(items, "\n")
}
