// Package actionplan renders an ActionPlan as terminal markdown.
package actionplan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/julianstephens/culturepulse/internal/models"
)

// Renderer wraps a glamour renderer sized to the dashboard.
type Renderer struct {
	term  *glamour.TermRenderer
	style string
	width int
}

// New builds a renderer for the given glamour style ("dark", "light", "notty").
// If glamour cannot be set up, Render falls back to the raw markdown.
func New(style string, width int) *Renderer {
	if width < 20 {
		width = 20
	}
	r := &Renderer{style: style, width: width}
	term, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		r.term = term
	}
	return r
}

func (r *Renderer) Width() int {
	return r.width
}

// Resize returns a renderer for the new width, or r itself if unchanged.
func (r *Renderer) Resize(width int) *Renderer {
	if r != nil && r.width == width {
		return r
	}
	style := "dark"
	if r != nil {
		style = r.style
	}
	return New(style, width)
}

// Markdown formats the plan as a summary paragraph and a numbered list.
func Markdown(plan models.ActionPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", plan.Summary)
	for i, p := range plan.Points {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return b.String()
}

func (r *Renderer) Render(plan models.ActionPlan) string {
	md := Markdown(plan)
	if r == nil || r.term == nil {
		return md
	}
	out, err := r.term.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
