package actionplan

import (
	"strings"
	"testing"

	"github.com/julianstephens/culturepulse/internal/models"
)

var plan = models.ActionPlan{
	Summary: "The team is energised but stretched.",
	Points:  []string{"Trim recurring meetings", "Celebrate launches", "Rotate on-call fairly"},
}

func TestMarkdown(t *testing.T) {
	want := "**The team is energised but stretched.**\n\n" +
		"1. Trim recurring meetings\n" +
		"2. Celebrate launches\n" +
		"3. Rotate on-call fairly\n"
	if got := Markdown(plan); got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	got := New("notty", 80).Render(plan)
	for _, want := range []string{"energised", "Trim recurring meetings", "Rotate on-call fairly"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
}

func TestRenderNilFallsBackToMarkdown(t *testing.T) {
	var r *Renderer
	if got := r.Render(plan); got != Markdown(plan) {
		t.Errorf("nil Render() = %q", got)
	}
}

func TestResize(t *testing.T) {
	r := New("notty", 60)
	if r.Resize(60) != r {
		t.Error("Resize to same width should return the same renderer")
	}
	if got := r.Resize(100).Width(); got != 100 {
		t.Errorf("Width() = %d, want 100", got)
	}
}
