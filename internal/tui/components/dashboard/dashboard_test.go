package dashboard

import (
	"strings"
	"testing"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/components/actionplan"
)

var subs = []models.Submission{
	{ID: "1", Mood: 5, Feedback: "Great demo day", Timestamp: 3},
	{ID: "2", Mood: 4, Feedback: "Solid week", Timestamp: 2},
	{ID: "3", Mood: 5, Feedback: "Loved pairing", Timestamp: 1},
}

func render(d Data) string {
	return Render(d, 80, actionplan.New("notty", 80))
}

func TestRenderStats(t *testing.T) {
	got := render(Data{Submissions: subs})
	for _, want := range []string{"4.7", "/ 5.0", "Responses", "3", "Great demo day"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	got := render(Data{Submissions: []models.Submission{}})
	if !strings.Contains(got, constants.EmptyFeedMessage) {
		t.Error("empty dashboard should show the empty feed message")
	}
	if !strings.Contains(got, "Submit feedback to unlock") {
		t.Error("empty dashboard should not offer plan generation")
	}
}

func TestRenderInsightStates(t *testing.T) {
	plan := &models.ActionPlan{Summary: "Morale is high.", Points: []string{"a", "b", "c"}}

	tests := []struct {
		name string
		data Data
		want string
	}{
		{"idle", Data{Submissions: subs}, "Press g to generate"},
		{"loading", Data{Submissions: subs, PlanLoading: true}, "Analyzing feedback"},
		{"error", Data{Submissions: subs, PlanError: constants.PlanErrorMessage}, constants.PlanErrorMessage},
		{"ready", Data{Submissions: subs, Plan: plan}, "Morale is high."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.data); !strings.Contains(got, tt.want) {
				t.Errorf("Render() missing %q", tt.want)
			}
		})
	}
}

func TestHistogramOrder(t *testing.T) {
	got := renderHistogram(subs)
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("histogram has %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "Great") || !strings.HasSuffix(lines[0], " 2") {
		t.Errorf("first line = %q, want Great with count 2", lines[0])
	}
	if !strings.Contains(lines[4], "Terrible") || !strings.HasSuffix(lines[4], " 0") {
		t.Errorf("last line = %q, want Terrible with count 0", lines[4])
	}
}

func TestModelSetData(t *testing.T) {
	m := New(80, 40)
	m.SetSize(80, 40)
	m.SetData(Data{Submissions: subs})
	if !strings.Contains(m.View(), "Average Mood") {
		t.Error("View() should contain the stat cards")
	}
}
