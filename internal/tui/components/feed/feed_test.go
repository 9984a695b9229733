package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, 80, 10); !strings.Contains(got, constants.EmptyFeedMessage) {
		t.Errorf("Render(nil) = %q, want empty message", got)
	}
}

func TestRenderItems(t *testing.T) {
	ts := time.Date(2024, 5, 17, 12, 0, 0, 0, time.Local).UnixMilli()
	subs := []models.Submission{
		{ID: "1", Mood: 5, Feedback: "Shipping felt great", Timestamp: ts},
		{ID: "2", Mood: 1, Feedback: "On-call was rough", Timestamp: ts},
	}

	got := Render(subs, 80, 10)
	for _, want := range []string{"Great", "Terrible", "Shipping felt great", "On-call was rough", "2024-05-17"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Shipping") > strings.Index(got, "On-call") {
		t.Error("Render() should keep the given order")
	}
}

func TestRenderLimit(t *testing.T) {
	subs := []models.Submission{
		{ID: "1", Mood: 3, Feedback: "first"},
		{ID: "2", Mood: 3, Feedback: "second"},
		{ID: "3", Mood: 3, Feedback: "third"},
	}
	got := Render(subs, 80, 2)
	if strings.Contains(got, "third") {
		t.Errorf("Render() with limit 2 included third item:\n%s", got)
	}
}

func TestBadgeOutOfRange(t *testing.T) {
	if got := Badge(7); !strings.Contains(got, "Mood 7") {
		t.Errorf("Badge(7) = %q", got)
	}
}
