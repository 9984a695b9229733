package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/culturepulse/internal/models"
)

func sub(id string, mood int, ts int64) models.Submission {
	return models.Submission{ID: id, Mood: mood, Feedback: "fb " + id, Timestamp: ts}
}

func ids(subs []models.Submission) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.ID
	}
	return out
}

func TestNewAppState(t *testing.T) {
	s := NewAppState(true)
	if s.View != models.ViewSubmit {
		t.Errorf("View = %s, want SUBMIT", s.View)
	}
	if s.Loading {
		t.Error("Loading should start false")
	}
	if s.Submissions == nil || len(s.Submissions) != 0 {
		t.Errorf("Submissions = %v, want empty", s.Submissions)
	}
}

func TestNavigate(t *testing.T) {
	s := NewAppState(true)

	s, reload := Navigate(s, models.ViewDashboard)
	if !reload || s.View != models.ViewDashboard {
		t.Errorf("to dashboard: view=%s reload=%v", s.View, reload)
	}

	s, reload = Navigate(s, models.ViewDashboard)
	if !reload {
		t.Error("re-entering the dashboard should still reload")
	}

	s, reload = Navigate(s, models.ViewSubmit)
	if reload || s.View != models.ViewSubmit {
		t.Errorf("to submit: view=%s reload=%v", s.View, reload)
	}
}

func TestBeginLoad(t *testing.T) {
	s, ok := BeginLoad(NewAppState(false))
	if ok || s.Loading {
		t.Errorf("unconfigured: ok=%v loading=%v, want false/false", ok, s.Loading)
	}

	s, ok = BeginLoad(NewAppState(true))
	if !ok || !s.Loading {
		t.Errorf("configured: ok=%v loading=%v, want true/true", ok, s.Loading)
	}
}

func TestCompleteLoadSortsAndClearsLoading(t *testing.T) {
	s, _ := BeginLoad(NewAppState(true))
	s = CompleteLoad(s, []models.Submission{sub("old", 3, 1), sub("new", 4, 3), sub("mid", 5, 2)})

	if s.Loading {
		t.Error("Loading should be cleared")
	}
	if diff := cmp.Diff([]string{"new", "mid", "old"}, ids(s.Submissions)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteLoadWithEmptyResult(t *testing.T) {
	s := NewAppState(true)
	s = InsertOptimistic(s, sub("a", 3, 1))
	s, _ = BeginLoad(s)
	s = CompleteLoad(s, []models.Submission{})

	if s.Loading || len(s.Submissions) != 0 {
		t.Errorf("loading=%v subs=%v, want false and empty", s.Loading, s.Submissions)
	}
}

func TestInsertOptimistic(t *testing.T) {
	base := CompleteLoad(NewAppState(true), []models.Submission{sub("b", 2, 2), sub("a", 1, 1)})
	before := append([]models.Submission(nil), base.Submissions...)

	next := InsertOptimistic(base, sub("c", 5, 3))

	if diff := cmp.Diff([]string{"c", "b", "a"}, ids(next.Submissions)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, base.Submissions); diff != "" {
		t.Errorf("input collection mutated:\n%s", diff)
	}
}

func TestSortNewestFirstIsStable(t *testing.T) {
	in := []models.Submission{sub("x", 1, 5), sub("y", 2, 5), sub("z", 3, 9)}
	got := SortNewestFirst(in)

	if diff := cmp.Diff([]string{"z", "x", "y"}, ids(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if in[0].ID != "x" || in[2].ID != "z" {
		t.Error("input slice was reordered")
	}
}
