package state

import (
	"sort"

	"github.com/julianstephens/culturepulse/internal/models"
)

// AppState is the framework-free part of the TUI state. Every transition below
// is a pure function returning a new value; side effects live in handlers.
type AppState struct {
	View            models.AppView
	Submissions     []models.Submission
	Loading         bool
	StoreConfigured bool
}

func NewAppState(storeConfigured bool) AppState {
	return AppState{
		View:            models.ViewSubmit,
		Submissions:     []models.Submission{},
		StoreConfigured: storeConfigured,
	}
}

// Navigate switches the active view. The second result reports whether the
// caller must reload submissions, which is the case only for the dashboard.
func Navigate(s AppState, v models.AppView) (AppState, bool) {
	s.View = v
	return s, v == models.ViewDashboard
}

// BeginLoad marks a fetch as in flight. It returns false, leaving the state
// untouched, when there is no store to fetch from.
func BeginLoad(s AppState) (AppState, bool) {
	if !s.StoreConfigured {
		return s, false
	}
	s.Loading = true
	return s, true
}

// CompleteLoad replaces the collection with the fetched list, newest first.
// A failed fetch arrives here as an empty list.
func CompleteLoad(s AppState, subs []models.Submission) AppState {
	s.Submissions = SortNewestFirst(subs)
	s.Loading = false
	return s
}

// InsertOptimistic prepends sub ahead of any server confirmation.
func InsertOptimistic(s AppState, sub models.Submission) AppState {
	next := make([]models.Submission, 0, len(s.Submissions)+1)
	next = append(next, sub)
	next = append(next, s.Submissions...)
	s.Submissions = next
	return s
}

// SortNewestFirst returns a copy of subs ordered by descending timestamp.
// Entries with equal timestamps keep their relative order.
func SortNewestFirst(subs []models.Submission) []models.Submission {
	out := make([]models.Submission, len(subs))
	copy(out, subs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}
