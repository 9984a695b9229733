package handlers

import "github.com/julianstephens/culturepulse/internal/models"

// LoadRequestMsg asks the update loop to run LoadAll. Init sends it because
// Init cannot mutate the model itself.
type LoadRequestMsg struct{}

// SubmissionsLoadedMsg carries the result of a fetch. An empty slice also
// stands for a failed fetch.
type SubmissionsLoadedMsg struct {
	Submissions []models.Submission
}

// SubmissionPostedMsg reports the outcome of a remote append.
type SubmissionPostedMsg struct {
	ID string
	OK bool
}

type ActionPlanMsg struct {
	Plan models.ActionPlan
	Err  error
}
