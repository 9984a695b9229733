package models

// ActionPlan is the generated summary of the collected feedback.
// It is never persisted and is replaced wholesale on every generation.
type ActionPlan struct {
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
}
