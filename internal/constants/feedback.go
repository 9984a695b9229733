package constants

const (
	// Survey
	DefaultMood         = 3
	FeedbackCharLimit   = 500
	FeedbackPlaceholder = "Share your thoughts on projects, team vibes, or office snacks..."
	SubmitFailedNotice  = "Could not save your feedback to the sheet."

	// Insight generation
	EmptyPlanSummary = "No feedback available yet."
	EmptyPlanPoint   = "Collect more feedback to generate an action plan."
	PlanPointCount   = 3
	PlanErrorMessage = "Failed to generate plan. Please try again."

	// Dashboard
	EmptyFeedMessage     = "No feedback yet. Be the first!"
	ConfigWarningMessage = "⚠ Sheet endpoint not configured: feedback will not be saved"
	FeedLimit            = 20
)
