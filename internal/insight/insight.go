// Package insight turns collected feedback into a short management action plan.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/models"
)

var (
	// ErrNotConfigured is returned when there is feedback to analyse but no generator.
	ErrNotConfigured = errors.New("insight service not configured: missing API key")
	ErrNoResponse    = errors.New("no response from insight service")
	ErrMalformedPlan = errors.New("malformed action plan")
)

// Generator produces the raw JSON text of an action plan for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	gen Generator
}

// NewClient wraps gen. A nil generator is allowed; the client then only serves
// the canned empty-input plan.
func NewClient(gen Generator) *Client {
	return &Client{gen: gen}
}

func (c *Client) Configured() bool {
	return c != nil && c.gen != nil
}

// EmptyPlan is returned for an empty collection without calling the generator.
func EmptyPlan() models.ActionPlan {
	return models.ActionPlan{
		Summary: constants.EmptyPlanSummary,
		Points:  []string{constants.EmptyPlanPoint},
	}
}

// GenerateActionPlan summarises subs into a one-sentence summary and three points.
// Failures are returned to the caller; there is no local fallback plan.
func (c *Client) GenerateActionPlan(ctx context.Context, subs []models.Submission) (models.ActionPlan, error) {
	if len(subs) == 0 {
		return EmptyPlan(), nil
	}
	if !c.Configured() {
		return models.ActionPlan{}, ErrNotConfigured
	}

	logger.Debug("Requesting action plan", "submissions", len(subs))
	text, err := c.gen.Generate(ctx, BuildPrompt(subs))
	if err != nil {
		logger.Error("Error generating action plan", "err", err)
		return models.ActionPlan{}, fmt.Errorf("failed to generate action plan: %w", err)
	}

	plan, err := ParseActionPlan(text)
	if err != nil {
		logger.Error("Error generating action plan", "err", err)
		return models.ActionPlan{}, err
	}
	return plan, nil
}

// BuildPrompt renders the analysis prompt, one "Mood: N/5, Comment: ..." line per submission.
func BuildPrompt(subs []models.Submission) string {
	lines := make([]string, len(subs))
	for i, s := range subs {
		lines[i] = fmt.Sprintf("Mood: %d/5, Comment: %q", s.Mood, s.Feedback)
	}

	var b strings.Builder
	b.WriteString("You are an expert HR consultant and team culture specialist.\n")
	b.WriteString("Analyze the following anonymous employee feedback and mood ratings.\n\n")
	b.WriteString("Data:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nTask:\n")
	b.WriteString("1. Write a 1-sentence summary of the overall team sentiment.\n")
	fmt.Fprintf(&b, "2. Create a specific, actionable %d-point plan for management to improve or maintain the culture based on this feedback.\n\n", constants.PlanPointCount)
	b.WriteString("Keep the tone constructive, empathetic, and professional.\n")
	return b.String()
}

// ParseActionPlan decodes the generator output and checks its shape.
func ParseActionPlan(text string) (models.ActionPlan, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ActionPlan{}, ErrNoResponse
	}

	var plan models.ActionPlan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return models.ActionPlan{}, fmt.Errorf("%w: %v", ErrMalformedPlan, err)
	}

	plan.Summary = strings.TrimSpace(plan.Summary)
	if plan.Summary == "" {
		return models.ActionPlan{}, fmt.Errorf("%w: empty summary", ErrMalformedPlan)
	}
	if len(plan.Points) != constants.PlanPointCount {
		return models.ActionPlan{}, fmt.Errorf("%w: got %d points, want %d", ErrMalformedPlan, len(plan.Points), constants.PlanPointCount)
	}
	for i, p := range plan.Points {
		plan.Points[i] = strings.TrimSpace(p)
	}
	return plan, nil
}
