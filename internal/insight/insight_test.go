package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
)

type fakeGenerator struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

var subs = []models.Submission{
	{ID: "1", Mood: 2, Feedback: `Deadlines feel "impossible"`, Timestamp: 2},
	{ID: "2", Mood: 5, Feedback: "Love the new retro format", Timestamp: 1},
}

const validPlan = `{"summary":"Mixed but hopeful.","points":[" Reset deadlines ","Keep retros","Share roadmap"]}`

func TestGenerateActionPlanEmptyInput(t *testing.T) {
	gen := &fakeGenerator{text: validPlan}

	for _, c := range []*Client{NewClient(gen), NewClient(nil)} {
		plan, err := c.GenerateActionPlan(context.Background(), nil)
		if err != nil {
			t.Fatalf("GenerateActionPlan() error = %v", err)
		}
		want := models.ActionPlan{
			Summary: constants.EmptyPlanSummary,
			Points:  []string{constants.EmptyPlanPoint},
		}
		if diff := cmp.Diff(want, plan); diff != "" {
			t.Errorf("plan mismatch (-want +got):\n%s", diff)
		}
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
}

func TestGenerateActionPlanNotConfigured(t *testing.T) {
	_, err := NewClient(nil).GenerateActionPlan(context.Background(), subs)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestGenerateActionPlan(t *testing.T) {
	gen := &fakeGenerator{text: validPlan}

	plan, err := NewClient(gen).GenerateActionPlan(context.Background(), subs)
	if err != nil {
		t.Fatalf("GenerateActionPlan() error = %v", err)
	}
	want := models.ActionPlan{
		Summary: "Mixed but hopeful.",
		Points:  []string{"Reset deadlines", "Keep retros", "Share roadmap"},
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if !strings.Contains(gen.prompts[0], `Mood: 2/5, Comment: "Deadlines feel \"impossible\""`) {
		t.Errorf("prompt missing first submission:\n%s", gen.prompts[0])
	}
}

func TestGenerateActionPlanFailures(t *testing.T) {
	upstream := errors.New("quota exceeded")

	tests := []struct {
		name    string
		gen     *fakeGenerator
		wantErr error
	}{
		{"generator error", &fakeGenerator{err: upstream}, upstream},
		{"empty text", &fakeGenerator{text: "  "}, ErrNoResponse},
		{"not json", &fakeGenerator{text: "Here is your plan"}, ErrMalformedPlan},
		{"empty summary", &fakeGenerator{text: `{"summary":"","points":["a","b","c"]}`}, ErrMalformedPlan},
		{"two points", &fakeGenerator{text: `{"summary":"s","points":["a","b"]}`}, ErrMalformedPlan},
		{"four points", &fakeGenerator{text: `{"summary":"s","points":["a","b","c","d"]}`}, ErrMalformedPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.gen).GenerateActionPlan(context.Background(), subs)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(subs)

	for _, want := range []string{
		"expert HR consultant",
		"Mood: 5/5, Comment: \"Love the new retro format\"",
		"1-sentence summary",
		"3-point plan",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Index(prompt, "Mood: 2/5") > strings.Index(prompt, "Mood: 5/5") {
		t.Error("prompt lines should follow collection order")
	}
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), "", ""); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestPlanSchema(t *testing.T) {
	s := planSchema()
	if diff := cmp.Diff([]string{"summary", "points"}, s.Required); diff != "" {
		t.Errorf("Required mismatch:\n%s", diff)
	}
	points := s.Properties["points"]
	if points == nil || points.MinItems == nil || *points.MinItems != 3 || *points.MaxItems != 3 {
		t.Errorf("points schema should require exactly 3 items: %+v", points)
	}
}
