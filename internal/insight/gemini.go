package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/julianstephens/culturepulse/internal/constants"
)

// GeminiGenerator calls the Gemini API with a structured JSON response schema.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = constants.DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Model() string {
	return g.model
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   planSchema(),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func planSchema() *genai.Schema {
	count := int64(constants.PlanPointCount)
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"points": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: fmt.Sprintf("A list of exactly %d actionable steps.", count),
				MinItems:    genai.Ptr(count),
				MaxItems:    genai.Ptr(count),
			},
		},
		Required: []string{"summary", "points"},
	}
}
