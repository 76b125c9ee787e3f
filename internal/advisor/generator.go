package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const generateTimeout = 60 * time.Second

// Generator turns a prompt into advisory text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var _ Generator = (*GeminiGenerator)(nil)

type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiGenerator(ctx context.Context, apiKey string, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Generate returns the text parts of the first candidate joined together.
// An empty string with a nil error means the model answered with no text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
