package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const systemPrompt = "Jesteś asystentem nieruchomości. Odpowiadasz krótko, konkretnie, po polsku."

// Generator produces a free-form reply from a prompt. Implementations wrap
// a single model backend.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// NewGenerator builds the generator named by opts.Provider. An empty
// provider yields nil, which the composer treats as "fallback only".
func NewGenerator(opts Options) (Generator, error) {
	switch strings.ToLower(opts.Provider) {
	case "":
		return nil, nil
	case "openai":
		return newOpenAIGenerator(opts)
	case "ollama":
		return newOllamaGenerator(opts)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}

type llmGenerator struct {
	model llms.Model
}

func newOpenAIGenerator(opts Options) (Generator, error) {
	if opts.APIKey == "" {
		return nil, errors.New("openai provider requires an api key")
	}
	clientOpts := []openai.Option{
		openai.WithToken(opts.APIKey),
		openai.WithModel(opts.Model),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(opts.BaseURL))
	}
	client, err := openai.New(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("init openai client: %w", err)
	}
	return &llmGenerator{model: client}, nil
}

func newOllamaGenerator(opts Options) (Generator, error) {
	clientOpts := []ollama.Option{
		ollama.WithModel(opts.Model),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, ollama.WithServerURL(opts.BaseURL))
	}
	client, err := ollama.New(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("init ollama client: %w", err)
	}
	return &llmGenerator{model: client}, nil
}

func (g *llmGenerator) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}
	resp, err := g.model.GenerateContent(ctx, content, llms.WithTemperature(temperature))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return "", errors.New("model returned empty content")
	}
	return text, nil
}
