package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"social-pulse/config"
)

// GeminiClient implements Client on top of google.golang.org/genai.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGemini creates a Gemini-backed client from config + environment.
// A missing GEMINI_API_KEY fails here, before any network call is attempted.
func NewGemini(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	llmCfg := config.GetConfig().LLM
	if llmCfg.Provider != "google" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmCfg.Provider)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiClient{
		client:    client,
		modelName: llmCfg.ModelName,
	}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, system, prompt string) (*Result, error) {
	startTime := time.Now()

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return nil, err
	}

	out := &Result{
		Text:         result.Text(),
		ModelName:    c.modelName,
		ModelVersion: result.ModelVersion,
		Latency:      time.Since(startTime),
	}
	if result.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}
