// Package openai implements ports.Narrator against any OpenAI-compatible
// chat completion API.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/henryperkins/Tarot-Master/internal/domain"
	"github.com/henryperkins/Tarot-Master/internal/ports"
)

const (
	temperature = 0.8
	maxTokens   = 800
)

// Client generates reading narratives through the chat completion API.
type Client struct {
	client         *gopenai.Client
	model          string
	fallbackModels []string
	logger         *slog.Logger
}

func NewClient(apiKey, baseURL, model string, fallbackModels []string, timeout time.Duration, logger *slog.Logger) *Client {
	cfg := gopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		client:         gopenai.NewClientWithConfig(cfg),
		model:          model,
		fallbackModels: fallbackModels,
		logger:         logger,
	}
}

// Narrate asks the configured model for a narrative, trying fallback
// models in order when the primary fails.
func (c *Client) Narrate(ctx context.Context, in ports.NarrateInput) (string, error) {
	models := make([]string, 0, 1+len(c.fallbackModels))
	models = append(models, c.model)
	models = append(models, c.fallbackModels...)

	var lastErr error
	for _, model := range models {
		narrative, err := c.narrateWithModel(ctx, in, model)
		if err == nil {
			return narrative, nil
		}
		lastErr = err
		if len(models) > 1 {
			c.logger.WarnContext(ctx, "model failed, trying next", "model", model, "error", err)
		}
	}
	return "", lastErr
}

func (c *Client) narrateWithModel(ctx context.Context, in ports.NarrateInput, model string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: gopenai.ChatMessageRoleUser, Content: buildUserPrompt(in)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrUpstreamLLM)
	}

	narrative := strings.TrimSpace(resp.Choices[0].Message.Content)
	if narrative == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrUpstreamLLM)
	}
	return narrative, nil
}

const systemPrompt = `You are a wise and compassionate tarot reader with deep knowledge of the Rider-Waite-Smith tradition. You provide insightful, meaningful readings that help people gain clarity and perspective on their lives.

Your readings should:
- Be warm, supportive, and empowering
- Connect the cards meaningfully to create a cohesive narrative
- Acknowledge both challenges and opportunities
- Offer practical wisdom and actionable insights
- Use elegant, mystical language that feels authentic
- Be around 200-300 words

Never be fatalistic or frighten the querent. Focus on growth, potential, and self-empowerment.`

func buildUserPrompt(in ports.NarrateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please provide a tarot reading interpretation for the following:\n\n")
	fmt.Fprintf(&b, "Spread: %s\n", in.SpreadName)
	if in.Question != "" {
		fmt.Fprintf(&b, "Question: %s\n", in.Question)
	}
	b.WriteString("\nCards drawn:\n")

	for _, card := range in.Cards {
		orientation := "upright"
		if card.Reversed {
			orientation = "reversed"
		}
		fmt.Fprintf(&b, "%s: %s (%s) - %s\n", card.PositionName, card.CardName, orientation, card.Meaning)
	}

	b.WriteString("\nWeave these cards together into a meaningful narrative that addresses the question and provides guidance. Connect the positions and cards to tell a cohesive story.")
	return b.String()
}
