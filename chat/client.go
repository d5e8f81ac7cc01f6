package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"airbnb-advisor/config"
	"airbnb-advisor/models"
	"airbnb-advisor/utils"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// Role names for conversation messages.
const (
	RoleSystem    = openai.ChatMessageRoleSystem
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
)

// ErrorReply is returned to the user when the completion call fails.
const ErrorReply = "Sorry, I encountered an error while fetching the response."

// Message is one turn of a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client wraps an OpenAI-compatible chat-completion API. Setting a base URL in
// the config points it at another provider (e.g. OpenRouter) with the same
// request shape.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	limiter     *rate.Limiter
	logger      *utils.Logger
}

// NewClient creates a chat client from config. Returns nil when no API key is
// configured; callers treat a nil client as "assistant disabled".
func NewClient(cfg *config.Config, logger *utils.Logger) *Client {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}

	apiCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		apiCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.OpenAIModel,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		limiter:     rate.NewLimiter(rate.Limit(cfg.LLMRatePerSec), cfg.LLMRateBurst),
		logger:      logger,
	}
}

// Complete sends the full conversation history and returns the assistant's
// reply. One attempt per call: a transport failure or non-2xx response is
// surfaced as a single error, never retried or queued.
func (c *Client) Complete(ctx context.Context, history []Message) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	messages := make([]openai.ChatCompletionMessage, len(history))
	for i, m := range history {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	c.logger.Debug("Requesting completion from %s with %d messages", c.model, len(messages))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// SystemPrompt builds the assistant's system message, embedding the
// neighbourhood statistics as JSON so replies stay grounded in the dataset
func SystemPrompt(neighbourhoodStats []models.NeighbourhoodStat) (Message, error) {
	statsJSON, err := json.Marshal(neighbourhoodStats)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal neighbourhood stats: %w", err)
	}

	content := fmt.Sprintf(`You are an Airbnb recommendation assistant for NYC properties.
Use this neighborhood statistics data to provide informed recommendations: %s

Key points to consider in your responses:
1. Use the neighborhood statistics to compare prices and ratings
2. Mention specific neighborhood insights when relevant
3. Provide data-driven recommendations
4. Be conversational and helpful
5. When discussing prices, always provide context (e.g., compared to neighborhood average)
6. Highlight unique features of recommended areas`, statsJSON)

	return Message{Role: RoleSystem, Content: content}, nil
}
