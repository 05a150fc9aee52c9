package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultAnthropicBaseURL = "https://api.anthropic.com"

// AnthropicRequest represents the request body for the Anthropic messages API.
type AnthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []AnthropicMessage `json:"messages"`
}

// AnthropicMessage represents a message in the conversation.
type AnthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnthropicResponse represents the response from the Anthropic messages API.
type AnthropicResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
}

type anthropicAgent struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newAnthropicAgent(model string, cfg Config) *anthropicAgent {
	baseURL := cfg.AnthropicBaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	return &anthropicAgent{
		model:      model,
		apiKey:     cfg.AnthropicAPIKey,
		baseURL:    baseURL,
		httpClient: cfg.httpClient(),
	}
}

func (a *anthropicAgent) Illustrate(ctx context.Context, secret string, _ []string) (string, error) {
	return a.complete(ctx, illustratorSystemPrompt, illustrateUserPrompt(secret), illustrateMaxTokens)
}

func (a *anthropicAgent) Refine(ctx context.Context, secret, current, latestGuess string, guesses []string) (string, error) {
	return a.complete(ctx, refinerSystemPrompt, refineUserPrompt(secret, current, latestGuess, guesses), refineMaxTokens)
}

func (a *anthropicAgent) Guess(ctx context.Context, content string, guesses []string) (string, error) {
	guess, err := a.complete(ctx, guesserSystemPrompt, guessUserPrompt(content, guesses), guessMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(guess), nil
}

func (a *anthropicAgent) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	reqBody := AnthropicRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []AnthropicMessage{{Role: "user", Content: user}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("content-type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	var apiResp AnthropicResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response from Anthropic")
	}
	return apiResp.Content[0].Text, nil
}
