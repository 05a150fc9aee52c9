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

const defaultOpenAIBaseURL = "https://api.openai.com"

// OpenAIRequest represents the request body for OpenAI-compatible chat APIs.
type OpenAIRequest struct {
	Model     string          `json:"model"`
	Messages  []OpenAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

// OpenAIMessage represents a message in the conversation.
type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIResponse represents the response from OpenAI-compatible chat APIs.
type OpenAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type openAIAgent struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newOpenAIAgent(model string, cfg Config) *openAIAgent {
	baseURL := cfg.OpenAIBaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &openAIAgent{
		model:      model,
		apiKey:     cfg.OpenAIAPIKey,
		baseURL:    baseURL,
		httpClient: cfg.httpClient(),
	}
}

func (a *openAIAgent) Illustrate(ctx context.Context, secret string, _ []string) (string, error) {
	return a.complete(ctx, illustratorSystemPrompt, illustrateUserPrompt(secret), illustrateMaxTokens)
}

func (a *openAIAgent) Refine(ctx context.Context, secret, current, latestGuess string, guesses []string) (string, error) {
	return a.complete(ctx, refinerSystemPrompt, refineUserPrompt(secret, current, latestGuess, guesses), refineMaxTokens)
}

func (a *openAIAgent) Guess(ctx context.Context, content string, guesses []string) (string, error) {
	guess, err := a.complete(ctx, guesserSystemPrompt, guessUserPrompt(content, guesses), guessMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(guess), nil
}

func (a *openAIAgent) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	reqBody := OpenAIRequest{
		Model: a.model,
		Messages: []OpenAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
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

	var apiResp OpenAIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return apiResp.Choices[0].Message.Content, nil
}
