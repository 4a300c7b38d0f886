// Package ai is the outbound LLM collaborator: a stateless, single-turn
// chat-completions call against an OpenAI-compatible endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoAPIKey is the configuration error of the failure taxonomy: no
// credential is configured, so no call is attempted.
var ErrNoAPIKey = errors.New("llm api key is not configured")

// TransportError covers network failures and non-2xx responses. StatusCode is
// zero when the request never reached the server.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm transport error (status %d): %s", e.StatusCode, e.Message)
	}
	return "llm transport error: " + e.Message
}

// ProtocolError covers 2xx responses whose payload could not be decoded or
// carried no usable text.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return "llm protocol error: " + e.Message
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Generate performs one request/response round trip with the given system
// prompt and user message and returns the model's text. No streaming, no
// retry; callers bound the call with ctx.
func (c *Client) Generate(ctx context.Context, cfg Config, systemPrompt, userMessage string) (string, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return "", ErrNoAPIKey
	}

	reqBody := map[string]interface{}{
		"model": cfg.Model,
		"messages": []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		"stream": false,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal llm request failed: %w", err)
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("build llm request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Message: "read response body: " + err.Error()}
	}
	if resp.StatusCode >= 300 {
		return "", &TransportError{StatusCode: resp.StatusCode, Message: apiErrorMessage(raw)}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ProtocolError{Message: "decode response: " + err.Error()}
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", &ProtocolError{Message: "response contained no usable text"}
	}
	return parsed.Choices[0].Message.Content, nil
}

// apiErrorMessage pulls the provider's error message out of an error payload,
// falling back to the raw body.
func apiErrorMessage(raw []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return string(raw)
}
