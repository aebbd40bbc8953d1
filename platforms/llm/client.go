package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultURL   = "https://api.openai.com"
	defaultModel = "gpt-4o-mini"
)

// Client is the language model used for free-form assistant answers. It is
// optional: callers must tolerate any error here and fall back to template
// responses.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type client struct {
	url        string
	key        string
	model      string
	httpClient *http.Client
}

func New(url, key string) (Client, error) {
	if key == "" {
		return nil, errors.New("llm client requires an api key")
	}
	if url == "" {
		url = defaultURL
	}
	c := &client{
		url:   url,
		key:   key,
		model: defaultModel,
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(serverURL string) Client {
	return &client{
		url:        serverURL,
		key:        "not-important",
		model:      defaultModel,
		httpClient: http.DefaultClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error encoding llm request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/chat/completions", c.url), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating llm http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.key))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending llm http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code from llm api: %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("error parsing response from llm api: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("llm api returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
