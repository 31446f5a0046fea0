// Package poe talks to the OpenAI compatible chat-completions endpoint that
// fronts the image model.
package poe

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

	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/infra"
)

const (
	DefaultBaseURL = "https://api.poe.com/v1"
	DefaultModel   = "Grok-Imagine-Image"
)

// maxResponseBytes bounds a completion body. Replies may carry an inline
// base64 image, so the cap is generous.
const maxResponseBytes = 32 << 20

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = fmt.Errorf("poe: api key is required: %w", domain.ErrProviderUnavailable)

// Options configures the client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs chat-completion calls. The credential never leaves this struct
// except in the Authorization header.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

// CompletionRequest is one generation attempt.
type CompletionRequest struct {
	Prompt string
	// ReferenceImage is a data: URL sent as an image part ahead of the text.
	ReferenceImage string
	Size           string
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Size     string        `json:"size,omitempty"`
}

// chatMessage.Content is either a plain string or a slice of parts.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient constructs a client with defaults for unset fields.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	logger := opts.Logger
	if logger == nil {
		l := infra.NopLogger()
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// Complete sends one chat-completion request and returns the raw text of the
// first choice. Non-2xx statuses surface as *domain.ProviderError.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !c.HasCredentials() {
		return "", ErrMissingAPIKey
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", errors.New("poe: prompt is required")
	}

	payload := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: messageContent(prompt, req.ReferenceImage)}},
		Size:     strings.TrimSpace(req.Size),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("poe: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("poe: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("poe: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("poe: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("poe: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", domain.ErrNoContent
	}
	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return "", domain.ErrNoContent
	}
	c.logger.Debug().
		Str("model", c.model).
		Bool("reference_image", req.ReferenceImage != "").
		Dur("elapsed", time.Since(started)).
		Msg("poe: completion received")
	return content, nil
}

func messageContent(prompt, referenceImage string) any {
	if referenceImage == "" {
		return prompt
	}
	return []contentPart{
		{Type: "image_url", ImageURL: &imageURL{URL: referenceImage}},
		{Type: "text", Text: prompt},
	}
}
