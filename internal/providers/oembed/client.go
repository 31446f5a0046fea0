// Package oembed resolves public video metadata through an oEmbed endpoint with
// a secondary endpoint as fallback.
package oembed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/infra"
)

const (
	DefaultPrimaryURL  = "https://www.youtube.com/oembed"
	DefaultFallbackURL = "https://noembed.com/embed"
)

// maxBody bounds how much of an oEmbed answer is read.
const maxBody = 1 << 20

// Options configures the metadata client.
type Options struct {
	PrimaryURL     string
	FallbackURL    string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client fetches video metadata. It is safe for concurrent use.
type Client struct {
	endpoints  []endpoint
	httpClient *http.Client
	logger     *infra.Logger
}

type endpoint struct {
	name    string
	baseURL string
	// withFormat appends format=json, which only the primary endpoint expects.
	withFormat bool
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Error        string `json:"error"`
}

// NewClient constructs a client, filling unset endpoints with the public defaults.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	primary := strings.TrimSpace(opts.PrimaryURL)
	if primary == "" {
		primary = DefaultPrimaryURL
	}
	fallback := strings.TrimSpace(opts.FallbackURL)
	if fallback == "" {
		fallback = DefaultFallbackURL
	}
	logger := opts.Logger
	if logger == nil {
		l := infra.NopLogger()
		logger = &l
	}
	return &Client{
		endpoints: []endpoint{
			{name: "primary", baseURL: primary, withFormat: true},
			{name: "fallback", baseURL: fallback},
		},
		httpClient: httpClient,
		logger:     logger,
	}
}

// Fetch asks the primary endpoint first and the fallback second. Only when both
// fail is ErrMetadataUnavailable returned.
func (c *Client) Fetch(ctx context.Context, videoURL string) (domain.VideoMetadata, error) {
	var errs []error
	for _, ep := range c.endpoints {
		meta, err := c.fetchFrom(ctx, ep, videoURL)
		if err == nil {
			return meta, nil
		}
		if ctx.Err() != nil {
			return domain.VideoMetadata{}, fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, ctx.Err())
		}
		c.logger.Warn().
			Err(err).
			Str("endpoint", ep.name).
			Msg("oembed: lookup failed")
		errs = append(errs, err)
	}
	return domain.VideoMetadata{}, fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, errors.Join(errs...))
}

func (c *Client) fetchFrom(ctx context.Context, ep endpoint, videoURL string) (domain.VideoMetadata, error) {
	endpointURL, err := url.Parse(ep.baseURL)
	if err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("oembed %s: parse endpoint: %w", ep.name, err)
	}
	q := endpointURL.Query()
	q.Set("url", videoURL)
	if ep.withFormat {
		q.Set("format", "json")
	}
	endpointURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("oembed %s: build request: %w", ep.name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("oembed %s: http request: %w", ep.name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("oembed %s: read response: %w", ep.name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.VideoMetadata{}, fmt.Errorf("oembed %s: status %d", ep.name, resp.StatusCode)
	}

	var decoded oembedResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("oembed %s: decode response: %w", ep.name, err)
	}
	title := strings.TrimSpace(decoded.Title)
	if decoded.Error != "" && title == "" {
		return domain.VideoMetadata{}, fmt.Errorf("oembed %s: %s", ep.name, decoded.Error)
	}
	if title == "" {
		title = domain.UntitledVideo
	}
	meta := domain.VideoMetadata{
		Title:        title,
		AuthorName:   decoded.AuthorName,
		AuthorURL:    decoded.AuthorURL,
		ThumbnailURL: decoded.ThumbnailURL,
	}
	c.logger.Debug().
		Str("endpoint", ep.name).
		Str("title", meta.Title).
		Msg("oembed: resolved metadata")
	return meta, nil
}
