package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/middleware"
	"github.com/deedeetype/thumbforge/internal/thumbnail"
)

const (
	msgInvalidBody      = "Invalid request body"
	msgMissingFields    = "Missing required fields"
	msgInvalidURL       = "Invalid YouTube URL"
	msgInvalidTemplate  = "Invalid template ID"
	msgInvalidDesign    = "Invalid design options"
	msgInvalidAvatar    = "Invalid avatar image"
	msgMetadata         = "Unable to fetch video information. Please check the URL and try again."
	msgProviderConfig   = "Image generation provider is not configured"
	msgProviderNoOutput = "Image provider returned no content"
	msgGenericFailure   = "Failed to generate thumbnail. Please try again."
)

type generateRequest struct {
	YouTubeURL    string          `json:"youtubeUrl"`
	TemplateID    string          `json:"templateId"`
	DesignOptions json.RawMessage `json:"designOptions"`
	AvatarDataURL string          `json:"avatarDataUrl"`
}

func (g generateRequest) toServiceRequest() thumbnail.Request {
	return thumbnail.Request{
		YouTubeURL:    g.YouTubeURL,
		TemplateID:    g.TemplateID,
		DesignOptions: g.DesignOptions,
		AvatarDataURL: g.AvatarDataURL,
	}
}

type generateResponse struct {
	Success       bool                  `json:"success"`
	ImageURL      string                `json:"imageUrl"`
	VideoMetadata *domain.VideoMetadata `json:"videoMetadata,omitempty"`
}

type previewResponse struct {
	Success       bool                  `json:"success"`
	Prompt        string                `json:"prompt"`
	VideoMetadata *domain.VideoMetadata `json:"videoMetadata,omitempty"`
}

func (a *App) GenerateThumbnail(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeGenerateRequest(w, r)
	if !ok {
		return
	}
	res, err := a.Thumbnails.Generate(r.Context(), req.toServiceRequest())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	meta := res.Metadata
	a.json(w, http.StatusOK, generateResponse{
		Success:       true,
		ImageURL:      res.ImageURL,
		VideoMetadata: &meta,
	})
}

func (a *App) PreviewPrompt(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeGenerateRequest(w, r)
	if !ok {
		return
	}
	preview, err := a.Thumbnails.Preview(r.Context(), req.toServiceRequest())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	meta := preview.Metadata
	a.json(w, http.StatusOK, previewResponse{
		Success:       true,
		Prompt:        preview.Prompt,
		VideoMetadata: &meta,
	})
}

func (a *App) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	body := r.Body
	if a.Config != nil && a.Config.MaxRequestBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, a.Config.MaxRequestBytes)
	}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, msgInvalidBody)
		return generateRequest{}, false
	}
	return req, true
}

func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)
	event := a.Logger.Warn()
	if status >= http.StatusInternalServerError {
		event = a.Logger.Error()
	}
	event.
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Int("status", status).
		Msg("thumbnail request failed")
	a.error(w, status, message)
}

// classifyError maps a service error onto a status code and a user facing
// message. Order matters: the field sentinels all wrap ErrInvalidInput.
func classifyError(err error) (int, string) {
	var perr *domain.ProviderError
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, msgMissingFields
	case errors.Is(err, domain.ErrInvalidURL):
		return http.StatusBadRequest, msgInvalidURL
	case errors.Is(err, domain.ErrUnknownTemplate):
		return http.StatusBadRequest, msgInvalidTemplate
	case errors.Is(err, domain.ErrInvalidDesignOptions):
		return http.StatusBadRequest, msgInvalidDesign
	case errors.Is(err, domain.ErrInvalidAvatar):
		return http.StatusBadRequest, msgInvalidAvatar
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidBody
	case errors.Is(err, domain.ErrMetadataUnavailable):
		return http.StatusInternalServerError, msgMetadata
	case errors.Is(err, domain.ErrProviderUnavailable):
		return http.StatusInternalServerError, msgProviderConfig
	case errors.As(err, &perr):
		if detail := perr.Detail(); detail != "" {
			return http.StatusInternalServerError, fmt.Sprintf("Image provider returned status %d: %s", perr.StatusCode, detail)
		}
		return http.StatusInternalServerError, fmt.Sprintf("Image provider returned status %d", perr.StatusCode)
	case errors.Is(err, domain.ErrNoContent):
		return http.StatusInternalServerError, msgProviderNoOutput
	default:
		return http.StatusInternalServerError, msgGenericFailure
	}
}
