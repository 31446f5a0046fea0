package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidURL          = errors.New("invalid video url")
	ErrUnknownTemplate     = errors.New("unknown template")
	ErrMetadataUnavailable = errors.New("video metadata unavailable")
	ErrProviderUnavailable = errors.New("image provider unavailable")
	ErrNoContent           = errors.New("image provider returned no content")
)

// Field level validation failures. Each wraps ErrInvalidInput.
var (
	ErrMissingFields        = fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	ErrInvalidDesignOptions = fmt.Errorf("%w: design options", ErrInvalidInput)
	ErrInvalidAvatar        = fmt.Errorf("%w: avatar image", ErrInvalidInput)
)

// maxProviderBody caps how much of an upstream error body is echoed back.
const maxProviderBody = 512

// ProviderError reports a non-success HTTP status from the image provider.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if body := e.Detail(); body != "" {
		return fmt.Sprintf("image provider returned status %d: %s", e.StatusCode, body)
	}
	return fmt.Sprintf("image provider returned status %d", e.StatusCode)
}

// Detail is the upstream body, trimmed and capped for display.
func (e *ProviderError) Detail() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > maxProviderBody {
		body = body[:maxProviderBody]
	}
	return body
}

// IsValidation reports whether err is user-correctable and maps to a 400.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrUnknownTemplate)
}
