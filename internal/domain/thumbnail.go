package domain

import (
	"time"

	"github.com/google/uuid"
)

// UntitledVideo is used when a metadata provider omits the title.
const UntitledVideo = "Untitled Video"

// VideoMetadata is the normalized oEmbed answer for one video.
type VideoMetadata struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name,omitempty"`
	AuthorURL    string `json:"author_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Template is a named visual-style preset contributing a fixed prompt fragment.
type Template struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	StylePromptFragment string `json:"-"`
}

// MoodConfig is a single-colour accent theme with an expression directive.
type MoodConfig struct {
	ID                  string `json:"id"`
	Label               string `json:"label"`
	Emoji               string `json:"emoji"`
	AccentColorHex      string `json:"accentColorHex,omitempty"`
	AccentColorName     string `json:"accentColorName,omitempty"`
	ExpressionDirective string `json:"-"`
}

// HasAccent is false for the "none" sentinel.
func (m MoodConfig) HasAccent() bool {
	return m.AccentColorName != ""
}

// GeneratedThumbnail records one successful generation.
type GeneratedThumbnail struct {
	ID              string `json:"id"`
	ImageURL        string `json:"imageUrl"`
	TemplateID      string `json:"templateId"`
	TemplateName    string `json:"templateName"`
	TimestampMillis int64  `json:"timestamp"`
	VideoTitle      string `json:"videoTitle,omitempty"`
	AspectRatio     string `json:"aspectRatio,omitempty"`
}

// NewGeneratedThumbnail stamps a fresh id and the creation time.
func NewGeneratedThumbnail(imageURL string, tpl Template, videoTitle, aspect string, now time.Time) GeneratedThumbnail {
	return GeneratedThumbnail{
		ID:              uuid.NewString(),
		ImageURL:        imageURL,
		TemplateID:      tpl.ID,
		TemplateName:    tpl.Name,
		TimestampMillis: now.UnixMilli(),
		VideoTitle:      videoTitle,
		AspectRatio:     aspect,
	}
}
