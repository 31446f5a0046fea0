package jsoncfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deedeetype/thumbforge/internal/domain"

	"golang.org/x/text/cases"
)

type AvatarPosition string

const (
	AvatarLeft   AvatarPosition = "left"
	AvatarCenter AvatarPosition = "center"
	AvatarRight  AvatarPosition = "right"
)

type TextPosition string

const (
	TextTop    TextPosition = "top"
	TextCenter TextPosition = "center"
	TextBottom TextPosition = "bottom"
)

const (
	// DefaultFontColor is white text.
	DefaultFontColor = "#FFFFFF"
	// DefaultBackgroundColor is black; the prompt substitutes a readable label for it.
	DefaultBackgroundColor = "#000000"
	// DefaultOverlayOpacity is the text overlay opacity in percent.
	DefaultOverlayOpacity = 50
	// MoodNone disables accent colour injection.
	MoodNone = "none"
)

// DesignOptions is the flat set of user adjustable generation parameters.
type DesignOptions struct {
	FontColor         string         `json:"fontColor"`
	BackgroundColor   string         `json:"backgroundColor"`
	ShowVideoTitle    bool           `json:"showVideoTitle"`
	ShowChannelTitle  bool           `json:"showChannelTitle"`
	IncludeAvatar     bool           `json:"includeAvatar"`
	AvatarPosition    AvatarPosition `json:"avatarPosition"`
	TextPosition      TextPosition   `json:"textPosition"`
	OverlayOpacity    int            `json:"overlayOpacity"`
	AspectRatio       AspectRatio    `json:"aspectRatio"`
	Mood              string         `json:"mood"`
	HeadlineText      string         `json:"headlineText"`
	AvatarDescription string         `json:"avatarDescription"`
}

// DefaultDesignOptions returns a fresh copy of the documented defaults.
func DefaultDesignOptions() DesignOptions {
	return DesignOptions{
		FontColor:        DefaultFontColor,
		BackgroundColor:  DefaultBackgroundColor,
		ShowVideoTitle:   true,
		ShowChannelTitle: true,
		IncludeAvatar:    false,
		AvatarPosition:   AvatarRight,
		TextPosition:     TextBottom,
		OverlayOpacity:   DefaultOverlayOpacity,
		AspectRatio:      AspectLandscape,
		Mood:             MoodNone,
	}
}

// MergeDesignOptions decodes a partial client object over the defaults. Keys
// present in raw override, absent keys keep their default. The merge is shallow.
func MergeDesignOptions(raw json.RawMessage) (DesignOptions, error) {
	opts := DefaultDesignOptions()
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, &opts); err != nil {
			return DesignOptions{}, fmt.Errorf("%w: %v", domain.ErrInvalidDesignOptions, err)
		}
	}
	opts.Normalize()
	return opts, nil
}

// Normalize trims free text, folds enum case and resets values outside the
// supported sets to their defaults.
func (o *DesignOptions) Normalize() {
	if o == nil {
		return
	}
	fold := cases.Fold()
	defaults := DefaultDesignOptions()

	o.FontColor = strings.TrimSpace(o.FontColor)
	if o.FontColor == "" {
		o.FontColor = defaults.FontColor
	}
	o.BackgroundColor = strings.TrimSpace(o.BackgroundColor)
	if o.BackgroundColor == "" {
		o.BackgroundColor = defaults.BackgroundColor
	}

	switch p := AvatarPosition(fold.String(strings.TrimSpace(string(o.AvatarPosition)))); p {
	case AvatarLeft, AvatarCenter, AvatarRight:
		o.AvatarPosition = p
	default:
		o.AvatarPosition = defaults.AvatarPosition
	}
	switch p := TextPosition(fold.String(strings.TrimSpace(string(o.TextPosition)))); p {
	case TextTop, TextCenter, TextBottom:
		o.TextPosition = p
	default:
		o.TextPosition = defaults.TextPosition
	}
	switch a := AspectRatio(fold.String(strings.TrimSpace(string(o.AspectRatio)))); a {
	case AspectLandscape, AspectPortrait:
		o.AspectRatio = a
	default:
		o.AspectRatio = defaults.AspectRatio
	}

	if o.OverlayOpacity < 0 {
		o.OverlayOpacity = 0
	}
	if o.OverlayOpacity > 100 {
		o.OverlayOpacity = 100
	}

	o.Mood = fold.String(strings.TrimSpace(o.Mood))
	if o.Mood == "" {
		o.Mood = MoodNone
	}
	o.HeadlineText = strings.TrimSpace(o.HeadlineText)
	o.AvatarDescription = strings.TrimSpace(o.AvatarDescription)
}
