package catalog

import (
	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/domain/jsoncfg"
)

var moods = []domain.MoodConfig{
	{ID: jsoncfg.MoodNone, Label: "None", Emoji: "⚪"},
	{
		ID:                  "excited",
		Label:               "Excited",
		Emoji:               "🔥",
		AccentColorHex:      "#FF6B00",
		AccentColorName:     "vivid orange",
		ExpressionDirective: "wide open-mouthed smile, raised eyebrows, visibly thrilled",
	},
	{
		ID:                  "shocked",
		Label:               "Shocked",
		Emoji:               "😱",
		AccentColorHex:      "#FFD600",
		AccentColorName:     "electric yellow",
		ExpressionDirective: "jaw dropped, eyes wide open, hands raised near the face in disbelief",
	},
	{
		ID:                  "serious",
		Label:               "Serious",
		Emoji:               "🎯",
		AccentColorHex:      "#E53935",
		AccentColorName:     "bold red",
		ExpressionDirective: "intense focused stare straight into the camera, lips pressed firmly together",
	},
	{
		ID:                  "happy",
		Label:               "Happy",
		Emoji:               "😊",
		AccentColorHex:      "#00C853",
		AccentColorName:     "bright green",
		ExpressionDirective: "warm genuine smile showing teeth, relaxed friendly eyes",
	},
	{
		ID:                  "mysterious",
		Label:               "Mysterious",
		Emoji:               "🕵️",
		AccentColorHex:      "#7C4DFF",
		AccentColorName:     "deep purple",
		ExpressionDirective: "one raised eyebrow, knowing half-smile, eyes narrowed with curiosity",
	},
}

func Moods() []domain.MoodConfig {
	out := make([]domain.MoodConfig, len(moods))
	copy(out, moods)
	return out
}

// GetMoodConfig looks up a mood by id. The "none" sentinel is a valid entry.
func GetMoodConfig(id string) (domain.MoodConfig, bool) {
	for _, m := range moods {
		if m.ID == id {
			return m, true
		}
	}
	return domain.MoodConfig{}, false
}
