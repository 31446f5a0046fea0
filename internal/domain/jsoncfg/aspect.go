package jsoncfg

import "fmt"

// AspectRatio names a canvas orientation.
type AspectRatio string

const (
	AspectLandscape AspectRatio = "landscape"
	AspectPortrait  AspectRatio = "portrait"
)

// AspectPreset holds every orientation dependent constant. Prompt text and the
// provider size field both read from this table.
type AspectPreset struct {
	Width        int
	Height       int
	Ratio        string
	Orientation  string
	Shape        string
	ProviderSize string
}

// Dimensions renders "WIDTHxHEIGHT".
func (p AspectPreset) Dimensions() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

var AspectPresets = map[AspectRatio]AspectPreset{
	AspectLandscape: {
		Width:        1280,
		Height:       720,
		Ratio:        "16:9",
		Orientation:  "landscape",
		Shape:        "wider than tall",
		ProviderSize: "1280x720",
	},
	AspectPortrait: {
		Width:        720,
		Height:       1280,
		Ratio:        "9:16",
		Orientation:  "portrait",
		Shape:        "taller than wide",
		ProviderSize: "720x1280",
	},
}

// PresetFor returns the preset for aspect, defaulting to landscape.
func PresetFor(aspect AspectRatio) AspectPreset {
	if p, ok := AspectPresets[aspect]; ok {
		return p
	}
	return AspectPresets[AspectLandscape]
}
