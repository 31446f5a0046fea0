// Package catalog holds the fixed template and mood presets.
package catalog

import "github.com/deedeetype/thumbforge/internal/domain"

var templates = []domain.Template{
	{
		ID:                  "bold-bright",
		Name:                "Bold & Bright",
		Description:         "High contrast, large text, vibrant colors, face close-ups",
		StylePromptFragment: "Create a vibrant, eye-catching YouTube thumbnail with high contrast colors (bright yellows, reds, blues). Use large, bold text overlays. Include dramatic facial expressions or close-up shots. Make it energetic and attention-grabbing. Style: Bold and bright with vivid colors.",
	},
	{
		ID:                  "cinematic",
		Name:                "Cinematic",
		Description:         "Dark tones, dramatic lighting, movie-poster style",
		StylePromptFragment: "Create a cinematic, movie-poster style YouTube thumbnail with dramatic lighting and dark tones. Use moody atmosphere, deep shadows, and high production value aesthetics. Make it feel like a blockbuster film poster. Style: Cinematic with dramatic lighting.",
	},
	{
		ID:                  "minimalist",
		Name:                "Minimalist",
		Description:         "Clean, simple, lots of whitespace, elegant typography",
		StylePromptFragment: "Create a clean, minimalist YouTube thumbnail with lots of whitespace. Use elegant, simple typography. Focus on one key element or concept. Use a limited color palette. Make it sophisticated and modern. Style: Minimalist with clean design.",
	},
	{
		ID:                  "clickbait-pro",
		Name:                "Clickbait Pro",
		Description:         "Arrows, circles, shocked faces, bright yellow/red",
		StylePromptFragment: "Create an attention-grabbing clickbait-style YouTube thumbnail with shocked or surprised facial expressions, bright yellow and red colors, arrows pointing to key elements, circles highlighting important details, and dramatic contrast. Make it irresistible to click. Style: Clickbait with shock value.",
	},
	{
		ID:                  "tech-tutorial",
		Name:                "Tech/Tutorial",
		Description:         "Code snippets, gradients, clean professional look",
		StylePromptFragment: "Create a professional, tech-focused YouTube thumbnail with clean gradients, code snippets or tech elements, modern UI design elements, and a sleek professional appearance. Use blues, purples, and techy color schemes. Style: Tech tutorial with professional design.",
	},
	{
		ID:                  "vlog-style",
		Name:                "Vlog Style",
		Description:         "Warm tones, lifestyle feel, personal touch",
		StylePromptFragment: "Create a warm, personal vlog-style YouTube thumbnail with lifestyle aesthetics, warm color tones, natural lighting feel, and a friendly, approachable vibe. Make it feel authentic and relatable. Style: Vlog with warm, personal touch.",
	},
}

// Templates lists every template in display order.
func Templates() []domain.Template {
	out := make([]domain.Template, len(templates))
	copy(out, templates)
	return out
}

// GetTemplate looks up a template by id.
func GetTemplate(id string) (domain.Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Template{}, false
}
