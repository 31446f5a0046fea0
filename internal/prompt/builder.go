// Package prompt assembles the natural language instruction sent to the image
// model. Build is pure: the same arguments always yield the same bytes.
package prompt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/deedeetype/thumbforge/internal/catalog"
	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/domain/jsoncfg"
)

const sectionSeparator = "\n\n"

// maxHeadlineArea is the canvas share the headline may occupy, in percent.
const maxHeadlineArea = 40

const defaultExpression = "a confident, engaging expression that suits the video topic"

var textPlacement = map[jsoncfg.TextPosition]string{
	jsoncfg.TextTop:    "across the top third of the canvas",
	jsoncfg.TextCenter: "across the vertical center of the canvas",
	jsoncfg.TextBottom: "across the bottom third of the canvas",
}

var subjectPlacement = map[jsoncfg.AvatarPosition]string{
	jsoncfg.AvatarLeft:   "on the left third of the frame",
	jsoncfg.AvatarCenter: "in the center of the frame",
	jsoncfg.AvatarRight:  "on the right third of the frame",
}

// Build combines a template, video metadata, design options and the avatar
// flag into one prompt. Sections appear in a fixed order separated by blank lines.
func Build(tpl domain.Template, meta domain.VideoMetadata, opts jsoncfg.DesignOptions, hasAvatarImage bool) string {
	preset := jsoncfg.PresetFor(opts.AspectRatio)
	mood, ok := catalog.GetMoodConfig(opts.Mood)
	if !ok {
		mood, _ = catalog.GetMoodConfig(jsoncfg.MoodNone)
	}
	creator := strings.TrimSpace(meta.AuthorName)

	sections := []string{
		formatSection(preset),
		tpl.StylePromptFragment,
		videoContextSection(meta.Title, creator, opts.ShowVideoTitle),
	}
	if mood.HasAccent() {
		sections = append(sections, accentSection(mood))
	}
	sections = append(sections,
		typographySection(meta.Title, creator, opts),
		subjectSection(opts, preset, mood, hasAvatarImage),
		backgroundSection(opts),
		closingSection(preset),
	)
	return strings.Join(sections, sectionSeparator)
}

func formatSection(p jsoncfg.AspectPreset) string {
	return fmt.Sprintf(
		"FORMAT: Create a %s YouTube thumbnail at exactly %s pixels (%s aspect ratio). The image MUST be %s. Do not produce a square image.",
		p.Orientation, p.Dimensions(), p.Ratio, p.Shape,
	)
}

func videoContextSection(title, creator string, showTitle bool) string {
	lines := []string{"VIDEO CONTEXT:"}
	if showTitle {
		lines = append(lines, fmt.Sprintf("Title: \"%s\"", title))
	} else {
		lines = append(lines, "Topic keywords: "+strings.Join(topicKeywords(title), ", "))
	}
	if creator != "" {
		lines = append(lines, "Creator: "+creator)
	}
	lines = append(lines, "Infer what this video is about from the text above and choose imagery, objects and symbols that clearly represent that topic.")
	return strings.Join(lines, "\n")
}

func accentSection(m domain.MoodConfig) string {
	name := m.AccentColorName
	lines := []string{
		fmt.Sprintf("ACCENT COLOR: Use exactly one accent color, %s (%s), and use it everywhere an accent appears. No other accent colors.", name, m.AccentColorHex),
		"Apply it in all of these places:",
		fmt.Sprintf("- a bold diagonal stripe in %s across one corner", name),
		fmt.Sprintf("- a %s rim light outlining the main subject", name),
		fmt.Sprintf("- one small %s signature dot near the headline", name),
		fmt.Sprintf("- every icon, arrow and highlight shape colored %s", name),
	}
	return strings.Join(lines, "\n")
}

func typographySection(title, creator string, opts jsoncfg.DesignOptions) string {
	showCreator := opts.ShowChannelTitle && creator != ""
	var lines []string
	if opts.ShowVideoTitle {
		headline := strings.TrimSpace(opts.HeadlineText)
		if headline == "" {
			headline = title
		}
		lines = append(lines,
			fmt.Sprintf("TEXT: Render this headline exactly as written: \"%s\".", headline),
			fmt.Sprintf("Use a heavy, extra-bold sans-serif font in ALL CAPS, colored %s, with a thick dark stroke and a drop shadow so it stays legible at small sizes.", opts.FontColor),
			fmt.Sprintf("Place the headline %s.", placementFor(textPlacement, opts.TextPosition, jsoncfg.TextBottom)),
			fmt.Sprintf("The text must cover no more than %d%% of the canvas. Spell it exactly and do not add other words.", maxHeadlineArea),
		)
	} else if showCreator {
		lines = append(lines, "TEXT: Do not render any headline, title, caption or other text in the image, except the creator name described below.")
	} else {
		lines = append(lines, "TEXT: Do not render any text at all. No letters, words, numbers, captions or titles anywhere in the image.")
	}
	if showCreator {
		lines = append(lines, fmt.Sprintf("Add the creator name \"%s\" as small secondary text, clearly smaller than any headline, tucked into a corner.", creator))
	}
	return strings.Join(lines, "\n")
}

func subjectSection(opts jsoncfg.DesignOptions, preset jsoncfg.AspectPreset, mood domain.MoodConfig, hasAvatarImage bool) string {
	if !opts.IncludeAvatar {
		return "NO PEOPLE: Do not include any person, face, character or mascot. Fill the composition with real objects, recognizable logos and abstract shapes relevant to the video topic instead."
	}

	expression := defaultExpression
	if mood.ExpressionDirective != "" {
		expression = mood.ExpressionDirective
	}
	position := placementFor(subjectPlacement, opts.AvatarPosition, jsoncfg.AvatarRight)
	if preset.Orientation == string(jsoncfg.AspectPortrait) {
		position = "in the upper half of the frame"
	}
	description := strings.TrimSpace(opts.AvatarDescription)

	var lines []string
	if hasAvatarImage {
		lines = append(lines,
			"PERSON: The attached reference image shows the creator. Reproduce this exact person's likeness: the same face shape, facial features, skin tone, hair color and hairstyle.",
		)
		if description != "" {
			lines = append(lines, fmt.Sprintf("Additional appearance details: %s.", description))
		}
		lines = append(lines,
			fmt.Sprintf("Facial expression: %s. This expression overrides any neutral expression in the reference photo.", expression),
			fmt.Sprintf("Position the person %s, shown from the chest up, large and in sharp focus.", position),
			"Do NOT simply paste or copy the reference photo. Generate a fresh composition with a new pose, lighting and framing that fits this thumbnail's style.",
		)
		return strings.Join(lines, "\n")
	}

	if description != "" {
		lines = append(lines, fmt.Sprintf("PERSON: Include one expressive person matching this description: %s.", description))
	} else {
		lines = append(lines, "PERSON: Include one expressive presenter who fits the video topic.")
	}
	lines = append(lines,
		fmt.Sprintf("Facial expression: %s.", expression),
		fmt.Sprintf("Position the person %s, shown from the chest up, large and in sharp focus.", position),
		"No specific real person's likeness is required.",
	)
	return strings.Join(lines, "\n")
}

func backgroundSection(opts jsoncfg.DesignOptions) string {
	line := fmt.Sprintf("BACKGROUND: Use %s as the base background color.", colorLabel(opts.BackgroundColor))
	if opts.OverlayOpacity > 0 {
		line += fmt.Sprintf(" Add a dark overlay at %d%% opacity behind the text area to keep it readable.", opts.OverlayOpacity)
	}
	return line
}

func closingSection(p jsoncfg.AspectPreset) string {
	return fmt.Sprintf(
		"FINAL CHECK: The output must be a %s image of %s pixels (%s), %s. Make it professional, high-contrast, click-worthy and legible even at small sizes.",
		p.Orientation, p.Dimensions(), p.Ratio, p.Shape,
	)
}

func colorLabel(hex string) string {
	if strings.EqualFold(strings.TrimSpace(hex), jsoncfg.DefaultBackgroundColor) {
		return "deep black (" + jsoncfg.DefaultBackgroundColor + ")"
	}
	return "the color " + hex
}

func placementFor[K comparable](table map[K]string, key, fallback K) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "of": {}, "to": {}, "in": {}, "on": {},
	"for": {}, "with": {}, "is": {}, "my": {}, "how": {}, "why": {}, "what": {},
	"you": {}, "your": {}, "this": {}, "that": {}, "at": {}, "by": {}, "or": {},
}

const maxKeywords = 8

// topicKeywords reduces a title to lowercase content words so the topic can be
// conveyed without the literal title text.
func topicKeywords(title string) []string {
	words := strings.FieldsFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, w := range words {
		w = strings.ToLower(w)
		if len([]rune(w)) < 2 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == maxKeywords {
			break
		}
	}
	if len(out) == 0 {
		return []string{"general interest"}
	}
	return out
}
