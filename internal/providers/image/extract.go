package image

import (
	"regexp"
	"strings"
)

var (
	markdownImage = regexp.MustCompile(`!\[.*?\]\((https?://[^)]+)\)`)
	extensionURL  = regexp.MustCompile(`(?i)(https?://[^\s)"']+\.(png|jpg|jpeg|webp|gif)[^\s)"']*)`)
	anyURL        = regexp.MustCompile(`(https?://[^\s)"']+)`)
)

// urlMatcher returns the candidate it found, or "" to pass to the next one.
type urlMatcher func(text string) string

// matchers run in priority order; the first non-empty answer wins.
var matchers = []urlMatcher{
	matchBareURL,
	submatch(markdownImage),
	submatch(extensionURL),
	submatch(anyURL),
}

// ExtractImageURL pulls an image location out of free-form model output. When
// nothing URL-shaped is found the text itself is returned, which covers
// providers that answer with a bare data URL. Surrounding whitespace is always
// trimmed since it can never be part of a usable image location.
func ExtractImageURL(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	for _, match := range matchers {
		if found := match(trimmed); found != "" {
			return found
		}
	}
	return trimmed
}

func matchBareURL(text string) string {
	if (strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://")) && !strings.ContainsAny(text, " \t\n") {
		return text
	}
	return ""
}

func submatch(re *regexp.Regexp) urlMatcher {
	return func(text string) string {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return m[1]
		}
		return ""
	}
}
