// Package youtube resolves user supplied video links to a canonical id without
// touching the network.
package youtube

import (
	"net/url"
	"strings"
)

const (
	longFormHost  = "youtube.com"
	shortLinkHost = "youtu.be"
	shortsSegment = "/shorts/"
)

// ExtractVideoID returns the video id for url, or "" with ok=false when no rule
// matches. Rules are tried in order and the first match wins.
func ExtractVideoID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	host := strings.ToLower(u.Hostname())

	if strings.Contains(host, longFormHost) {
		if id := u.Query().Get("v"); id != "" {
			return id, true
		}
	}

	if strings.Contains(host, shortLinkHost) {
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			first, _, _ := strings.Cut(id, "/")
			if first != "" {
				return first, true
			}
		}
	}

	if _, after, ok := strings.Cut(u.Path, shortsSegment); ok {
		id, _, _ := strings.Cut(after, "?")
		id, _, _ = strings.Cut(id, "/")
		if id != "" {
			return id, true
		}
	}

	return "", false
}

// IsValidURL reports whether an id can be extracted from raw.
func IsValidURL(raw string) bool {
	_, ok := ExtractVideoID(raw)
	return ok
}
