package domain

// Gallery keeps generated thumbnails newest first. Entries are never
// deduplicated or expired.
type Gallery struct {
	items []GeneratedThumbnail
}

// Add prepends t.
func (g *Gallery) Add(t GeneratedThumbnail) {
	g.items = append([]GeneratedThumbnail{t}, g.items...)
}

// Items returns a copy in display order.
func (g *Gallery) Items() []GeneratedThumbnail {
	out := make([]GeneratedThumbnail, len(g.items))
	copy(out, g.items)
	return out
}

func (g *Gallery) Len() int {
	return len(g.items)
}
