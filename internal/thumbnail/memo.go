package thumbnail

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/deedeetype/thumbforge/internal/domain"
)

// MemoFetcher remembers successful lookups by URL and collapses concurrent
// lookups of the same URL into one call. Failures are not remembered. It is
// meant for one batch run, not a long lived server.
type MemoFetcher struct {
	inner MetadataFetcher
	group singleflight.Group

	mu   sync.Mutex
	seen map[string]domain.VideoMetadata
}

func NewMemoFetcher(inner MetadataFetcher) *MemoFetcher {
	return &MemoFetcher{inner: inner, seen: make(map[string]domain.VideoMetadata)}
}

func (m *MemoFetcher) Fetch(ctx context.Context, videoURL string) (domain.VideoMetadata, error) {
	m.mu.Lock()
	meta, ok := m.seen[videoURL]
	m.mu.Unlock()
	if ok {
		return meta, nil
	}

	v, err, _ := m.group.Do(videoURL, func() (any, error) {
		// A flight that finished after the check above has already stored it.
		m.mu.Lock()
		meta, ok := m.seen[videoURL]
		m.mu.Unlock()
		if ok {
			return meta, nil
		}
		meta, err := m.inner.Fetch(ctx, videoURL)
		if err != nil {
			return domain.VideoMetadata{}, err
		}
		m.mu.Lock()
		m.seen[videoURL] = meta
		m.mu.Unlock()
		return meta, nil
	})
	if err != nil {
		return domain.VideoMetadata{}, err
	}
	return v.(domain.VideoMetadata), nil
}

var _ MetadataFetcher = (*MemoFetcher)(nil)
