package oembed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/deedeetype/thumbforge/internal/domain"
)

const videoURL = "https://youtu.be/abc123"

func TestFetchPrimary(t *testing.T) {
	var fallbackHits int32
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("url"); got != videoURL {
			t.Errorf("url param = %q, want %q", got, videoURL)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format param = %q, want json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Test Video","author_name":"Test Channel","author_url":"https://youtube.com/@test","thumbnail_url":"https://i.ytimg.com/vi/abc123/hq.jpg"}`))
	}))
	defer primary.Close()
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fallbackHits, 1)
	}))
	defer fallback.Close()

	client := NewClient(Options{PrimaryURL: primary.URL, FallbackURL: fallback.URL})
	meta, err := client.Fetch(context.Background(), videoURL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if meta.Title != "Test Video" || meta.AuthorName != "Test Channel" {
		t.Fatalf("unexpected metadata: %#v", meta)
	}
	if meta.ThumbnailURL == "" || meta.AuthorURL == "" {
		t.Fatalf("optional fields dropped: %#v", meta)
	}
	if atomic.LoadInt32(&fallbackHits) != 0 {
		t.Fatalf("fallback should not be called when primary succeeds")
	}
}

func TestFetchFallsBack(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer primary.Close()
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("format") {
			t.Errorf("fallback should not receive format param")
		}
		_, _ = w.Write([]byte(`{"title":"From Fallback","author_name":"Someone"}`))
	}))
	defer fallback.Close()

	client := NewClient(Options{PrimaryURL: primary.URL, FallbackURL: fallback.URL})
	meta, err := client.Fetch(context.Background(), videoURL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if meta.Title != "From Fallback" {
		t.Fatalf("title = %q, want From Fallback", meta.Title)
	}
}

func TestFetchMissingTitleDefaults(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"author_name":"Quiet"}`))
	}))
	defer primary.Close()

	client := NewClient(Options{PrimaryURL: primary.URL, FallbackURL: primary.URL})
	meta, err := client.Fetch(context.Background(), videoURL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if meta.Title != domain.UntitledVideo {
		t.Fatalf("title = %q, want %q", meta.Title, domain.UntitledVideo)
	}
}

func TestFetchBothFail(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer primary.Close()
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"no matching providers found"}`))
	}))
	defer fallback.Close()

	client := NewClient(Options{PrimaryURL: primary.URL, FallbackURL: fallback.URL})
	_, err := client.Fetch(context.Background(), videoURL)
	if !errors.Is(err, domain.ErrMetadataUnavailable) {
		t.Fatalf("err = %v, want ErrMetadataUnavailable", err)
	}
}

func TestFetchPassesOptionalFieldsVerbatim(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"  Spaced  ","author_name":" Chan ","author_url":"https://youtube.com/@c ","thumbnail_url":" https://i.ytimg.com/x.jpg"}`))
	}))
	defer primary.Close()

	client := NewClient(Options{PrimaryURL: primary.URL, FallbackURL: primary.URL})
	meta, err := client.Fetch(context.Background(), videoURL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if meta.AuthorName != " Chan " || meta.AuthorURL != "https://youtube.com/@c " || meta.ThumbnailURL != " https://i.ytimg.com/x.jpg" {
		t.Fatalf("optional fields were altered: %#v", meta)
	}
	if meta.Title != "Spaced" {
		t.Fatalf("title = %q, want trimmed title", meta.Title)
	}
}
