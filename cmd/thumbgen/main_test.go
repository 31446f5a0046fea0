package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/thumbnail"
)

func TestSplitTemplates(t *testing.T) {
	got := splitTemplates(" minimalist, ,cinematic ,")
	if strings.Join(got, "|") != "minimalist|cinematic" {
		t.Fatalf("splitTemplates = %v", got)
	}
}

func TestDesignOverridesOnlySetFlags(t *testing.T) {
	raw, err := designOverrides("", "portrait", "", "", true)
	if err != nil {
		t.Fatalf("designOverrides error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode overrides: %v", err)
	}
	if len(got) != 2 || got["aspectRatio"] != "portrait" || got["includeAvatar"] != true {
		t.Fatalf("overrides = %v", got)
	}
}

func TestReadAvatar(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "me.png")
	if err := os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := readAvatar(png)
	if err != nil {
		t.Fatalf("readAvatar error: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("data url = %q", got)
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := readAvatar(txt); err == nil {
		t.Fatalf("text file should be rejected")
	}
}

type stubService struct {
	previews  int
	generates int
}

func (s *stubService) Preview(context.Context, thumbnail.Request) (thumbnail.Preview, error) {
	s.previews++
	return thumbnail.Preview{Prompt: "prompt text"}, nil
}

func (s *stubService) Generate(_ context.Context, req thumbnail.Request) (thumbnail.Result, error) {
	s.generates++
	if req.TemplateID == "broken" {
		return thumbnail.Result{}, errors.New("provider down")
	}
	return thumbnail.Result{Thumbnail: domain.GeneratedThumbnail{TemplateID: req.TemplateID}}, nil
}

func TestRunTemplate(t *testing.T) {
	svc := &stubService{}
	if o := runTemplate(context.Background(), svc, thumbnail.Request{TemplateID: "minimalist"}, true); o.prompt != "prompt text" || o.err != nil {
		t.Fatalf("dry run outcome = %#v", o)
	}
	if svc.generates != 0 {
		t.Fatalf("dry run must not generate")
	}
	if o := runTemplate(context.Background(), svc, thumbnail.Request{TemplateID: "cinematic"}, false); o.thumbnail.TemplateID != "cinematic" {
		t.Fatalf("outcome = %#v", o)
	}
	if o := runTemplate(context.Background(), svc, thumbnail.Request{TemplateID: "broken"}, false); o.err == nil {
		t.Fatalf("expected error outcome")
	}
}
