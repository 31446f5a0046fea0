package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestParseAvatarDataURL(t *testing.T) {
	valid := EncodeAvatarDataURL("image/png", []byte{0x89, 'P', 'N', 'G'})

	avatar, err := ParseAvatarDataURL(valid, "  red hoodie ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avatar.MIME != "image/png" {
		t.Fatalf("MIME = %q, want image/png", avatar.MIME)
	}
	if len(avatar.Data) != 4 {
		t.Fatalf("decoded %d bytes, want 4", len(avatar.Data))
	}
	if avatar.DataURL != valid {
		t.Fatalf("DataURL should be kept verbatim")
	}
	if avatar.Description != "red hoodie" {
		t.Fatalf("Description = %q", avatar.Description)
	}
}

func TestParseAvatarDataURLRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"plain url":    "https://example.com/me.png",
		"no payload":   "data:image/png;base64",
		"not base64":   "data:image/png,abc",
		"wrong type":   "data:text/plain;base64,aGVsbG8=",
		"bad encoding": "data:image/png;base64,@@@",
		"empty data":   "data:image/png;base64,",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAvatarDataURL(raw, "")
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestProviderErrorMessage(t *testing.T) {
	err := &ProviderError{StatusCode: 429, Body: " rate limited \n"}
	if got := err.Error(); got != "image provider returned status 429: rate limited" {
		t.Fatalf("Error() = %q", got)
	}

	long := &ProviderError{StatusCode: 500, Body: strings.Repeat("x", 2000)}
	if len(long.Error()) > 600 {
		t.Fatalf("body should be capped, got %d chars", len(long.Error()))
	}

	wrapped := fmt.Errorf("generate: %w", err)
	var pe *ProviderError
	if !errors.As(wrapped, &pe) || pe.StatusCode != 429 {
		t.Fatalf("errors.As failed for wrapped provider error")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(fmt.Errorf("x: %w", ErrUnknownTemplate)) {
		t.Fatalf("unknown template should be a validation error")
	}
	if IsValidation(ErrMetadataUnavailable) {
		t.Fatalf("metadata failure is not a validation error")
	}
}

func TestGalleryNewestFirst(t *testing.T) {
	var g Gallery
	tpl := Template{ID: "minimalist", Name: "Minimalist"}
	now := time.Unix(1700000000, 0)
	first := NewGeneratedThumbnail("https://img.test/1.png", tpl, "Video", "landscape", now)
	second := NewGeneratedThumbnail("https://img.test/1.png", tpl, "Video", "landscape", now.Add(time.Second))
	g.Add(first)
	g.Add(second)

	items := g.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2 (no dedupe)", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("gallery not newest first: %#v", items)
	}
	if first.ID == second.ID {
		t.Fatalf("ids should be unique")
	}
	if first.TimestampMillis != now.UnixMilli() {
		t.Fatalf("TimestampMillis = %d", first.TimestampMillis)
	}
}
