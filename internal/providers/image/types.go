package image

import "context"

// GenerateRequest is a normalized request passed to any image provider.
type GenerateRequest struct {
	Prompt string
	// ReferenceImage is the avatar data URL, empty when no likeness is wanted.
	ReferenceImage string
	// Size is the provider-side canvas size, e.g. "1280x720".
	Size string
}

// Result carries the resolved image location and the raw provider text it was
// extracted from.
type Result struct {
	ImageURL string
	Raw      string
}

// Generator is the contract implemented by image providers.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (Result, error)
}
