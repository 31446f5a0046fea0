package image

import (
	"context"
	"fmt"
	"strings"

	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/providers/poe"
)

type poeCompletionClient interface {
	Complete(context.Context, poe.CompletionRequest) (string, error)
	HasCredentials() bool
	Model() string
}

// PoeGenerator asks the chat model for an image and extracts its location from
// the free-form reply.
type PoeGenerator struct {
	client poeCompletionClient
}

// NewPoeGenerator wires a completion client.
func NewPoeGenerator(client poeCompletionClient) *PoeGenerator {
	return &PoeGenerator{client: client}
}

// Generate fulfils the Generator interface.
func (g *PoeGenerator) Generate(ctx context.Context, req GenerateRequest) (Result, error) {
	if g == nil || g.client == nil || !g.client.HasCredentials() {
		return Result{}, domain.ErrProviderUnavailable
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return Result{}, fmt.Errorf("%w: empty prompt", domain.ErrInvalidInput)
	}
	raw, err := g.client.Complete(ctx, poe.CompletionRequest{
		Prompt:         prompt,
		ReferenceImage: req.ReferenceImage,
		Size:           req.Size,
	})
	if err != nil {
		return Result{}, err
	}
	imageURL := ExtractImageURL(raw)
	if imageURL == "" {
		return Result{}, domain.ErrNoContent
	}
	return Result{ImageURL: imageURL, Raw: raw}, nil
}

func (g *PoeGenerator) String() string {
	if g == nil || g.client == nil {
		return "poe"
	}
	return g.client.Model()
}

var _ Generator = (*PoeGenerator)(nil)
