package thumbnail

import (
	"github.com/deedeetype/thumbforge/internal/infra"
	"github.com/deedeetype/thumbforge/internal/providers/image"
	"github.com/deedeetype/thumbforge/internal/providers/oembed"
	"github.com/deedeetype/thumbforge/internal/providers/poe"
)

// NewServiceFromConfig builds the production collaborators. Each upstream gets
// its own HTTP client bounded by its own timeout.
func NewServiceFromConfig(cfg *infra.Config, logger *infra.Logger) *Service {
	return NewService(newMetadataClient(cfg, logger), newImageGenerator(cfg, logger), logger)
}

// NewBatchServiceFromConfig is NewServiceFromConfig with metadata memoized, for
// runs that render one video with several templates.
func NewBatchServiceFromConfig(cfg *infra.Config, logger *infra.Logger) *Service {
	return NewService(NewMemoFetcher(newMetadataClient(cfg, logger)), newImageGenerator(cfg, logger), logger)
}

func newMetadataClient(cfg *infra.Config, logger *infra.Logger) *oembed.Client {
	return oembed.NewClient(oembed.Options{
		PrimaryURL:  cfg.OEmbedPrimaryURL,
		FallbackURL: cfg.OEmbedFallbackURL,
		HTTPClient:  infra.NewHTTPClient(cfg.MetadataTimeout),
		Logger:      logger,
	})
}

func newImageGenerator(cfg *infra.Config, logger *infra.Logger) *image.PoeGenerator {
	completions := poe.NewClient(poe.Options{
		APIKey:     cfg.PoeAPIKey,
		BaseURL:    cfg.PoeBaseURL,
		Model:      cfg.PoeModel,
		HTTPClient: infra.NewHTTPClient(cfg.ImageTimeout),
		Logger:     logger,
	})
	return image.NewPoeGenerator(completions)
}
