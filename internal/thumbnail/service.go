// Package thumbnail runs one generation request end to end: validation,
// metadata lookup, prompt assembly and the image provider call.
package thumbnail

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deedeetype/thumbforge/internal/catalog"
	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/domain/jsoncfg"
	"github.com/deedeetype/thumbforge/internal/infra"
	"github.com/deedeetype/thumbforge/internal/prompt"
	"github.com/deedeetype/thumbforge/internal/providers/image"
	"github.com/deedeetype/thumbforge/internal/youtube"
)

// MetadataFetcher resolves public metadata for a video URL.
type MetadataFetcher interface {
	Fetch(ctx context.Context, videoURL string) (domain.VideoMetadata, error)
}

// Request is the inbound generation payload. DesignOptions is a partial object
// merged over the defaults.
type Request struct {
	YouTubeURL    string
	TemplateID    string
	DesignOptions json.RawMessage
	AvatarDataURL string
}

// Preview is everything computed before the image provider would be called.
type Preview struct {
	Template domain.Template
	Metadata domain.VideoMetadata
	Options  jsoncfg.DesignOptions
	Avatar   *domain.AvatarReference
	Prompt   string
}

// Result is a successful generation.
type Result struct {
	Preview
	ImageURL  string
	Thumbnail domain.GeneratedThumbnail
}

// Service is stateless across requests and safe for concurrent use.
type Service struct {
	metadata MetadataFetcher
	images   image.Generator
	logger   *infra.Logger
	now      func() time.Time
}

// NewService wires the collaborators. A nil logger discards output.
func NewService(metadata MetadataFetcher, images image.Generator, logger *infra.Logger) *Service {
	if logger == nil {
		l := infra.NopLogger()
		logger = &l
	}
	return &Service{metadata: metadata, images: images, logger: logger, now: time.Now}
}

// Preview validates req, fetches metadata and builds the prompt without
// contacting the image provider.
func (s *Service) Preview(ctx context.Context, req Request) (Preview, error) {
	videoURL := strings.TrimSpace(req.YouTubeURL)
	templateID := strings.TrimSpace(req.TemplateID)
	if videoURL == "" || templateID == "" {
		return Preview{}, domain.ErrMissingFields
	}
	videoID, ok := youtube.ExtractVideoID(videoURL)
	if !ok {
		return Preview{}, domain.ErrInvalidURL
	}
	tpl, ok := catalog.GetTemplate(templateID)
	if !ok {
		return Preview{}, fmt.Errorf("%w: %q", domain.ErrUnknownTemplate, templateID)
	}
	opts, err := jsoncfg.MergeDesignOptions(req.DesignOptions)
	if err != nil {
		return Preview{}, err
	}

	var avatar *domain.AvatarReference
	if opts.IncludeAvatar && strings.TrimSpace(req.AvatarDataURL) != "" {
		avatar, err = domain.ParseAvatarDataURL(req.AvatarDataURL, opts.AvatarDescription)
		if err != nil {
			return Preview{}, err
		}
	}

	meta, err := s.metadata.Fetch(ctx, videoURL)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("video_id", videoID).
			Msg("thumbnail: metadata lookup failed")
		return Preview{}, err
	}

	built := prompt.Build(tpl, meta, opts, avatar != nil)
	s.logger.Debug().
		Str("video_id", videoID).
		Str("template", tpl.ID).
		Str("mood", opts.Mood).
		Str("aspect", string(opts.AspectRatio)).
		Bool("avatar", avatar != nil).
		Int("prompt_len", len(built)).
		Msg("thumbnail: prompt built")

	return Preview{
		Template: tpl,
		Metadata: meta,
		Options:  opts,
		Avatar:   avatar,
		Prompt:   built,
	}, nil
}

// Generate runs Preview and then asks the image provider for one image.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	preview, err := s.Preview(ctx, req)
	if err != nil {
		return Result{}, err
	}

	genReq := image.GenerateRequest{
		Prompt: preview.Prompt,
		Size:   jsoncfg.PresetFor(preview.Options.AspectRatio).ProviderSize,
	}
	if preview.Avatar != nil {
		genReq.ReferenceImage = preview.Avatar.DataURL
	}

	started := s.now()
	out, err := s.images.Generate(ctx, genReq)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("template", preview.Template.ID).
			Msg("thumbnail: image generation failed")
		return Result{}, err
	}
	s.logger.Info().
		Str("template", preview.Template.ID).
		Str("aspect", string(preview.Options.AspectRatio)).
		Dur("elapsed", s.now().Sub(started)).
		Msg("thumbnail: generated")

	return Result{
		Preview:  preview,
		ImageURL: out.ImageURL,
		Thumbnail: domain.NewGeneratedThumbnail(
			out.ImageURL,
			preview.Template,
			preview.Metadata.Title,
			string(preview.Options.AspectRatio),
			s.now(),
		),
	}, nil
}
