package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/deedeetype/thumbforge/internal/domain"
	"github.com/deedeetype/thumbforge/internal/infra"
	"github.com/deedeetype/thumbforge/internal/thumbnail"
)

func main() {
	var (
		urlFlag        string
		templatesFlag  string
		moodFlag       string
		aspectFlag     string
		headlineFlag   string
		avatarFlag     string
		avatarDescFlag string
		dryRun         bool
		parallel       int
	)
	flag.StringVar(&urlFlag, "url", "", "YouTube video URL")
	flag.StringVar(&templatesFlag, "templates", "minimalist", "Comma separated template ids")
	flag.StringVar(&moodFlag, "mood", "", "Mood accent (none, excited, shocked, serious, happy, mysterious)")
	flag.StringVar(&aspectFlag, "aspect", "", "Aspect ratio (landscape or portrait)")
	flag.StringVar(&headlineFlag, "headline", "", "Headline text overriding the video title")
	flag.StringVar(&avatarFlag, "avatar", "", "Path to an avatar image used as likeness reference")
	flag.StringVar(&avatarDescFlag, "avatar-desc", "", "Free text description of the person")
	flag.BoolVar(&dryRun, "dry-run", false, "Print the prompt only, do not call the image provider")
	flag.IntVar(&parallel, "parallel", 1, "How many templates to generate at once")
	flag.Parse()

	_ = godotenv.Load()

	if strings.TrimSpace(urlFlag) == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		os.Exit(2)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := infra.NewCLILogger(cfg.AppEnv).With().Str("cmd", "thumbgen").Logger()
	if !dryRun && !cfg.HasImageCredentials() {
		fmt.Fprintln(os.Stderr, "POE_API_KEY is required unless -dry-run is set")
		os.Exit(1)
	}

	avatarDataURL := ""
	if avatarFlag != "" {
		avatarDataURL, err = readAvatar(avatarFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "avatar: %v\n", err)
			os.Exit(1)
		}
	}

	overrides, err := designOverrides(moodFlag, aspectFlag, headlineFlag, avatarDescFlag, avatarDataURL != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "design options: %v\n", err)
		os.Exit(1)
	}

	if parallel < 1 {
		parallel = 1
	}

	service := thumbnail.NewBatchServiceFromConfig(cfg, &logger)
	templates := splitTemplates(templatesFlag)
	outcomes := make([]outcome, len(templates))

	// Failures are recorded per template and never cancel the group.
	var eg errgroup.Group
	eg.SetLimit(parallel)
	for i, templateID := range templates {
		eg.Go(func() error {
			req := thumbnail.Request{
				YouTubeURL:    urlFlag,
				TemplateID:    templateID,
				DesignOptions: overrides,
				AvatarDataURL: avatarDataURL,
			}
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ImageTimeout+2*cfg.MetadataTimeout)
			defer cancel()
			outcomes[i] = runTemplate(ctx, service, req, dryRun)
			return nil
		})
	}
	_ = eg.Wait()

	var gallery domain.Gallery
	failures := 0
	for i, o := range outcomes {
		switch {
		case o.err != nil:
			failures++
			fmt.Fprintf(os.Stderr, "%s: %v\n", templates[i], o.err)
		case dryRun:
			fmt.Printf("=== %s ===\n%s\n\n", templates[i], o.prompt)
		default:
			gallery.Add(o.thumbnail)
		}
	}

	if !dryRun {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(gallery.Items()); err != nil {
			fmt.Fprintf(os.Stderr, "encode gallery: %v\n", err)
			os.Exit(1)
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

type outcome struct {
	prompt    string
	thumbnail domain.GeneratedThumbnail
	err       error
}

type generator interface {
	Preview(ctx context.Context, req thumbnail.Request) (thumbnail.Preview, error)
	Generate(ctx context.Context, req thumbnail.Request) (thumbnail.Result, error)
}

func runTemplate(ctx context.Context, svc generator, req thumbnail.Request, dryRun bool) outcome {
	if dryRun {
		preview, err := svc.Preview(ctx, req)
		return outcome{prompt: preview.Prompt, err: err}
	}
	res, err := svc.Generate(ctx, req)
	return outcome{prompt: res.Prompt, thumbnail: res.Thumbnail, err: err}
}

func splitTemplates(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// designOverrides renders only the flags that were set so the merge keeps
// every other default.
func designOverrides(mood, aspect, headline, avatarDesc string, hasAvatar bool) (json.RawMessage, error) {
	overrides := map[string]any{}
	if mood != "" {
		overrides["mood"] = mood
	}
	if aspect != "" {
		overrides["aspectRatio"] = aspect
	}
	if headline != "" {
		overrides["headlineText"] = headline
	}
	if avatarDesc != "" {
		overrides["avatarDescription"] = avatarDesc
	}
	if hasAvatar || avatarDesc != "" {
		overrides["includeAvatar"] = true
	}
	return json.Marshal(overrides)
}

func readAvatar(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mime)
	}
	return domain.EncodeAvatarDataURL(mime, data), nil
}
