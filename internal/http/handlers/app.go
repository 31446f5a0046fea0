package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deedeetype/thumbforge/internal/infra"
	"github.com/deedeetype/thumbforge/internal/thumbnail"
)

// ThumbnailService is the orchestrator the thumbnail endpoints delegate to.
type ThumbnailService interface {
	Generate(ctx context.Context, req thumbnail.Request) (thumbnail.Result, error)
	Preview(ctx context.Context, req thumbnail.Request) (thumbnail.Preview, error)
}

type App struct {
	Config     *infra.Config
	Logger     *infra.Logger
	Thumbnails ThumbnailService
}

func NewApp(cfg *infra.Config, logger *infra.Logger, thumbnails ThumbnailService) *App {
	if logger == nil {
		l := infra.NopLogger()
		logger = &l
	}
	return &App{Config: cfg, Logger: logger, Thumbnails: thumbnails}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorResponse{Success: false, Error: message})
}
