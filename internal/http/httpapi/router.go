package httpapi

import (
	"net/http"

	"github.com/deedeetype/thumbforge/internal/http/handlers"
	"github.com/deedeetype/thumbforge/internal/infra"
	"github.com/deedeetype/thumbforge/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	var origins []string
	if app.Config != nil {
		origins = app.Config.CORSAllowedOrigins
	}
	logger := infra.NopLogger()
	if app.Logger != nil {
		logger = *app.Logger
	}

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(origins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", app.ListTemplates)
		r.Get("/moods", app.ListMoods)
		r.Get("/design-options/defaults", app.DesignDefaults)
		r.Post("/generate-thumbnail", app.GenerateThumbnail)
		r.Post("/preview-prompt", app.PreviewPrompt)
	})

	return r
}
