package handlers

import (
	"net/http"

	"github.com/deedeetype/thumbforge/internal/catalog"
	"github.com/deedeetype/thumbforge/internal/domain/jsoncfg"
)

func (a *App) ListTemplates(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"templates": catalog.Templates()})
}

func (a *App) ListMoods(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"moods": catalog.Moods()})
}

func (a *App) DesignDefaults(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, jsoncfg.DefaultDesignOptions())
}
