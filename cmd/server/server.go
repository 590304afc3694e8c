// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/designtokens/internal/api"
	"github.com/codr1/designtokens/internal/api/catalog"
	"github.com/codr1/designtokens/internal/api/colorgroups"
	"github.com/codr1/designtokens/internal/api/nav"
	"github.com/codr1/designtokens/internal/config"
	"github.com/codr1/designtokens/internal/metrics"
	"github.com/codr1/designtokens/internal/palette"
)

func newServer(cfg *config.Config, svc *palette.Service) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithMetrics,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithFragmentVary,
	)

	catalog.InitHandlers(catalog.PageOptions{Title: cfg.App.Name, Accent: cfg.App.AccentColor})
	colorgroups.InitHandlers(svc)
	nav.InitHandlers(svc)

	// Register routes
	registerRoutes(router, cfg)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config) {
	// Main page handler
	mux.HandleFunc("GET /{$}", catalog.HandleCatalogPage)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Features.EnableMetrics {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Navigation routes
	mux.HandleFunc("GET /api/v1/nav/search", nav.HandleSearch)

	// Catalog routes
	mux.HandleFunc("GET /api/v1/categories", catalog.HandleCategoriesList)
	mux.HandleFunc("GET /api/v1/categories/{id}", catalog.HandleCategoryDetail)

	// Color group routes
	mux.HandleFunc("GET /api/v1/groups", colorgroups.HandleGroupsList)
	mux.HandleFunc("POST /api/v1/groups", colorgroups.HandleGroupCreate)
	mux.HandleFunc("DELETE /api/v1/groups", colorgroups.HandleGroupsDelete)
	mux.HandleFunc("GET /api/v1/groups/{id}", colorgroups.HandleGroupDetail)
	mux.HandleFunc("DELETE /api/v1/groups/{id}", colorgroups.HandleGroupDelete)

	// Color routes
	mux.HandleFunc("GET /api/v1/groups/{id}/colors", colorgroups.HandleColorsList)
	mux.HandleFunc("POST /api/v1/groups/{id}/colors", colorgroups.HandleColorCreate)
	mux.HandleFunc("POST /api/v1/groups/{id}/colors/import", colorgroups.HandleColorsImport)
	mux.HandleFunc("POST /api/v1/groups/{id}/colors/remove", colorgroups.HandleColorsRemove)
	mux.HandleFunc("POST /api/v1/groups/{id}/colors/move", colorgroups.HandleColorsMove)
	mux.HandleFunc("GET /api/v1/colors/decode", colorgroups.HandleColorDecode)

	// Static file handling
	staticDir := cfg.App.StaticDir
	if staticDir == "" {
		// Default to the build directory if not specified
		staticDir = "build/bin/static"
	}
	fs := http.FileServer(http.Dir(staticDir))

	mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Ctx(r.Context()).Debug().
			Str("path", r.URL.Path).
			Str("static_dir", staticDir).
			Msg("Static file request")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))
}
