// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/api"
	"github.com/codr1/careerbuilder/internal/api/builder"
	"github.com/codr1/careerbuilder/internal/api/careers"
	"github.com/codr1/careerbuilder/internal/api/htmx"
	"github.com/codr1/careerbuilder/internal/api/preview"
	"github.com/codr1/careerbuilder/internal/config"
)

func newServer(cfg *config.Config, a *app) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		// Innermost, so it sees the request ServeMux annotates with Pattern.
		api.WithMetrics,
		api.WithSession(cfg.Builder.SessionTTL, cfg.SecureCookies()),
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	// Register routes
	registerRoutes(router, cfg, a)

	return &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.App.Port),
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the preview websocket is long-lived.
		IdleTimeout: 60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config, a *app) {
	builderHandlers := builder.NewHandlers(a.sync, a.local, a.presets, cfg.Builder.AutosaveDebounce)
	careerHandlers := careers.NewHandlers(a.sync)
	previewHandlers := preview.NewHandlers(a.sync, a.sessions, a.hub, cfg.Builder.SessionTTL)

	// Main page handler
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		htmx.Redirect(w, r, "/builder")
	})

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := a.db.PingContext(r.Context()); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("Health check failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Features.EnableMetrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	// Builder shell
	mux.HandleFunc("GET /builder", builderHandlers.HandleBuilderPage)
	mux.HandleFunc("GET /builder/shell", builderHandlers.HandleShell)
	mux.HandleFunc("POST /builder/shell/retry", builderHandlers.HandleShellRetry)

	// Builder state
	mux.HandleFunc("GET /api/v1/state", builderHandlers.HandleGetState)
	mux.HandleFunc("PUT /api/v1/state", builderHandlers.HandlePutState)
	mux.Handle("POST /api/v1/publish", a.publish.Middleware(http.HandlerFunc(builderHandlers.HandlePublish)))
	mux.HandleFunc("GET /api/v1/revisions", builderHandlers.HandleListRevisions)
	mux.HandleFunc("POST /api/v1/revisions/{id}/restore", builderHandlers.HandleRestoreRevision)

	// Builder edits
	mux.HandleFunc("POST /api/v1/settings", builderHandlers.HandleSettings)
	mux.HandleFunc("POST /api/v1/theme/preset", builderHandlers.HandleApplyPreset)
	mux.HandleFunc("GET /api/v1/presets", builderHandlers.HandlePresets)
	mux.HandleFunc("GET /api/v1/catalog", builderHandlers.HandleCatalog)
	mux.HandleFunc("POST /api/v1/ui-theme", builderHandlers.HandleSetUITheme)
	mux.HandleFunc("POST /api/v1/pages", builderHandlers.HandleAddPage)
	mux.HandleFunc("DELETE /api/v1/pages/{page}", builderHandlers.HandleDeletePage)
	mux.HandleFunc("POST /api/v1/pages/{page}/activate", builderHandlers.HandleActivatePage)
	mux.HandleFunc("POST /api/v1/pages/{page}/sections", builderHandlers.HandleAddSection)
	mux.HandleFunc("POST /api/v1/pages/{page}/sections/move", builderHandlers.HandleMoveSection)
	mux.HandleFunc("DELETE /api/v1/pages/{page}/sections/{section}", builderHandlers.HandleRemoveSection)

	// Public page
	mux.HandleFunc("GET /published", careerHandlers.HandlePublished)
	mux.HandleFunc("GET /published/{page}", careerHandlers.HandlePublished)
	mux.HandleFunc("GET /p", careerHandlers.HandleDirect)
	mux.HandleFunc("GET /p/{page}", careerHandlers.HandleDirect)
	mux.HandleFunc("GET /api/v1/sections/faq/{source}", careerHandlers.HandleFAQ)

	// Preview
	mux.HandleFunc("GET /preview", previewHandlers.HandlePreviewPage)
	mux.HandleFunc("POST /preview/device", previewHandlers.HandleSelectDevice)
	mux.HandleFunc("GET /preview/ws", previewHandlers.HandleWS)

	// Static file handling with logging
	staticDir := cfg.App.StaticDir
	fs := http.FileServer(http.Dir(staticDir))

	// Add logging middleware for static files
	mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Str("static_dir", staticDir).
			Msg("Serving static file")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))
}
