// Package server exposes the calculator over HTTP: an embedded single-page
// form and a small JSON API underneath /api/v1.
package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/bossin/grundsteuercheck/internal/calculation"
	"github.com/bossin/grundsteuercheck/internal/config"
)

//go:embed static/*
var staticFiles embed.FS

// Dependencies wires the calculator into the web front end.
type Dependencies struct {
	Engine   *calculation.Engine
	Defaults config.Defaults
	Version  string
}

// WebAPI is the HTTP front end of the calculator.
type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
	cfg    Config
}

// NewWebAPI builds the router and the underlying http.Server.
func NewWebAPI(logger zerolog.Logger, cfg Config, deps Dependencies) *WebAPI {
	h := NewHandler(deps.Engine, deps.Defaults, deps.Version)

	router := chi.NewRouter()
	router.Use(RequestLogger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Get("/version", h.Version)
	})

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("embedded static files missing: " + err.Error())
	}
	router.Handle("/*", http.FileServer(http.FS(static)))

	return &WebAPI{
		router: router,
		logger: &logger,
		cfg:    cfg,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
	}
}

// Router exposes the handler tree, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

// Start serves until the listener fails or SIGINT/SIGTERM arrives, then
// shuts down gracefully within the configured timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.cfg.ShutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}
		if err != nil {
			return err
		}
	}

	return nil
}
