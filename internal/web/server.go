package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/emiliopalmerini/srsadmin/internal/ports"
	sharedmw "github.com/emiliopalmerini/srsadmin/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

// Server is the browser console. Every visitor gets a console session of
// their own, tracked by cookie.
type Server struct {
	router   chi.Router
	port     int
	logger   ports.Logger
	sessions *sessionStore
}

func NewServer(api ports.ExperimentAPI, port int, logger ports.Logger, metrics ports.MetricsExporter) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		port:     port,
		logger:   logger,
		sessions: newSessionStore(api, logger, metrics),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(sharedmw.HTMX)

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handleIndex)
	r.Get("/experiments", s.handleTable)
	r.Post("/experiments", s.handleCreate)
	r.Post("/experiments/refresh", s.handleRefresh)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting console", "url", fmt.Sprintf("http://localhost:%d", s.port))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("console shutdown failed", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
