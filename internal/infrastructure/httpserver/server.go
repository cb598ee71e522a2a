package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"nextgen-api/internal/application/port/input"
	"nextgen-api/internal/application/port/output"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8000,
		AllowedOrigins: []string{"*"},
	}
}

type Server struct {
	httpServer *http.Server
	logger     output.LoggerPort
}

func New(cfg Config, processor input.TaskProcessor, logger output.LoggerPort) *Server {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(httplog.NewLogger("nextgen-api", httplog.Options{
		JSON:    true,
		Concise: true,
	})))
	r.Use(corsMiddleware(cfg.AllowedOrigins))
	r.Use(recoverer(logger))

	h := &handlers{
		processor: processor,
		validate:  validator.New(),
		logger:    logger,
		models:    defaultModels,
	}

	r.Route("/api/nextgen", func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/capabilities", h.capabilities)
		r.Post("/heartbeat", h.heartbeat)
		r.Post("/generate", h.generate)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) Start() error {
	s.logger.Info("Server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
