// Package server exposes the ledger over a local JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

func NewRouter(svc AccountService, logger zerolog.Logger) http.Handler {
	accounts := NewAccountHandler(svc)
	transfers := NewTransferHandler(svc)
	logging := NewLoggingMiddleware(logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(logging.Wrap)
	r.Use(logging.Recover)

	r.Get("/health", Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", accounts.Create)
			r.Get("/", accounts.List)
			r.Get("/{id}", accounts.Get)
			r.Patch("/{id}", accounts.Rename)
			r.Post("/{id}/deposit", accounts.Deposit)
			r.Post("/{id}/withdraw", accounts.Withdraw)
		})

		r.Post("/transfers", transfers.Create)
	})

	return r
}

type Server struct {
	srv    *http.Server
	logger zerolog.Logger
}

func New(addr string, svc AccountService, logger zerolog.Logger) *Server {
	logger = logger.With().Str("component", "server").Logger()

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(svc, logger),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.srv.Addr).Msg("starting HTTP server")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
