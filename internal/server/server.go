// Package server exposes wrapped snapshots over HTTP.
//
// # Routes
//
//	GET /healthz                          liveness probe
//	GET /api/users/{username}             ViewModel JSON
//	GET /api/users/{username}/card.svg    SVG summary card
//	GET /api/users/{username}/share       share text and tweet URL
//	GET /api/trending?q=                  trending repositories, filtered
//
// User routes accept ?refresh=1 to bypass the cache. Errors are JSON
// bodies of the form {"code": "...", "message": "..."} with the status
// chosen by [errors.HTTPStatus].
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Generator produces wrapped snapshots. *wrapped.Service satisfies it.
type Generator interface {
	Generate(ctx context.Context, username string, refresh bool) (*wrapped.ViewModel, bool, error)
}

// TrendingSource lists recently created popular repositories.
// *github.Client satisfies it.
type TrendingSource interface {
	FetchTrending(ctx context.Context, since time.Time, refresh bool) ([]github.Repo, error)
}

// Server routes HTTP requests to a Generator and a TrendingSource.
type Server struct {
	gen      Generator
	trending TrendingSource
	logger   *log.Logger
	now      func() time.Time
	router   chi.Router
}

// New builds the router. A nil trending source disables /api/trending.
func New(gen Generator, trending TrendingSource, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		gen:      gen,
		trending: trending,
		logger:   logger,
		now:      time.Now,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Route("/users/{username}", func(r chi.Router) {
			r.Get("/", s.handleUser)
			r.Get("/card.svg", s.handleCard)
			r.Get("/share", s.handleShare)
		})
		r.Get("/trending", s.handleTrending)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, notFound(r.URL.Path))
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger logs one line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
