package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/ariel/pkg/document"
	"github.com/matzehuels/ariel/pkg/observability"
	"github.com/matzehuels/ariel/pkg/pipeline"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// DefaultMaxBodyBytes bounds request documents when Options leaves it unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// Options configures a [Server].
type Options struct {
	// Registry resolves document component names. Nil uses the built-ins.
	Registry *document.Registry

	// MaxBodyBytes limits the request body size.
	MaxBodyBytes int64

	Logger *log.Logger
}

// Server serves render requests through a pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	registry *document.Registry
	maxBody  int64
	logger   *log.Logger
	router   chi.Router
}

// New creates a server rendering through runner.
func New(runner *pipeline.Runner, opts Options) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	if opts.Registry == nil {
		opts.Registry = document.Default
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		runner:   runner,
		registry: opts.Registry,
		maxBody:  opts.MaxBodyBytes,
		logger:   opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestID, s.accessLog)
	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/render/json", s.handleRenderJSON)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases the runner's cache.
func (s *Server) Close() error {
	return s.runner.Close()
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey struct{}

// RequestID returns the request identifier stored in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		dur := time.Since(start)

		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, dur)
		s.logger.Info("request",
			"id", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", dur)
	})
}
