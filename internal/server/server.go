package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/short-int-ali/PageLens/internal/crawler"
	"github.com/short-int-ali/PageLens/internal/model"
	"github.com/short-int-ali/PageLens/internal/pipeline"
)

// Server exposes the analysis pipeline over HTTP.
//
// Design decision: Each request gets a fresh pipeline from the factory
// because a pipeline's steps own per-run resources (a spider, a renderer
// session) that must not be shared between concurrent requests.
type Server struct {
	// addr is the listen address.
	addr string

	// pipelineFactory creates a pipeline per analysis request.
	pipelineFactory func() *pipeline.Pipeline

	// shutdownTimeout bounds graceful shutdown.
	shutdownTimeout time.Duration

	// requestTimeout bounds one analyze request. A full crawl can take
	// maxPages * fetchTimeout in the worst case, so this stays generous.
	requestTimeout time.Duration

	// logger for structured logging.
	logger *slog.Logger

	httpServer *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithShutdownTimeout sets the graceful shutdown bound.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// WithRequestTimeout bounds how long one analyze request may run.
func WithRequestTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// WithServerLogger sets a custom logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a Server around the given pipeline factory.
func New(pipelineFactory func() *pipeline.Pipeline, opts ...ServerOption) *Server {
	s := &Server{
		addr:            ":8080",
		pipelineFactory: pipelineFactory,
		shutdownTimeout: 10 * time.Second,
		requestTimeout:  10 * time.Minute,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/analyze", s.handleAnalyze)

	return r
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.logger.Info("http server shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// analyzeRequest is the analyze endpoint's input.
type analyzeRequest struct {
	URL string `json:"url"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

// handleAnalyze validates the start URL, runs a full analysis, and
// returns the report.
//
// Status mapping: input problems are 400, a run that could not fetch a
// single page is 422 (the URL was well formed but the site gave us
// nothing to analyze), anything else is 500.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	startURL, err := normalizeStartURL(req.URL)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report := model.NewAnalysisReport(startURL)
	err = s.pipelineFactory().Execute(r.Context(), report)

	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, report)
	case errors.Is(err, crawler.ErrInvalidStartURL):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, crawler.ErrNothingCrawled):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error("analysis failed", "url", startURL, "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeJSON writes a JSON response body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", "error", err)
	}
}

// writeError writes the JSON error envelope.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// normalizeStartURL validates the requested URL and upgrades bare
// hostnames to HTTPS. Plaintext HTTP targets are refused rather than
// silently upgraded: analyzing a site that only answers over HTTP would
// produce an empty, misleading report.
func normalizeStartURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("url is required")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("malformed url: %v", err)
	}
	switch u.Scheme {
	case "https":
	case "http":
		return "", errors.New("plaintext http is not supported, use https")
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("url has no host")
	}

	return u.String(), nil
}
