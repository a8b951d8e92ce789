// Package server exposes combined theme files and their source maps over
// HTTP with conditional request support.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"regexp"
	"time"

	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/utils"
)

const (
	fileCacheControl = "public, must-revalidate"
	mapCacheControl  = "public, max-age=31536000, immutable"
	shutdownTimeout  = 5 * time.Second
)

// mapFilePattern matches source map file names: <fingerprint>.<css|js>.map
var mapFilePattern = regexp.MustCompile(`^([a-f0-9]+)\.(css|js)\.map$`)

// Options contains HTTP server configuration
type Options struct {
	Address      string
	Prefix       string
	Compress     bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Logger       *utils.Logger
}

// Server serves combined theme files
type Server struct {
	combiner domain.Combiner
	opts     Options
	urls     *URLs
	logger   *utils.Logger
}

// New creates a server backed by combiner
func New(combiner domain.Combiner, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Server{
		combiner: combiner,
		opts:     opts,
		urls:     NewURLs(opts.Prefix),
		logger:   logger.WithComponent("server"),
	}
}

// URLs returns the URL builder for the configured prefix
func (s *Server) URLs() *URLs {
	return s.urls
}

// Handler returns the routed HTTP handler with access logging and,
// when enabled, response compression
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET "+s.urls.Prefix()+"/{file...}", s.handleFile)

	var h http.Handler = mux
	if s.opts.Compress {
		h = compress(h)
	}
	return accessLog(s.logger, h)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.opts.WriteTimeout,
	}

	s.logger.Info().
		Str("address", ln.Addr().String()).
		Str("prefix", s.urls.Prefix()).
		Bool("compress", s.opts.Compress).
		Msg("Serving theme files")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info().Msg("Server stopped")
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	if m := mapFilePattern.FindStringSubmatch(file); m != nil {
		s.serveSourceMap(w, r, m[1])
		return
	}
	s.serveCombined(w, r, file)
}

func (s *Server) serveCombined(w http.ResponseWriter, r *http.Request, name string) {
	artifact, err := s.combiner.GetCombinedFile(r.Context(), name)
	if err != nil {
		s.writeError(w, name, err)
		return
	}

	h := w.Header()
	h.Set("ETag", artifact.ETag())
	h.Set("Cache-Control", fileCacheControl)

	decision := Decide(r.Header.Get("If-None-Match"), r.Header.Get("If-Modified-Since"), artifact.Fingerprint, artifact.LastModified)
	if decision == DecisionNotModified {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", artifact.ContentType)
	h.Set("Last-Modified", artifact.LastModifiedTime().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(artifact.Content))
	}
}

func (s *Server) serveSourceMap(w http.ResponseWriter, r *http.Request, fingerprint string) {
	content, ok, err := s.combiner.GetSourceMap(r.Context(), fingerprint)
	if err != nil {
		s.writeError(w, fingerprint, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	h := w.Header()
	h.Set("Content-Type", domain.ContentTypeSourceMap)
	h.Set("Cache-Control", mapCacheControl)
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(content))
	}
}

// writeError maps an unknown output to 404 and everything else to 500
func (s *Server) writeError(w http.ResponseWriter, subject string, err error) {
	status := StatusForError(err)
	if status == http.StatusNotFound {
		s.logger.Debug().Str("file", subject).Err(err).Msg("Theme file not found")
	} else {
		s.logger.Error().Str("file", subject).Err(err).Msg("Failed to serve theme file")
	}
	http.Error(w, http.StatusText(status), status)
}

// StatusForError returns the HTTP status for an error from the combiner
func StatusForError(err error) int {
	if domain.IsUnknownOutput(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	b, err := json.Marshal(v)
	if err != nil {
		_, _ = w.Write([]byte(`{"ok":false,"error":"failed to marshal json"}`))
		return
	}
	_, _ = w.Write(append(b, '\n'))
}
