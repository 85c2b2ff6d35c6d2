// Package http serves the dashboard: one HTML page, the SVG chart
// endpoints it embeds, a small JSON API and the colored-day form target.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"notulen/internal/cache"
	"notulen/internal/core"
	"notulen/internal/ingest"
	"notulen/internal/log"
	"notulen/internal/records"
	"notulen/internal/render"
	appweb "notulen/web"
)

type Server struct {
	http.Server
	templates *template.Template
	logger    *log.Logger

	// dataset is loaded once at startup and never mutated; annotations
	// are the only live write path.
	dataset     *ingest.Dataset
	annotations records.AnnotationStore
	layout      render.Layout
	dayFilter   *core.YearRange

	rateLimiter *rateLimiter

	// Rendered SVG bytes are cached per chart; a colored-day write
	// invalidates the heatmap entries for its year.
	svgCache     *cache.LRUCache[[]byte]
	cacheManager *cache.Manager
	shutdownOnce sync.Once
}

// NewServer wires routes, templates and caches. filter may be nil for an
// unfiltered day-of-year view.
func NewServer(addr string, ds *ingest.Dataset, ann records.AnnotationStore, layout render.Layout, filter *core.YearRange, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.ComponentHTTP, log.Config{})
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		logger:       logger,
		dataset:      ds,
		annotations:  ann,
		layout:       layout,
		dayFilter:    filter,
		rateLimiter:  newRateLimiter(),
		svgCache:     cache.NewLRUCache[[]byte](100, 5*time.Minute),
		cacheManager: cache.NewManager(),
	}
	s.cacheManager.Register(s.svgCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		logger.Warn("Failed parsing templates", log.FieldError, err)
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		logger.Warn("Failed to mount embedded static FS", log.FieldError, err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleIndex))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/heatmap.svg", s.withSecurityHeaders(s.handleHeatmap))
	mux.HandleFunc("/chart/years.svg", s.withSecurityHeaders(s.handleYearChart))
	mux.HandleFunc("/chart/months.svg", s.withSecurityHeaders(s.handleMonthChart))
	mux.HandleFunc("/chart/days.svg", s.withSecurityHeaders(s.handleDayChart))
	mux.HandleFunc("/api/frequency", s.withSecurityHeaders(s.handleFrequency))
	mux.HandleFunc("/colored-days", s.withSecurityHeaders(s.handleColoredDay))

	return s
}

// Shutdown stops the HTTP server and the background cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withSecurityHeaders adds security headers, rate limiting and request
// logging around a handler.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		reqLogger := s.logger.With(
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldClientIP, clientIP)
		reqLogger.Debug("Request started")

		// Only the annotation write path is rate limited; chart reads
		// are served from cache anyway.
		if r.Method == http.MethodPost && !s.rateLimiter.allow(clientIP) {
			reqLogger.Warn("Rate limit exceeded")
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		reqLogger.Info("Request completed",
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
