// Package server serves a sheet-compatible submission endpoint backed by
// SQLite or PostgreSQL, so the widget can run without a Google Apps Script.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/storage"
)

type Config struct {
	Addr          string
	RatePerMinute int
	Burst         int
}

// Server is the sheet-compatible HTTP server.
type Server struct {
	store   storage.Provider
	cfg     Config
	limiter *rate.Limiter
	router  chi.Router
	now     func() time.Time
}

// New creates a server over a loaded store.
func New(store storage.Provider, cfg Config) *Server {
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = constants.DefaultRatePerMinute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = constants.DefaultRateBurst
	}
	if cfg.Addr == "" {
		cfg.Addr = constants.DefaultServerAddr
	}

	s := &Server{
		store:   store,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RatePerMinute)/60), cfg.Burst),
		now:     time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleList)
	r.With(s.throttle).Post("/", s.handleAppend)
	r.Get("/health", s.handleHealth)

	s.router = r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Sheet server listening", "addr", s.cfg.Addr, "store", s.store.GetConfigPath())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownGrace)
		defer cancel()
		logger.Info("Shutting down sheet server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// --- Middleware ---

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, result{Result: "error", Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- Handlers ---

type result struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	subs, err := s.store.GetAllSubmissions(r.Context())
	if err != nil {
		logger.Error("Failed to list submissions", "err", err)
		writeJSON(w, http.StatusInternalServerError, result{Result: "error", Error: "failed to read submissions"})
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// handleAppend accepts any content type; the widget posts JSON as text/plain.
func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxSubmissionBytes)

	var sub models.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, result{Result: "error", Error: "invalid submission body"})
		return
	}

	sub, err := s.normalize(sub)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, result{Result: "error", Error: err.Error()})
		return
	}

	if err := s.store.AddSubmission(r.Context(), sub); err != nil {
		logger.Error("Failed to store submission", "id", sub.ID, "err", err)
		writeJSON(w, http.StatusInternalServerError, result{Result: "error", Error: "failed to store submission"})
		return
	}
	logger.Info("Stored submission", "id", sub.ID, "mood", sub.Mood)
	writeJSON(w, http.StatusOK, result{Result: "success"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) normalize(sub models.Submission) (models.Submission, error) {
	sub.ID = strings.TrimSpace(sub.ID)
	if sub.ID == "" {
		return sub, errors.New("id is required")
	}
	sub.Feedback = strings.TrimSpace(sub.Feedback)
	if sub.Feedback == "" {
		return sub, models.ErrEmptyFeedback
	}
	if !models.ValidMood(sub.Mood) {
		return sub, models.ErrMoodOutOfRange
	}
	if sub.Timestamp <= 0 {
		sub.Timestamp = s.now().UnixMilli()
	}
	return sub, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to write response", "err", err)
	}
}
