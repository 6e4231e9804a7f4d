// Package server exposes the analyzer over HTTP: a JSON analyze endpoint, a
// health probe and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kotoba/analyze"
	"kotoba/metrics"
	"kotoba/tokenize"
)

// Server routes analyzer requests to a parser.
type Server struct {
	router chi.Router
	parser *tokenize.Parser
	engine string
	m      *metrics.Metrics
	log    zerolog.Logger
}

// New builds a server around a parser. The engine name only labels metrics.
func New(parser *tokenize.Parser, engine string, m *metrics.Metrics) *Server {
	s := &Server{
		parser: parser,
		engine: engine,
		m:      m,
		log:    log.With().Str("component", "server").Logger(),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	r.Post("/api/analyze", s.handleAnalyze)
	s.router = r
	return s
}

// Handler returns the HTTP handler tree.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info().Str("addr", addr).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		// The route pattern keeps the label set bounded; unmatched requests
		// share the empty pattern instead of minting one series per path.
		route := chi.RouteContext(r.Context()).RoutePattern()
		s.m.HTTPDuration.WithLabelValues(route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "engine": s.engine})
}

// analyzeRequest is the analyze endpoint's JSON body. SplitLines defaults to
// true when omitted.
type analyzeRequest struct {
	Text       string `json:"text"`
	Name       string `json:"name"`
	Format     string `json:"format"`
	SplitLines *bool  `json:"splitlines"`
}

var formatContentTypes = map[string]string{
	analyze.FormatTxt:  "text/plain; charset=utf-8",
	analyze.FormatHTML: "text/html; charset=utf-8",
	analyze.FormatCSV:  "text/tab-separated-values; charset=utf-8",
	analyze.FormatJSON: "application/x-ndjson",
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.Format == "" {
		req.Format = analyze.FormatTxt
	}
	if req.Name == "" {
		req.Name = "request"
	}

	p := *s.parser
	if req.SplitLines != nil {
		p.SplitLines = *req.SplitLines
	}
	doc, err := p.ParseDoc(r.Context(), req.Name, req.Text)
	if err != nil {
		s.m.ParseTotal.WithLabelValues(s.engine, "error").Inc()
		s.log.Error().Err(err).Msg("parse failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	out, err := analyze.Render(doc, req.Format)
	if errors.Is(err, analyze.ErrUnknownFormat) {
		s.m.ParseTotal.WithLabelValues(s.engine, "error").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.m.ParseTotal.WithLabelValues(s.engine, "error").Inc()
		writeError(w, http.StatusInternalServerError, "rendering failed")
		return
	}
	s.m.ParseTotal.WithLabelValues(s.engine, "ok").Inc()
	s.m.SentencesTotal.Add(float64(len(doc.Sents)))

	w.Header().Set("Content-Type", formatContentTypes[req.Format])
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
