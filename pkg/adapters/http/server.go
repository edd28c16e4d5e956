// Package http exposes a morphologic parser over HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/aretw0/trnltk/internal/dto"
	"github.com/aretw0/trnltk/pkg/domain"
)

// DefaultMaxBatch caps the words of one batch request.
const DefaultMaxBatch = 1000

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// StatusClientClosedRequest is returned when the caller went away mid-parse.
const StatusClientClosedRequest = 499

// Parser is the part of the analyzer the server needs. Both trnltk.Analyzer
// and parser.Caching satisfy it.
type Parser interface {
	ParseStr(ctx context.Context, word string) ([]*domain.Container, error)
	ParseAllStr(ctx context.Context, words []string) ([][]*domain.Container, error)
}

// ParseResponse is the body of GET /parse and one entry of a batch.
type ParseResponse = dto.WordAnalyses

// BatchRequest is the body of POST /parse/batch.
type BatchRequest struct {
	Words []string `json:"words"`
}

// BatchResponse answers POST /parse/batch in request order.
type BatchResponse struct {
	Results []ParseResponse `json:"results"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Server serves parse requests.
type Server struct {
	Parser   Parser
	Logger   *slog.Logger
	MaxBatch int
	Timeout  time.Duration

	metrics http.Handler
	origins []string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithMaxBatch overrides DefaultMaxBatch. Zero removes the cap.
func WithMaxBatch(n int) Option {
	return func(s *Server) {
		s.MaxBatch = n
	}
}

// WithTimeout bounds the time spent on one request.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.Timeout = d
	}
}

// WithAllowedOrigins restricts CORS. All origins are allowed by default.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// NewHandler creates the HTTP handler for parser.
func NewHandler(parser Parser, opts ...Option) http.Handler {
	s := &Server{
		Parser:   parser,
		Logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		MaxBatch: DefaultMaxBatch,
		origins:  []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	if s.Timeout > 0 {
		r.Use(s.timeout)
	}

	r.Get("/healthz", s.Health)
	r.Get("/parse", s.Parse)
	r.Post("/parse/batch", s.ParseBatch)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler(r)
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Parse handles GET /parse?word=.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		s.writeError(w, r, http.StatusBadRequest, errors.New("missing query parameter: word"))
		return
	}

	results, err := s.Parser.ParseStr(r.Context(), word)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.NewWordAnalyses(word, results))
}

// ParseBatch handles POST /parse/batch.
func (s *Server) ParseBatch(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if len(body.Words) == 0 {
		s.writeError(w, r, http.StatusBadRequest, errors.New("no words given"))
		return
	}
	if s.MaxBatch > 0 && len(body.Words) > s.MaxBatch {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, errors.New("too many words in one batch"))
		return
	}

	batch, err := s.Parser.ParseAllStr(r.Context(), body.Words)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	resp := BatchResponse{Results: make([]ParseResponse, len(batch))}
	for i, results := range batch {
		resp.Results[i] = dto.NewWordAnalyses(body.Words[i], results)
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

// -- Middleware --

type requestIDKey struct{}

// RequestID returns the id assigned to the request carrying ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		s.Logger.Debug("request served",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) timeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.Timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// -- Helpers --

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParseAborted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := RequestID(r.Context())
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "request_id", id, "path", r.URL.Path, "err", err)
	} else {
		s.Logger.Warn("request rejected", "request_id", id, "path", r.URL.Path, "status", status, "err", err)
	}
	s.writeJSON(w, r, status, ErrorResponse{Error: err.Error(), RequestID: id})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("failed to encode response", "request_id", RequestID(r.Context()), "err", err)
	}
}
