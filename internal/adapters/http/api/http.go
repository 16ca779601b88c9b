// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/okian/scorecard/pkg/logger"
)

const defaultMaxBodyBytes = 8 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	TimelineDependencies
	CompetitionDependencies
	ClubDependencies
	AccountDependencies
	AssociationDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	timelineHandler     *TimelineHandler
	competitionsHandler *CompetitionsHandler
	clubsHandler        *ClubsHandler
	accountsHandler     *AccountsHandler
	associationsHandler *AssociationsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := options{maxBodyBytes: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Get()
	}
	b := base{log: o.logger.Named("api"), maxBodyBytes: o.maxBodyBytes}

	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		timelineHandler:     &TimelineHandler{base: b, deps: deps},
		competitionsHandler: &CompetitionsHandler{base: b, deps: deps},
		clubsHandler:        &ClubsHandler{base: b, deps: deps},
		accountsHandler:     &AccountsHandler{base: b, deps: deps},
		associationsHandler: &AssociationsHandler{base: b, deps: deps},
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/metrics", MetricsMiddleware(s.healthHandler.HandleMetrics, "metrics"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/timeline", MetricsMiddleware(s.timelineHandler.HandleTimeline, "timeline"))
		r.Post("/competitions/order", MetricsMiddleware(s.competitionsHandler.HandleOrder, "competitions"))
		r.Post("/clubs/order", MetricsMiddleware(s.clubsHandler.HandleOrder, "clubs"))
		r.Post("/accounts/order", MetricsMiddleware(s.accountsHandler.HandleOrder, "accounts"))
		r.Post("/associations/ranking", MetricsMiddleware(s.associationsHandler.HandleRanking, "associations"))
	})
}

// NewRouter returns a router with the request-id, real-ip, recovery and,
// when requestTimeout is positive, timeout middleware installed. Unknown
// paths and methods answer with JSON errors.
func NewRouter(requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	})
	return r
}

// base carries what every business handler shares.
type base struct {
	log          logger.Logger
	maxBodyBytes int64
}

// decode reads one JSON value from the request body into v.
func (b base) decode(w http.ResponseWriter, r *http.Request, op string, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, b.maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &Error{Op: op, Kind: ErrPayloadTooLarge, Err: fmt.Errorf("limit %d bytes", tooLarge.Limit)}
		}
		return &Error{Op: op, Kind: ErrBadRequest, Err: err}
	}
	if dec.More() {
		return &Error{Op: op, Kind: ErrBadRequest, Err: errors.New("unexpected data after JSON body")}
	}
	return nil
}

// fail logs err and writes the matching JSON error response.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	fields := []logger.Field{
		logger.String("request_id", RequestIDFrom(r.Context())),
		logger.String("path", r.URL.Path),
		logger.Int("status", status),
		logger.Error(err),
	}
	if status >= http.StatusInternalServerError {
		b.log.Error(r.Context(), "request failed", fields...)
	} else {
		b.log.Warn(r.Context(), "request rejected", fields...)
	}
	writeError(w, status, code, err)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// renderer encodes every JSON response.
var renderer = render.New() //nolint:gochecknoglobals // stateless after construction

func writeJSON(w http.ResponseWriter, status int, v any) {
	_ = renderer.JSON(w, status, v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
