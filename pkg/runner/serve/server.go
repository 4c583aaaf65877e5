// Package serve exposes a board over HTTP for the browser drag-and-drop page
// and scripted clients.
package serve

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"tableflip.dev/stickycal/pkg/app"
	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
)

//go:embed static/index.html
var indexHTML []byte

const maxBody = 4 << 10

// Server routes HTTP requests onto an app.Service.
type Server struct {
	svc      *app.Service
	metrics  *Metrics
	log      *slog.Logger
	visitors *visitors
	now      func() time.Time
	router   *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithRateLimit sets the per-client token bucket.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Server) { s.visitors = newVisitors(limit, burst) }
}

// NewServer builds the router. metrics should be the same collectors the
// Service was wired to observe.
func NewServer(svc *app.Service, metrics *Metrics, opts ...Option) *Server {
	s := &Server{
		svc:      svc,
		metrics:  metrics,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		visitors: newVisitors(20, 60),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(s.rateLimit, s.monitor)

	r.HandleFunc("/", s.index).Methods(http.MethodGet)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/board", s.getBoard).Methods(http.MethodGet)
	api.HandleFunc("/report", s.getReport).Methods(http.MethodGet)
	api.HandleFunc("/drag", s.drag).Methods(http.MethodPost)
	api.HandleFunc("/drop/day/{day:[0-9]+}", s.dropOnDay).Methods(http.MethodPost)
	api.HandleFunc("/drop/trash", s.dropOnTrash).Methods(http.MethodPost)
	api.HandleFunc("/hover/day/{day:[0-9]+}", s.hover).Methods(http.MethodGet)
	api.HandleFunc("/reset", s.reset).Methods(http.MethodPost)
	api.HandleFunc("/calendar.ics", s.calendar).Methods(http.MethodGet)

	s.router = r
	return s
}

// Handler wraps the router with panic recovery and CORS.
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.ExposedHeaders([]string{"Content-Length"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)
	return cors(recovery(s.router))
}

// Sweep drops idle rate-limit buckets until ctx is done.
func (s *Server) Sweep(ctx context.Context) {
	s.visitors.sweep(ctx, time.Minute, 3*time.Minute)
}

type dragRequest struct {
	NoteID string `json:"noteId"`
}

type hoverResponse struct {
	Day     int  `json:"day"`
	Allowed bool `json:"allowed"`
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) getBoard(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, s.svc.Snapshot())
}

func (s *Server) getReport(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, s.svc.Report())
}

func (s *Server) drag(w http.ResponseWriter, r *http.Request) {
	var req dragRequest
	if err := decode(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := note.ParseID(req.NoteID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	wire, err := s.svc.Drag(id)
	switch {
	case errors.Is(err, app.ErrUnknownNote):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrNotDraggable):
		respondWithError(w, http.StatusConflict, err.Error())
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	default:
		respondWithJSON(w, http.StatusOK, wire)
	}
}

func (s *Server) dropOnDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid day")
		return
	}
	s.drop(w, r, app.DayTarget(day))
}

func (s *Server) dropOnTrash(w http.ResponseWriter, r *http.Request) {
	s.drop(w, r, app.TrashTarget())
}

func (s *Server) drop(w http.ResponseWriter, r *http.Request, to app.Target) {
	var wire board.Wire
	if err := decode(r, &wire); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.svc.Gesture(r.Context(), wire, to)
	switch {
	case errors.Is(err, board.ErrBadPayload):
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.log.Error("drop failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (s *Server) hover(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid day")
		return
	}
	respondWithJSON(w, http.StatusOK, hoverResponse{Day: day, Allowed: s.svc.Hover(day)})
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.Reset(r.Context())
	if err != nil {
		s.log.Error("reset failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, res.Board)
}

func (s *Server) calendar(w http.ResponseWriter, _ *http.Request) {
	snap := s.svc.Snapshot()
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=stickycal_"+strconv.Itoa(snap.Year)+"_"+strconv.Itoa(snap.Month)+".ics")
	writeICS(w, snap, s.now())
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		return errors.New("serve: invalid request body")
	}
	return nil
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
