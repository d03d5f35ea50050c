// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mentormesh/matchd/internal/adapters/repository"
	"github.com/mentormesh/matchd/internal/domain/matrix"
	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the app service.
type Dependencies interface {
	SaveParticipant(ctx context.Context, p model.Participant) error
	Participant(ctx context.Context, id string) (model.Participant, error)
	Vectorize(answers model.Answers) []float64
	ScorePair(ctx context.Context, aID, bID string) (types.PairScore, error)
	BuildMatrix(ctx context.Context) (*matrix.Matrix, error)
	TopMatchesFor(ctx context.Context, id string, n int) ([]types.Match, error)
	RunEventAssignment(ctx context.Context) (types.AssignmentResult, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	participantsHandler *ParticipantsHandler
	matchesHandler      *MatchesHandler
	scoreHandler        *ScoreHandler
	matrixHandler       *MatrixHandler
	assignmentHandler   *AssignmentHandler
}

// NewServer creates a new API server with all handlers. maxTopMatches caps
// the limit parameter of match queries.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxTopMatches int) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		participantsHandler: NewParticipantsHandler(deps),
		matchesHandler:      NewMatchesHandler(deps, maxTopMatches),
		scoreHandler:        NewScoreHandler(deps),
		matrixHandler:       NewMatrixHandler(deps),
		assignmentHandler:   NewAssignmentHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/participants", MetricsMiddleware(s.participantsHandler.HandlePostParticipant, "participants"))
	mux.HandleFunc("/participants/", MetricsMiddleware(s.participantsHandler.HandleGetParticipant, "participant"))
	mux.HandleFunc("/matches/", MetricsMiddleware(s.matchesHandler.HandleGetMatches, "matches"))
	mux.HandleFunc("/score", MetricsMiddleware(s.scoreHandler.HandleGetScore, "score"))
	mux.HandleFunc("/matrix", MetricsMiddleware(s.matrixHandler.HandleGetMatrix, "matrix"))
	mux.HandleFunc("/assignment", MetricsMiddleware(s.assignmentHandler.HandlePostAssignment, "assignment"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
