// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mentormesh/matchd/internal/domain/model"
)

// ParticipantsHandler handles participant submission and lookup.
type ParticipantsHandler struct {
	deps Dependencies
}

// NewParticipantsHandler creates a new participants handler.
func NewParticipantsHandler(deps Dependencies) *ParticipantsHandler {
	return &ParticipantsHandler{deps: deps}
}

// participantRequest mirrors the JSON schema for POST /participants.
type participantRequest struct {
	ID      string                  `json:"id"`
	Role    string                  `json:"role"`
	Answers map[string]model.Answer `json:"answers"`
}

func (p participantRequest) validate() error {
	const op = "api.post_participant"
	switch {
	case strings.TrimSpace(p.ID) == "":
		return NewKind(op, ErrBadRequest)
	case !model.Role(p.Role).Valid():
		return NewKind(op, ErrBadRequest)
	}
	return nil
}

type ackResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// HandlePostParticipant handles POST /participants requests: an idempotent
// upsert of one completed survey submission.
func (h *ParticipantsHandler) HandlePostParticipant(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_participant"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req participantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	p := model.Participant{
		ID:      req.ID,
		Role:    model.Role(req.Role),
		Answers: req.Answers,
	}
	p.Normalize()
	if err := h.deps.SaveParticipant(r.Context(), p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Status: "saved", ID: p.ID})
}

// HandleGetParticipant handles GET /participants/{id} and
// GET /participants/{id}/vector requests.
func (h *ParticipantsHandler) HandleGetParticipant(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_participant"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/participants/")
	wantVector := false
	if rest, ok := strings.CutSuffix(path, "/vector"); ok {
		path = rest
		wantVector = true
	}
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	p, err := h.deps.Participant(r.Context(), path)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	if wantVector {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":     p.ID,
			"vector": h.deps.Vectorize(p.Answers),
		})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
