// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// AssignmentHandler handles event-wide assignment runs.
type AssignmentHandler struct {
	deps Dependencies
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(deps Dependencies) *AssignmentHandler {
	return &AssignmentHandler{deps: deps}
}

// HandlePostAssignment handles POST /assignment requests: builds the matrix
// over the current pools and solves the optimal pairing.
func (h *AssignmentHandler) HandlePostAssignment(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_assignment"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	result, err := h.deps.RunEventAssignment(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
