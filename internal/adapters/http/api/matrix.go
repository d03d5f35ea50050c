// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// MatrixHandler exposes the full compatibility matrix for inspection.
type MatrixHandler struct {
	deps Dependencies
}

// NewMatrixHandler creates a new matrix handler.
func NewMatrixHandler(deps Dependencies) *MatrixHandler {
	return &MatrixHandler{deps: deps}
}

// HandleGetMatrix handles GET /matrix requests.
func (h *MatrixHandler) HandleGetMatrix(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_matrix"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	m, err := h.deps.BuildMatrix(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, m)
}
