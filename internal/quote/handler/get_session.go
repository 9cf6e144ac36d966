package handler

import (
	"net/http"
)

// GetSession godoc
// @Summary Get a conversion session
// @Description Get the state, quote and latest result of a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format")
		return
	}

	view, err := h.service.GetSession(id)
	if err != nil {
		writeSessionError(w, err, "GetSession", id)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(view))
}

// DeleteSession godoc
// @Summary Close a conversion session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format")
		return
	}

	if err := h.service.DeleteSession(id); err != nil {
		writeSessionError(w, err, "DeleteSession", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
