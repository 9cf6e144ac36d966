package handler

import (
	"net/http"
	"strconv"

	"goldconv/internal/quote"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SelectDateRequest struct {
	Date string `json:"date" example:"2025-04-02"`
}

// SelectDate godoc
// @Summary Change the session date
// @Description Drop the current quote and fetch the gold price for another date.
// @Description With wait=true the response is sent once the fetch has finished.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the fetch to finish"
// @Param request body SelectDateRequest true "New date"
// @Success 200 {object} SessionResponse "fetch finished"
// @Success 202 {object} SessionResponse "fetch started"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/date [put]
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format")
		return
	}

	var req SelectDateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date, err := h.validator.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.service.SelectDate(id, date)
	if err != nil {
		writeSessionError(w, err, "SelectDate", id)
		return
	}
	h.respondAfterFetch(w, r, id, view, "SelectDate")
}

// Retry godoc
// @Summary Retry the gold price fetch
// @Description Fetch the gold price again for the session's current date
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the fetch to finish"
// @Success 200 {object} SessionResponse "fetch finished"
// @Success 202 {object} SessionResponse "fetch started"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /sessions/{id}/retry [post]
func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format")
		return
	}

	view, err := h.service.Retry(id)
	if err != nil {
		writeSessionError(w, err, "Retry", id)
		return
	}
	h.respondAfterFetch(w, r, id, view, "Retry")
}

// respondAfterFetch answers 202 with the fetching view, or with wait=true blocks
// until the fetch is done and answers 200 with the final view.
func (h *Handler) respondAfterFetch(w http.ResponseWriter, r *http.Request, id uuid.UUID, pending quote.View, handler string) {
	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		writeJSON(w, http.StatusAccepted, newSessionResponse(pending))
		return
	}

	view, err := h.service.Wait(r.Context(), id)
	if err != nil {
		if r.Context().Err() != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"handler": handler, "session_id": id}).Debug("client gave up waiting")
			writeJSON(w, http.StatusAccepted, newSessionResponse(pending))
			return
		}
		writeSessionError(w, err, handler, id)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(view))
}
