package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type CreateSessionRequest struct {
	Date     string `json:"date" example:"2025-04-01"`
	Currency string `json:"currency" example:"AZN"`
}

// CreateSession godoc
// @Summary Start a conversion session
// @Description Create a session and start fetching the gold price for the date
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Date and optional currency"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := h.validator.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency != "" {
		if err = h.validator.ValidateCurrency(currency); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	_, view, err := h.service.CreateSession(date, currency)
	if err != nil {
		msg := "failed to create session"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateSession", "date": req.Date}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, newSessionResponse(view))
}
