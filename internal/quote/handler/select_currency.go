package handler

import (
	"net/http"
	"strings"
)

type SelectCurrencyRequest struct {
	Currency string `json:"currency" example:"TRY"`
}

// SelectCurrency godoc
// @Summary Change the session currency
// @Description Switch the target currency. The previous conversion result is dropped.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectCurrencyRequest true "New currency"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/currency [put]
func (h *Handler) SelectCurrency(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format")
		return
	}

	var req SelectCurrencyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if err := h.validator.ValidateCurrency(currency); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.service.SelectCurrency(id, currency)
	if err != nil {
		writeSessionError(w, err, "SelectCurrency", id)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(view))
}
