package handler

import (
	"net/http"
	"strings"
	"time"

	"goldconv/internal/domain"
)

type ConvertRequest struct {
	Grams    float64 `json:"grams" example:"5"`
	Karat    int     `json:"karat" example:"18"`
	Currency string  `json:"currency,omitempty" example:"AZN"`
	Date     string  `json:"date,omitempty" example:"2025-04-01"`
}

// Convert godoc
// @Summary Convert gold within a session
// @Description Price an amount of gold with the session's quote. Currency defaults to the session currency.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body ConvertRequest true "Amount, purity and optional currency and date"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse "no quote for the session yet"
// @Router /sessions/{id}/conversions [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format")
		return
	}

	var body ConvertRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var date time.Time
	if strings.TrimSpace(body.Date) != "" {
		d, err := h.validator.ParseDate(body.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		date = d
	}
	req := domain.ConversionRequest{
		AmountGrams: body.Grams,
		Karat:       body.Karat,
		Currency:    strings.ToUpper(strings.TrimSpace(body.Currency)),
		Date:        date,
	}
	if err := h.validator.ValidateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.Convert(id, req)
	if err != nil {
		writeSessionError(w, err, "Convert", id)
		return
	}
	writeJSON(w, http.StatusOK, newConversionResponse(res))
}
