package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"goldconv/internal/domain"

	"github.com/sirupsen/logrus"
)

// GetPrice godoc
// @Summary Convert gold without a session
// @Description Fetch the gold price for a date and price an amount of gold in the requested currency
// @Tags Prices
// @Produce json
// @Param date query string true "Date, YYYY-MM-DD"
// @Param currency query string true "Target currency"
// @Param karat query int true "Purity in karats"
// @Param grams query number true "Weight in grams"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse "gold price unavailable"
// @Failure 500 {object} errorResponse
// @Router /prices [get]
func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date, err := h.validator.ParseDate(q.Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	currency := strings.ToUpper(strings.TrimSpace(q.Get("currency")))
	if err = h.validator.ValidateCurrency(currency); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	karat, err := strconv.Atoi(strings.TrimSpace(q.Get("karat")))
	if err != nil {
		writeError(w, http.StatusBadRequest, "karat must be an integer")
		return
	}
	grams, err := strconv.ParseFloat(strings.TrimSpace(q.Get("grams")), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "grams must be a number")
		return
	}

	req := domain.ConversionRequest{AmountGrams: grams, Karat: karat, Currency: currency, Date: date}
	if err = h.validator.ValidateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.QuickConvert(r.Context(), req)
	if err != nil {
		fields := logrus.Fields{"handler": "GetPrice", "date": date.Format(domain.DateLayout), "currency": currency}
		if errors.Is(err, domain.ErrFetchFailure) {
			logrus.WithError(err).WithFields(fields).Warn("gold price unavailable")
			writeError(w, http.StatusBadGateway, "gold price unavailable")
			return
		}
		msg := "ups, couldn't convert this time"
		logrus.WithError(err).WithFields(fields).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, newConversionResponse(res))
}
