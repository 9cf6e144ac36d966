package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"goldconv/internal/domain"
	"goldconv/internal/quote"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 256

type Validator interface {
	ParseDate(raw string) (time.Time, error)
	ValidateCurrency(code string) error
	ValidateRequest(req domain.ConversionRequest) error
	SupportedCurrencies() []string
	SupportedKarats() []int
}

type Service interface {
	CreateSession(date time.Time, currency string) (uuid.UUID, quote.View, error)
	GetSession(id uuid.UUID) (quote.View, error)
	Wait(ctx context.Context, id uuid.UUID) (quote.View, error)
	SelectDate(id uuid.UUID, date time.Time) (quote.View, error)
	Retry(id uuid.UUID) (quote.View, error)
	SelectCurrency(id uuid.UUID, currency string) (quote.View, error)
	Convert(id uuid.UUID, req domain.ConversionRequest) (domain.ConversionResult, error)
	DeleteSession(id uuid.UUID) error
	QuickConvert(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error)
}

type Handler struct {
	validator Validator
	service   Service
}

func NewQuoteHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func sessionID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// writeSessionError maps session errors to status codes. Unknown errors are logged.
func writeSessionError(w http.ResponseWriter, err error, handler string, id uuid.UUID) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrNoQuoteAvailable):
		writeError(w, http.StatusConflict, "no gold price available for the selected date")
	case errors.Is(err, quote.ErrNoDateSelected):
		writeError(w, http.StatusConflict, err.Error())
	default:
		msg := "ups, couldn't process the session this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": handler, "session_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

type QuoteResponse struct {
	Date             string             `json:"date" example:"2025-04-01"`
	PricePerOunceUSD float64            `json:"price_per_ounce_usd" example:"3100"`
	PricePerGramUSD  float64            `json:"price_per_gram_usd" example:"99.66724"`
	Rates            map[string]float64 `json:"rates"`
	FetchedAt        time.Time          `json:"fetched_at" example:"2025-04-01T09:30:00Z"`
}

type ConversionResponse struct {
	Amount        float64 `json:"amount" example:"635.38"`
	Currency      string  `json:"currency" example:"AZN"`
	Karat         int     `json:"karat" example:"18"`
	Grams         float64 `json:"grams" example:"5"`
	Rate          float64 `json:"rate" example:"1.7"`
	Date          string  `json:"date" example:"2025-04-01"`
	FellBackToUSD bool    `json:"fell_back_to_usd" example:"false"`
}

type SessionResponse struct {
	SessionID string              `json:"session_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	State     string              `json:"state" example:"ready"`
	Date      string              `json:"date,omitempty" example:"2025-04-01"`
	Currency  string              `json:"currency" example:"AZN"`
	Quote     *QuoteResponse      `json:"quote,omitempty"`
	Result    *ConversionResponse `json:"result,omitempty"`
	LastError string              `json:"last_error,omitempty"`
}

func newConversionResponse(res domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Amount:        res.AmountInCurrency,
		Currency:      res.Currency,
		Karat:         res.Karat,
		Grams:         res.AmountGrams,
		Rate:          res.Rate,
		Date:          res.Date.Format(domain.DateLayout),
		FellBackToUSD: res.FellBackToUSD,
	}
}

func newSessionResponse(v quote.View) SessionResponse {
	res := SessionResponse{
		SessionID: v.SessionID.String(),
		State:     string(v.State),
		Currency:  v.Currency,
		LastError: v.Error,
	}
	if !v.Date.IsZero() {
		res.Date = v.Date.Format(domain.DateLayout)
	}
	if v.Quote != nil {
		res.Quote = &QuoteResponse{
			Date:             v.Quote.Date.Format(domain.DateLayout),
			PricePerOunceUSD: v.Quote.PricePerOunceUSD,
			PricePerGramUSD:  v.Quote.PricePerGramUSD,
			Rates:            v.Quote.Rates,
			FetchedAt:        v.Quote.FetchedAt,
		}
	}
	if v.Result != nil {
		c := newConversionResponse(*v.Result)
		res.Result = &c
	}
	return res
}
