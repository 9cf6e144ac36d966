package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goldconv/internal/domain"
	"goldconv/internal/quote"
	"goldconv/internal/quote/handler"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fixedFetcher struct{}

func (fixedFetcher) FetchQuote(_ context.Context, date time.Time) (domain.PriceQuote, error) {
	return domain.NewPriceQuote(date, 3100, map[string]float64{domain.AZN: 1.7, domain.TRY: 38.5}), nil
}

type mapStore struct{ m map[uuid.UUID]*quote.Engine }

func (s *mapStore) Get(id uuid.UUID) (*quote.Engine, bool) {
	e, ok := s.m[id]
	return e, ok
}

func (s *mapStore) Put(id uuid.UUID, e *quote.Engine) error {
	s.m[id] = e
	return nil
}

func (s *mapStore) Delete(id uuid.UUID) {
	if e, ok := s.m[id]; ok {
		e.Close()
	}
	delete(s.m, id)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := quote.NewService(context.Background(), fixedFetcher{}, &mapStore{m: map[uuid.UUID]*quote.Engine{}}, domain.AZN)
	validator := quote.NewValidator(domain.SupportedCurrencies, domain.SupportedKarats)
	srv := httptest.NewServer(NewRouter(handler.NewQuoteHandler(validator, svc)))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t)
	resp := do(t, http.MethodGet, srv.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Prices(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/prices?date=2025-04-01&currency=USD&karat=24&grams=10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res handler.ConversionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Equal(t, 996.67, res.Amount)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/prices?date=2025-04-01&currency=USD&karat=9&grams=10", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_SessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/sessions", `{"date":"2025-04-01"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created handler.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	base := srv.URL + "/api/v1/sessions/" + created.SessionID

	resp = do(t, http.MethodPost, base+"/retry?wait=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ready handler.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ready))
	require.Equal(t, "ready", ready.State)

	resp = do(t, http.MethodPost, base+"/conversions", `{"grams":5,"karat":18}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var conv handler.ConversionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&conv))
	require.Equal(t, 635.38, conv.Amount)
	require.Equal(t, "AZN", conv.Currency)

	resp = do(t, http.MethodPut, base+"/currency", `{"currency":"TRY"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodPut, base+"/date", `{"date":"2025-04-02"}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp = do(t, http.MethodDelete, base, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
