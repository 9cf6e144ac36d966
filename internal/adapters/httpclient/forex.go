package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// FastForexClient fetches current exchange rates from a fastforex.io compatible service.
type FastForexClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

type fetchMultiResponse struct {
	Base    string             `json:"base"`
	Results map[string]float64 `json:"results"`
	Updated string             `json:"updated"`
	Error   string             `json:"error"`
}

// GetRates returns from->code rates for every requested code the service knows.
func (c *FastForexClient) GetRates(ctx context.Context, from string, to ...string) (map[string]float64, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/fetch-multi"
	q := u.Query()
	q.Set("from", from)
	q.Set("to", strings.Join(to, ","))
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for currency %q: %w", from, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error carries the full URL, which holds the api key
		return nil, fmt.Errorf("failed to execute request for currency %q: %w", from, redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for currency %q: %s", resp.StatusCode, from, resp.Status)
	}

	var body fetchMultiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for currency %q: %w", from, err)
	}

	if body.Error != "" {
		return nil, fmt.Errorf("api returned error for currency %q: %s", from, body.Error)
	}
	if body.Results == nil {
		return nil, fmt.Errorf("api returned no results for currency %q", from)
	}

	return body.Results, nil
}

func redact(err error, secret string) error {
	var uerr *url.Error
	if secret == "" || !errors.As(err, &uerr) {
		return err
	}
	uerr.URL = strings.ReplaceAll(uerr.URL, url.QueryEscape(secret), "REDACTED")
	return uerr
}

func NewFastForexClient(httpClient *http.Client, baseURL, apiKey string) *FastForexClient {
	return &FastForexClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
