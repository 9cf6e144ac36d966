package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"goldconv/internal/domain"
)

// GoldAPIClient fetches historical spot prices from a goldapi.io compatible service.
type GoldAPIClient struct {
	http        *http.Client
	baseURL     string
	accessToken string
}

type spotPriceResponse struct {
	Price    *float64 `json:"price"`
	Metal    string   `json:"metal"`
	Currency string   `json:"currency"`
	Error    string   `json:"error"`
}

// GetSpotPrice returns the price of one troy ounce of symbol in currency on date.
func (c *GoldAPIClient) GetSpotPrice(ctx context.Context, symbol, currency string, date time.Time) (float64, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	day := date.Format(domain.DateLayout)
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + url.PathEscape(symbol) + "/" + url.PathEscape(currency) + "/" + day

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request for %s/%s on %s: %w", symbol, currency, day, err)
	}
	req.Header.Set("x-access-token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request for %s/%s on %s: %w", symbol, currency, day, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status code %d for %s/%s on %s: %s", resp.StatusCode, symbol, currency, day, resp.Status)
	}

	var body spotPriceResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode response for %s/%s on %s: %w", symbol, currency, day, err)
	}

	if body.Error != "" {
		return 0, fmt.Errorf("api returned error for %s/%s on %s: %s", symbol, currency, day, body.Error)
	}
	if body.Price == nil || *body.Price <= 0 {
		return 0, fmt.Errorf("api returned no usable price for %s/%s on %s", symbol, currency, day)
	}

	return *body.Price, nil
}

func NewGoldAPIClient(httpClient *http.Client, baseURL, accessToken string) *GoldAPIClient {
	return &GoldAPIClient{http: httpClient, baseURL: baseURL, accessToken: accessToken}
}
