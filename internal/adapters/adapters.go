package adapters

import (
	"context"
	"time"
)

type GoldPriceClient interface {
	GetSpotPrice(ctx context.Context, symbol, currency string, date time.Time) (float64, error)
}

type ForexClient interface {
	GetRates(ctx context.Context, from string, to ...string) (map[string]float64, error)
}
