package quote

import (
	"context"
	"fmt"
	"time"

	"goldconv/internal/adapters"
	"goldconv/internal/domain"

	"golang.org/x/sync/errgroup"
)

const goldSymbol = "XAU"

// Fetcher builds a PriceQuote from the gold price service and the forex service.
type Fetcher struct {
	gold    adapters.GoldPriceClient
	forex   adapters.ForexClient
	aznRate float64
	timeout time.Duration
	now     func() time.Time
}

// FetchQuote requests the gold price for date and the USD->TRY rate concurrently.
// Either request failing fails the whole quote; nothing is retried.
func (f *Fetcher) FetchQuote(ctx context.Context, date time.Time) (domain.PriceQuote, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	day := date.Format(domain.DateLayout)

	var (
		pricePerOunce float64
		forexRates    map[string]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := f.gold.GetSpotPrice(gctx, goldSymbol, domain.USD, date)
		if err != nil {
			return fmt.Errorf("gold price: %w", err)
		}
		pricePerOunce = p
		return nil
	})
	g.Go(func() error {
		r, err := f.forex.GetRates(gctx, domain.USD, domain.TRY)
		if err != nil {
			return fmt.Errorf("exchange rate: %w", err)
		}
		forexRates = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("%w for %s: %w", domain.ErrFetchFailure, day, err)
	}

	if pricePerOunce <= 0 {
		return domain.PriceQuote{}, fmt.Errorf("%w for %s: gold price must be positive, got %v", domain.ErrFetchFailure, day, pricePerOunce)
	}

	rates := map[string]float64{domain.AZN: f.aznRate}
	if v, ok := forexRates[domain.TRY]; ok {
		rates[domain.TRY] = v
	}

	q := domain.NewPriceQuote(date, pricePerOunce, rates)
	q.FetchedAt = f.now()
	return q, nil
}

func NewFetcher(gold adapters.GoldPriceClient, forex adapters.ForexClient, aznRate float64, timeout time.Duration) *Fetcher {
	if aznRate <= 0 {
		aznRate = domain.DefaultAZNRate
	}
	return &Fetcher{gold: gold, forex: forex, aznRate: aznRate, timeout: timeout, now: time.Now}
}
