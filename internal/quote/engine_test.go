package quote

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"goldconv/internal/domain"

	"github.com/stretchr/testify/require"
)

var apr2 = apr1.AddDate(0, 0, 1)

func waitStarted(t *testing.T, f *gatedFetcher, day string) {
	t.Helper()
	select {
	case got := <-f.started:
		require.Equal(t, day, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("fetch for %s never started", day)
	}
}

func waitEngine(t *testing.T, e *Engine) Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err := e.Wait(ctx)
	require.NoError(t, err)
	return snap
}

func newTestEngine(t *testing.T, f QuoteFetcher, currency string) *Engine {
	t.Helper()
	e := NewEngine(context.Background(), f, currency)
	t.Cleanup(e.Close)
	return e
}

func TestEngine_StartsIdle(t *testing.T) {
	e := newTestEngine(t, newGatedFetcher(), domain.USD)

	snap := waitEngine(t, e)
	require.Equal(t, StateIdle, snap.State)
	require.Nil(t, snap.Quote)
	require.True(t, snap.Date.IsZero())

	_, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 1, Karat: 24})
	require.ErrorIs(t, err, domain.ErrNoQuoteAvailable)
}

func TestEngine_SetDate_FetchingThenReady(t *testing.T) {
	f := newGatedFetcher()
	e := newTestEngine(t, f, domain.USD)

	gen := e.SetDate(apr1.Add(15 * time.Hour))
	require.Equal(t, uint64(1), gen)
	waitStarted(t, f, "2025-04-01")

	snap := e.Snapshot()
	require.Equal(t, StateFetching, snap.State)
	require.Equal(t, apr1, snap.Date)

	_, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 10, Karat: 24})
	require.ErrorIs(t, err, domain.ErrNoQuoteAvailable)

	f.release("2025-04-01", 3100, nil)
	snap = waitEngine(t, e)
	require.Equal(t, StateReady, snap.State)
	require.NotNil(t, snap.Quote)
	require.Equal(t, apr1, snap.Quote.Date)
	require.NoError(t, snap.Err)

	res, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 10, Karat: 24})
	require.NoError(t, err)
	require.Equal(t, 996.67, res.AmountInCurrency)
	require.Equal(t, &res, e.Snapshot().Result)
}

func TestEngine_FetchFailure(t *testing.T) {
	f := newGatedFetcher()
	e := newTestEngine(t, f, domain.USD)

	e.SetDate(apr1)
	f.release("2025-04-01", 0, fmt.Errorf("%w for 2025-04-01: upstream down", domain.ErrFetchFailure))

	snap := waitEngine(t, e)
	require.Equal(t, StateFailed, snap.State)
	require.ErrorIs(t, snap.Err, domain.ErrFetchFailure)
	require.Nil(t, snap.Quote)

	_, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 1, Karat: 24})
	require.ErrorIs(t, err, domain.ErrNoQuoteAvailable)
}

func TestEngine_DateChangeInvalidatesQuoteAndResult(t *testing.T) {
	f := newGatedFetcher()
	e := newTestEngine(t, f, domain.USD)

	e.SetDate(apr1)
	f.release("2025-04-01", 3100, nil)
	waitEngine(t, e)
	_, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 1, Karat: 24})
	require.NoError(t, err)

	gen := e.SetDate(apr2)
	require.Equal(t, uint64(2), gen)
	snap := e.Snapshot()
	require.Equal(t, StateFetching, snap.State)
	require.Nil(t, snap.Quote)
	require.Nil(t, snap.Result)

	_, err = e.RequestConversion(domain.ConversionRequest{AmountGrams: 1, Karat: 24})
	require.ErrorIs(t, err, domain.ErrNoQuoteAvailable)
}

func TestEngine_CancelsPreviousFetch(t *testing.T) {
	f := newGatedFetcher()
	e := newTestEngine(t, f, domain.USD)

	e.SetDate(apr1)
	waitStarted(t, f, "2025-04-01")
	e.SetDate(apr2)
	waitStarted(t, f, "2025-04-02")

	f.release("2025-04-02", 3200, nil)
	snap := waitEngine(t, e)
	require.Equal(t, StateReady, snap.State)
	require.Equal(t, apr2, snap.Quote.Date)
	require.Equal(t, 3200.0, snap.Quote.PricePerOunceUSD)
}

func TestEngine_DiscardsStaleResult(t *testing.T) {
	f := newGatedFetcher()
	f.ignoreCancel = true
	e := newTestEngine(t, f, domain.USD)

	e.SetDate(apr1)
	waitStarted(t, f, "2025-04-01")
	e.SetDate(apr2)
	waitStarted(t, f, "2025-04-02")

	// the slow response for the old date arrives first
	f.release("2025-04-01", 1000, nil)
	require.Never(t, func() bool {
		return e.Snapshot().State != StateFetching
	}, 200*time.Millisecond, 10*time.Millisecond)

	f.release("2025-04-02", 3200, nil)
	snap := waitEngine(t, e)
	require.Equal(t, StateReady, snap.State)
	require.Equal(t, uint64(2), snap.Generation)
	require.Equal(t, apr2, snap.Quote.Date)
	require.Equal(t, 3200.0, snap.Quote.PricePerOunceUSD)
}

func TestEngine_DiscardsStaleFailure(t *testing.T) {
	f := newGatedFetcher()
	f.ignoreCancel = true
	e := newTestEngine(t, f, domain.USD)

	e.SetDate(apr1)
	waitStarted(t, f, "2025-04-01")
	e.SetDate(apr2)
	waitStarted(t, f, "2025-04-02")

	f.release("2025-04-02", 3200, nil)
	waitEngine(t, e)

	f.release("2025-04-01", 0, domain.ErrFetchFailure)
	require.Never(t, func() bool {
		return e.Snapshot().State != StateReady
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestEngine_Retry(t *testing.T) {
	f := newGatedFetcher()
	e := newTestEngine(t, f, domain.USD)

	_, err := e.Retry()
	require.ErrorIs(t, err, ErrNoDateSelected)

	e.SetDate(apr1)
	f.release("2025-04-01", 0, domain.ErrFetchFailure)
	require.Equal(t, StateFailed, waitEngine(t, e).State)

	gen, err := e.Retry()
	require.NoError(t, err)
	require.Equal(t, uint64(2), gen)
	require.Equal(t, StateFetching, e.Snapshot().State)

	f.release("2025-04-01", 3100, nil)
	snap := waitEngine(t, e)
	require.Equal(t, StateReady, snap.State)
	require.Equal(t, apr1, snap.Quote.Date)
}

func TestEngine_RequestConversion_SessionCurrencyAndDate(t *testing.T) {
	f := newGatedFetcher()
	e := newTestEngine(t, f, domain.TRY)

	e.SetDate(apr1)
	f.release("2025-04-01", 3100, nil)
	waitEngine(t, e)

	res, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 2.5, Karat: 22, Date: apr1.Add(time.Hour)})
	require.NoError(t, err)
	require.Equal(t, domain.TRY, res.Currency)
	require.Equal(t, 8793.56, res.AmountInCurrency)

	_, err = e.RequestConversion(domain.ConversionRequest{AmountGrams: 2.5, Karat: 22, Date: apr2})
	require.ErrorIs(t, err, domain.ErrNoQuoteAvailable)
	require.Equal(t, &res, e.Snapshot().Result)
}

func TestEngine_RequestConversion_FallbackIsReported(t *testing.T) {
	e := newTestEngine(t, stubQuote(domain.NewPriceQuote(apr1, 3100, nil)), domain.USD)

	e.SetDate(apr1)
	waitEngine(t, e)

	res, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 10, Karat: 24, Currency: domain.TRY})
	require.NoError(t, err)
	require.True(t, res.FellBackToUSD)
	require.Equal(t, domain.USD, res.Currency)
	require.Equal(t, 996.67, res.AmountInCurrency)
}

func TestEngine_SelectCurrency_ResetsResult(t *testing.T) {
	e := newTestEngine(t, stubQuote(domain.NewPriceQuote(apr1, 3100, map[string]float64{domain.AZN: 1.7})), domain.USD)
	e.SetDate(apr1)
	waitEngine(t, e)

	_, err := e.RequestConversion(domain.ConversionRequest{AmountGrams: 1, Karat: 24})
	require.NoError(t, err)

	// same currency keeps the result
	e.SelectCurrency(domain.USD)
	require.NotNil(t, e.Snapshot().Result)

	e.SelectCurrency(domain.AZN)
	snap := e.Snapshot()
	require.Nil(t, snap.Result)
	require.Equal(t, domain.AZN, snap.Currency)
	require.Equal(t, StateReady, snap.State)
}

func TestEngine_Close(t *testing.T) {
	f := newGatedFetcher()
	e := NewEngine(context.Background(), f, domain.USD)

	e.SetDate(apr1)
	waitStarted(t, f, "2025-04-01")

	e.Close()
	require.True(t, e.Closed())
	snap := waitEngine(t, e)
	require.Equal(t, StateFailed, snap.State)
	require.ErrorIs(t, snap.Err, ErrEngineClosed)

	gen := e.SetDate(apr2)
	require.Equal(t, snap.Generation, gen)
	require.Equal(t, apr1, e.Snapshot().Date)

	// idempotent
	e.Close()
}

func TestEngine_ParentContextCancelsFetch(t *testing.T) {
	f := newGatedFetcher()
	ctx, cancel := context.WithCancel(context.Background())
	e := NewEngine(ctx, f, domain.USD)
	defer e.Close()

	e.SetDate(apr1)
	waitStarted(t, f, "2025-04-01")
	cancel()

	snap := waitEngine(t, e)
	require.Equal(t, StateFailed, snap.State)
	require.True(t, errors.Is(snap.Err, context.Canceled))
}

func TestEngine_Wait_ContextDone(t *testing.T) {
	f := newGatedFetcher()
	e := newTestEngine(t, f, domain.USD)
	e.SetDate(apr1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	snap, err := e.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, StateFetching, snap.State)
}

type stubQuote domain.PriceQuote

func (s stubQuote) FetchQuote(context.Context, time.Time) (domain.PriceQuote, error) {
	return domain.PriceQuote(s), nil
}
