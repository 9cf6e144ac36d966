package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"goldconv/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fetchedAt = time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

func newTestFetcher(gold *MockGoldClient, forex *MockForexClient) *Fetcher {
	f := NewFetcher(gold, forex, 0, time.Second)
	f.now = func() time.Time { return fetchedAt }
	return f
}

func TestFetcher_FetchQuote_Success(t *testing.T) {
	gold := new(MockGoldClient)
	forex := new(MockForexClient)
	gold.On("GetSpotPrice", mock.Anything, "XAU", "USD", apr1).Return(3100.0, nil).Once()
	forex.On("GetRates", mock.Anything, "USD", []string{"TRY"}).Return(map[string]float64{"TRY": 38.5}, nil).Once()

	q, err := newTestFetcher(gold, forex).FetchQuote(context.Background(), apr1)
	require.NoError(t, err)
	require.Equal(t, apr1, q.Date)
	require.Equal(t, 3100.0, q.PricePerOunceUSD)
	require.InDelta(t, 99.66724002121947, q.PricePerGramUSD, 1e-9)
	require.Equal(t, map[string]float64{"USD": 1, "AZN": 1.7, "TRY": 38.5}, q.Rates)
	require.Equal(t, fetchedAt, q.FetchedAt)

	gold.AssertExpectations(t)
	forex.AssertExpectations(t)
}

func TestFetcher_FetchQuote_MissingTRYRate(t *testing.T) {
	gold := new(MockGoldClient)
	forex := new(MockForexClient)
	gold.On("GetSpotPrice", mock.Anything, "XAU", "USD", apr1).Return(3100.0, nil).Once()
	forex.On("GetRates", mock.Anything, "USD", []string{"TRY"}).Return(map[string]float64{"EUR": 0.92}, nil).Once()

	q, err := newTestFetcher(gold, forex).FetchQuote(context.Background(), apr1)
	require.NoError(t, err)
	_, ok := q.Rate(domain.TRY)
	require.False(t, ok)
	require.NotContains(t, q.Rates, "EUR")
}

func TestFetcher_FetchQuote_ConfiguredAZNRate(t *testing.T) {
	gold := new(MockGoldClient)
	forex := new(MockForexClient)
	gold.On("GetSpotPrice", mock.Anything, "XAU", "USD", apr1).Return(3100.0, nil).Once()
	forex.On("GetRates", mock.Anything, "USD", []string{"TRY"}).Return(map[string]float64{}, nil).Once()

	q, err := NewFetcher(gold, forex, 1.71, 0).FetchQuote(context.Background(), apr1)
	require.NoError(t, err)
	rate, ok := q.Rate(domain.AZN)
	require.True(t, ok)
	require.Equal(t, 1.71, rate)
}

func TestFetcher_FetchQuote_GoldFailureCancelsForex(t *testing.T) {
	gold := new(MockGoldClient)
	forex := new(MockForexClient)
	upstream := errors.New("unexpected status code 500")
	gold.On("GetSpotPrice", mock.Anything, "XAU", "USD", apr1).Return(0.0, upstream).Once()

	cancelled := make(chan struct{})
	forex.On("GetRates", mock.Anything, "USD", []string{"TRY"}).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			select {
			case <-ctx.Done():
				close(cancelled)
			case <-time.After(2 * time.Second):
			}
		}).
		Return(nil, context.Canceled).Once()

	_, err := newTestFetcher(gold, forex).FetchQuote(context.Background(), apr1)
	require.ErrorIs(t, err, domain.ErrFetchFailure)
	require.ErrorIs(t, err, upstream)
	require.Contains(t, err.Error(), "2025-04-01")

	select {
	case <-cancelled:
	default:
		t.Fatal("forex request was not cancelled")
	}
}

func TestFetcher_FetchQuote_ForexFailure(t *testing.T) {
	gold := new(MockGoldClient)
	forex := new(MockForexClient)
	upstream := errors.New("api returned no results")
	gold.On("GetSpotPrice", mock.Anything, "XAU", "USD", apr1).Return(3100.0, nil).Maybe()
	forex.On("GetRates", mock.Anything, "USD", []string{"TRY"}).Return(nil, upstream).Once()

	_, err := newTestFetcher(gold, forex).FetchQuote(context.Background(), apr1)
	require.ErrorIs(t, err, domain.ErrFetchFailure)
	require.ErrorIs(t, err, upstream)
	require.Contains(t, err.Error(), "exchange rate")
}

func TestFetcher_FetchQuote_NonPositivePrice(t *testing.T) {
	for _, price := range []float64{0, -12.5} {
		gold := new(MockGoldClient)
		forex := new(MockForexClient)
		gold.On("GetSpotPrice", mock.Anything, "XAU", "USD", apr1).Return(price, nil).Once()
		forex.On("GetRates", mock.Anything, "USD", []string{"TRY"}).Return(map[string]float64{"TRY": 38.5}, nil).Once()

		_, err := newTestFetcher(gold, forex).FetchQuote(context.Background(), apr1)
		require.ErrorIs(t, err, domain.ErrFetchFailure)
	}
}

func TestFetcher_FetchQuote_Timeout(t *testing.T) {
	gold := new(MockGoldClient)
	forex := new(MockForexClient)
	gold.On("GetSpotPrice", mock.Anything, "XAU", "USD", apr1).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(0.0, context.DeadlineExceeded).Once()
	forex.On("GetRates", mock.Anything, "USD", []string{"TRY"}).Return(map[string]float64{"TRY": 38.5}, nil).Maybe()

	f := NewFetcher(gold, forex, 0, 20*time.Millisecond)
	_, err := f.FetchQuote(context.Background(), apr1)
	require.ErrorIs(t, err, domain.ErrFetchFailure)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
