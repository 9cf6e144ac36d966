package quote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"goldconv/internal/domain"

	"github.com/sirupsen/logrus"
)

type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateReady    State = "ready"
	StateFailed   State = "failed"
)

var (
	ErrNoDateSelected = errors.New("no date selected")
	ErrEngineClosed   = errors.New("conversion session closed")
)

type QuoteFetcher interface {
	FetchQuote(ctx context.Context, date time.Time) (domain.PriceQuote, error)
}

// Snapshot is a consistent copy of an engine's state.
type Snapshot struct {
	Generation uint64
	State      State
	Date       time.Time
	Currency   string
	Quote      *domain.PriceQuote
	Result     *domain.ConversionResult
	Err        error
}

// Engine holds the quote for the currently selected date of one conversion session.
//
// Each date selection starts a fetch tagged with a new generation. A completed fetch
// is applied only if its generation is still current, so a slow response for an old
// date can never overwrite the quote of a newer one. The previous fetch is also
// cancelled.
type Engine struct {
	fetcher QuoteFetcher
	baseCtx context.Context

	mu         sync.Mutex
	generation uint64
	state      State
	date       time.Time
	currency   string
	quote      *domain.PriceQuote
	result     *domain.ConversionResult
	lastErr    error
	cancel     context.CancelFunc
	done       chan struct{}
	closed     bool
}

// SetDate discards the current quote and starts fetching one for date.
// It returns the generation of the new fetch.
func (e *Engine) SetDate(date time.Time) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startFetchLocked(domain.DateOnly(date))
}

// Retry refetches the quote for the current date.
func (e *Engine) Retry() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.date.IsZero() {
		return e.generation, ErrNoDateSelected
	}
	return e.startFetchLocked(e.date), nil
}

func (e *Engine) startFetchLocked(date time.Time) uint64 {
	if e.closed {
		return e.generation
	}
	if e.cancel != nil {
		e.cancel()
	}

	e.generation++
	gen := e.generation
	e.date = date
	e.state = StateFetching
	e.quote = nil
	e.result = nil
	e.lastErr = nil

	ctx, cancel := context.WithCancel(e.baseCtx)
	done := make(chan struct{})
	e.cancel = cancel
	e.done = done

	go e.fetch(ctx, cancel, gen, date, done)
	return gen
}

func (e *Engine) fetch(ctx context.Context, cancel context.CancelFunc, gen uint64, date time.Time, done chan struct{}) {
	defer close(done)
	defer cancel()

	q, err := e.fetcher.FetchQuote(ctx, date)

	e.mu.Lock()
	defer e.mu.Unlock()

	day := date.Format(domain.DateLayout)
	if gen != e.generation || e.closed {
		logrus.WithFields(logrus.Fields{"date": day, "generation": gen, "current": e.generation}).Debug("Discarding stale quote fetch")
		return
	}
	e.cancel = nil

	if err != nil {
		e.state = StateFailed
		e.lastErr = err
		logrus.WithError(err).WithField("date", day).Warn("Gold price unavailable")
		return
	}
	e.quote = &q
	e.state = StateReady
	logrus.WithFields(logrus.Fields{"date": day, "price_per_ounce_usd": q.PricePerOunceUSD}).Debug("Quote ready")
}

// Wait blocks until the engine is no longer fetching or ctx is done.
func (e *Engine) Wait(ctx context.Context) (Snapshot, error) {
	for {
		e.mu.Lock()
		done, fetching := e.done, e.state == StateFetching
		e.mu.Unlock()

		if !fetching {
			return e.Snapshot(), nil
		}
		select {
		case <-done:
		case <-ctx.Done():
			return e.Snapshot(), ctx.Err()
		}
	}
}

// RequestConversion converts req against the ready quote and keeps the result.
// An empty currency means the session's selected currency.
func (e *Engine) RequestConversion(req domain.ConversionRequest) (domain.ConversionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateReady || e.quote == nil {
		return domain.ConversionResult{}, fmt.Errorf("%w: session is %s", domain.ErrNoQuoteAvailable, e.state)
	}
	if !req.Date.IsZero() && !domain.SameDate(req.Date, e.quote.Date) {
		return domain.ConversionResult{}, fmt.Errorf("%w for %s", domain.ErrNoQuoteAvailable, req.Date.Format(domain.DateLayout))
	}
	if req.Currency == "" {
		req.Currency = e.currency
	}

	res, err := Convert(e.quote, req)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	if res.FellBackToUSD {
		logrus.WithError(domain.ErrRateUnavailable).WithFields(logrus.Fields{"requested": req.Currency, "date": e.quote.Date.Format(domain.DateLayout)}).
			Warn("No rate for requested currency, priced in USD")
	}

	if req.Currency != e.currency {
		e.currency = req.Currency
	}
	e.result = &res
	return res, nil
}

// SelectCurrency changes the target currency. The previous result no longer applies
// and is dropped.
func (e *Engine) SelectCurrency(code string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code == e.currency {
		return
	}
	e.currency = code
	e.result = nil
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Generation: e.generation,
		State:      e.state,
		Date:       e.date,
		Currency:   e.currency,
		Quote:      e.quote,
		Result:     e.result,
		Err:        e.lastErr,
	}
}

// Close cancels any in-flight fetch. A closed engine ignores further date selections.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.state == StateFetching {
		e.state = StateFailed
		e.lastErr = ErrEngineClosed
	}
}

func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

func NewEngine(ctx context.Context, fetcher QuoteFetcher, currency string) *Engine {
	done := make(chan struct{})
	close(done)
	return &Engine{
		fetcher:  fetcher,
		baseCtx:  ctx,
		state:    StateIdle,
		currency: currency,
		done:     done,
	}
}
