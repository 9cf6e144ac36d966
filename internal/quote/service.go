package quote

import (
	"context"
	"fmt"
	"time"

	"goldconv/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SessionStore interface {
	Get(id uuid.UUID) (*Engine, bool)
	Put(id uuid.UUID, e *Engine) error
	Delete(id uuid.UUID)
}

type SessionStats struct {
	Added    uint64
	Evicted  uint64
	Hits     uint64
	Misses   uint64
	HitRatio float64
}

// Service manages conversion sessions, one engine each, and one-shot conversions.
type Service struct {
	ctx             context.Context
	fetcher         QuoteFetcher
	sessions        SessionStore
	defaultCurrency string
}

// CreateSession starts a session and immediately begins fetching the quote for date.
func (s *Service) CreateSession(date time.Time, currency string) (uuid.UUID, View, error) {
	if currency == "" {
		currency = s.defaultCurrency
	}
	id := uuid.New()
	e := NewEngine(s.ctx, s.fetcher, currency)
	if err := s.sessions.Put(id, e); err != nil {
		e.Close()
		return uuid.Nil, View{}, fmt.Errorf("failed to store session: %w", err)
	}
	e.SetDate(date)
	return id, newView(id, e.Snapshot()), nil
}

func (s *Service) GetSession(id uuid.UUID) (View, error) {
	e, err := s.engine(id)
	if err != nil {
		return View{}, err
	}
	return newView(id, e.Snapshot()), nil
}

// Wait blocks until the session's pending fetch completes or ctx ends.
func (s *Service) Wait(ctx context.Context, id uuid.UUID) (View, error) {
	e, err := s.engine(id)
	if err != nil {
		return View{}, err
	}
	snap, err := e.Wait(ctx)
	return newView(id, snap), err
}

func (s *Service) SelectDate(id uuid.UUID, date time.Time) (View, error) {
	e, err := s.engine(id)
	if err != nil {
		return View{}, err
	}
	e.SetDate(date)
	return newView(id, e.Snapshot()), nil
}

func (s *Service) Retry(id uuid.UUID) (View, error) {
	e, err := s.engine(id)
	if err != nil {
		return View{}, err
	}
	if _, err = e.Retry(); err != nil {
		return View{}, err
	}
	return newView(id, e.Snapshot()), nil
}

func (s *Service) SelectCurrency(id uuid.UUID, currency string) (View, error) {
	e, err := s.engine(id)
	if err != nil {
		return View{}, err
	}
	e.SelectCurrency(currency)
	return newView(id, e.Snapshot()), nil
}

func (s *Service) Convert(id uuid.UUID, req domain.ConversionRequest) (domain.ConversionResult, error) {
	e, err := s.engine(id)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	return e.RequestConversion(req)
}

func (s *Service) DeleteSession(id uuid.UUID) error {
	if _, err := s.engine(id); err != nil {
		return err
	}
	s.sessions.Delete(id)
	return nil
}

// QuickConvert fetches a quote for req.Date and converts it without keeping a session.
func (s *Service) QuickConvert(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error) {
	q, err := s.fetcher.FetchQuote(ctx, req.Date)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	res, err := Convert(&q, req)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	if res.FellBackToUSD {
		logrus.WithError(domain.ErrRateUnavailable).WithFields(logrus.Fields{"requested": req.Currency, "date": q.Date.Format(domain.DateLayout)}).
			Warn("No rate for requested currency, priced in USD")
	}
	return res, nil
}

func (s *Service) engine(id uuid.UUID) (*Engine, error) {
	e, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return e, nil
}

func NewService(ctx context.Context, fetcher QuoteFetcher, sessions SessionStore, defaultCurrency string) *Service {
	if defaultCurrency == "" {
		defaultCurrency = domain.AZN
	}
	return &Service{ctx: ctx, fetcher: fetcher, sessions: sessions, defaultCurrency: defaultCurrency}
}
