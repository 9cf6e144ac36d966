package domain

import "errors"

var (
	ErrFetchFailure        = errors.New("price quote fetch failed")
	ErrNoQuoteAvailable    = errors.New("no price quote available")
	ErrUnsupportedCurrency = errors.New("currency not supported")
	ErrRateUnavailable     = errors.New("exchange rate unavailable")
	ErrSessionNotFound     = errors.New("session not found")
)
