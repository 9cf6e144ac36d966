package domain

import (
	"maps"
	"time"
)

// TroyOunceGrams is the gram weight of one troy ounce as used by price conversion.
const TroyOunceGrams = 31.1035

// DateLayout is the calendar date format used by the pricing API and by callers.
const DateLayout = "2006-01-02"

const (
	USD = "USD"
	AZN = "AZN"
	TRY = "TRY"
)

// DefaultAZNRate is the fixed USD->AZN rate. AZN is pegged, so it is not fetched.
const DefaultAZNRate = 1.7

// PriceQuote is the external data fetched for one calendar date.
// A quote is only ever built from a fully successful fetch.
type PriceQuote struct {
	Date             time.Time
	PricePerOunceUSD float64
	PricePerGramUSD  float64
	Rates            map[string]float64 // USD -> code
	FetchedAt        time.Time
}

// NewPriceQuote builds a quote and derives the per-gram USD price.
func NewPriceQuote(date time.Time, pricePerOunceUSD float64, rates map[string]float64) PriceQuote {
	r := make(map[string]float64, len(rates)+1)
	maps.Copy(r, rates)
	r[USD] = 1.0
	return PriceQuote{
		Date:             DateOnly(date),
		PricePerOunceUSD: pricePerOunceUSD,
		PricePerGramUSD:  pricePerOunceUSD / TroyOunceGrams,
		Rates:            r,
	}
}

// HasPrice reports whether the quote carries a usable gold price.
func (q *PriceQuote) HasPrice() bool {
	return q != nil && q.PricePerOunceUSD > 0 && q.PricePerGramUSD > 0
}

// Rate returns the USD->code rate if present and positive.
func (q *PriceQuote) Rate(code string) (float64, bool) {
	if q == nil {
		return 0, false
	}
	v, ok := q.Rates[code]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
