package domain

import "time"

// ConversionRequest is an immutable snapshot of what the user asked to price.
// A zero Date means "whatever date the quote was fetched for".
type ConversionRequest struct {
	AmountGrams float64
	Karat       int
	Currency    string
	Date        time.Time
}

type ConversionResult struct {
	AmountInCurrency float64
	Currency         string
	Karat            int
	AmountGrams      float64
	Rate             float64 // USD -> Currency rate actually applied
	Date             time.Time
	// FellBackToUSD is set when the requested currency could not be priced and
	// the USD amount was returned instead.
	FellBackToUSD bool
}

var (
	SupportedCurrencies = []string{AZN, USD, TRY}
	SupportedKarats     = []int{24, 22, 18, 14}
)
