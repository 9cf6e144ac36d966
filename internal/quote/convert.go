package quote

import (
	"goldconv/internal/domain"

	"github.com/shopspring/decimal"
)

const fineKarat = 24

// Convert prices req against q. It has no side effects.
//
// Currency resolution, in order: USD is the gram price as is; AZN and TRY are
// multiplied by their rate from the quote. Anything else, including TRY without a
// rate, falls back to the USD amount and sets FellBackToUSD.
// Karat is not validated here: the purity factor is always karat/24.
func Convert(q *domain.PriceQuote, req domain.ConversionRequest) (domain.ConversionResult, error) {
	if !q.HasPrice() {
		return domain.ConversionResult{}, domain.ErrNoQuoteAvailable
	}

	currency, rate, fellBack := resolveRate(q, req.Currency)
	base := q.PricePerGramUSD * rate
	purity := float64(req.Karat) / fineKarat

	return domain.ConversionResult{
		AmountInCurrency: round2(base * purity * req.AmountGrams),
		Currency:         currency,
		Karat:            req.Karat,
		AmountGrams:      req.AmountGrams,
		Rate:             rate,
		Date:             q.Date,
		FellBackToUSD:    fellBack,
	}, nil
}

func resolveRate(q *domain.PriceQuote, currency string) (string, float64, bool) {
	switch currency {
	case domain.USD:
		return domain.USD, 1, false
	case domain.AZN:
		if r, ok := q.Rate(domain.AZN); ok {
			return domain.AZN, r, false
		}
		return domain.AZN, domain.DefaultAZNRate, false
	case domain.TRY:
		if r, ok := q.Rate(domain.TRY); ok {
			return domain.TRY, r, false
		}
	}
	return domain.USD, 1, true
}

// round2 rounds half away from zero on the shortest decimal form of v.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
