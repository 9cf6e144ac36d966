package quote

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"goldconv/internal/domain"
)

var (
	ErrDateRequired     = errors.New("date is required")
	ErrDateInvalid      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrCurrencyRequired = errors.New("currency is required")
	ErrKaratUnsupported = errors.New("karat not supported")
	ErrAmountInvalid    = errors.New("amount in grams must be a positive number")
)

// RequestValidator checks user input before it reaches the engine.
// The engine itself stays permissive.
type RequestValidator struct {
	currenciesSet map[string]struct{} // read only copy
	currenciesLst []string            // read only copy
	karatsSet     map[int]struct{}
	karatsLst     []int
}

func (v *RequestValidator) ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrDateRequired
	}
	d, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, ErrDateInvalid
	}
	return d, nil
}

func (v *RequestValidator) ValidateCurrency(code string) error {
	if code == "" {
		return ErrCurrencyRequired
	}
	if _, ok := v.currenciesSet[code]; !ok {
		return domain.ErrUnsupportedCurrency
	}
	return nil
}

// ValidateRequest checks amount, karat and, when set, currency.
func (v *RequestValidator) ValidateRequest(req domain.ConversionRequest) error {
	if req.AmountGrams <= 0 || math.IsNaN(req.AmountGrams) || math.IsInf(req.AmountGrams, 0) {
		return ErrAmountInvalid
	}
	if _, ok := v.karatsSet[req.Karat]; !ok {
		return ErrKaratUnsupported
	}
	if req.Currency != "" {
		return v.ValidateCurrency(req.Currency)
	}
	return nil
}

func (v *RequestValidator) SupportedCurrencies() []string {
	return slices.Clone(v.currenciesLst)
}

func (v *RequestValidator) SupportedKarats() []int {
	return slices.Clone(v.karatsLst)
}

func NewValidator(currencies []string, karats []int) *RequestValidator {
	currenciesSet := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		currenciesSet[c] = struct{}{}
	}
	currenciesLst := slices.Sorted(maps.Keys(currenciesSet))

	karatsSet := make(map[int]struct{}, len(karats))
	for _, k := range karats {
		karatsSet[k] = struct{}{}
	}
	karatsLst := slices.Sorted(maps.Keys(karatsSet))
	slices.Reverse(karatsLst)

	return &RequestValidator{
		currenciesSet: currenciesSet,
		currenciesLst: currenciesLst,
		karatsSet:     karatsSet,
		karatsLst:     karatsLst,
	}
}
