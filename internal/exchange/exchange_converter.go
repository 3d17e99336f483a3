package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is the result of converting an entry into the base
// currency. ExchangeRate and RateDate stay nil for base-currency
// entries. RateMissing marks the degraded 1:1 path taken when the rate
// table is empty; it is the only way to tell that apart from a genuine
// market rate of 1.0, so callers must surface a warning when it is set.
type Conversion struct {
	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	ConvertedAmount  decimal.Decimal
	ExchangeRate     *decimal.Decimal
	RateDate         *time.Time
	RateMissing      bool
}

// Convert maps amount+currency to the base currency as of entryDate.
// Pure computation; persisting the resulting fields is the caller's job.
func Convert(amount decimal.Decimal, currency string, entryDate time.Time, rates []DollarRate) Conversion {
	if currency == BaseCurrency {
		return Conversion{
			OriginalAmount:   amount,
			OriginalCurrency: currency,
			ConvertedAmount:  amount,
		}
	}

	resolved, ok := ResolveRate(entryDate, rates)
	if !ok {
		// No rates at all: treat as 1:1 rather than failing the entry.
		one := decimal.NewFromInt(1)
		rateDate := entryDate
		return Conversion{
			OriginalAmount:   amount,
			OriginalCurrency: currency,
			ConvertedAmount:  amount,
			ExchangeRate:     &one,
			RateDate:         &rateDate,
			RateMissing:      true,
		}
	}

	rate := resolved.Rate
	rateDate := resolved.Date
	return Conversion{
		OriginalAmount:   amount,
		OriginalCurrency: currency,
		// Round half up on the cent boundary.
		ConvertedAmount: amount.Mul(rate).Round(2),
		ExchangeRate:    &rate,
		RateDate:        &rateDate,
	}
}
