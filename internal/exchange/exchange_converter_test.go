package exchange_test

import (
	"testing"

	"go-payroll/internal/exchange"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvert_BaseCurrencyPassesThrough(t *testing.T) {
	amount := decimal.RequireFromString("250000")

	conv := exchange.Convert(amount, exchange.BaseCurrency, date(2024, 1, 10), []exchange.DollarRate{
		rateOn(2024, 1, 10, "1500"),
	})

	assert.Equal(t, "250000", conv.ConvertedAmount.String())
	assert.Nil(t, conv.ExchangeRate)
	assert.Nil(t, conv.RateDate)
	assert.False(t, conv.RateMissing)
}

func TestConvert_ExactDateRate(t *testing.T) {
	conv := exchange.Convert(decimal.NewFromInt(100), "USD", date(2024, 1, 10), []exchange.DollarRate{
		rateOn(2024, 1, 10, "1500"),
	})

	assert.Equal(t, "150000", conv.ConvertedAmount.String())
	assert.Equal(t, "1500", conv.ExchangeRate.String())
	assert.Equal(t, date(2024, 1, 10), *conv.RateDate)
	assert.False(t, conv.RateMissing)
}

func TestConvert_RateDateMayDifferFromEntryDate(t *testing.T) {
	conv := exchange.Convert(decimal.NewFromInt(100), "USD", date(2024, 1, 10), []exchange.DollarRate{
		rateOn(2024, 2, 1, "1450"),
	})

	assert.Equal(t, "145000", conv.ConvertedAmount.String())
	assert.Equal(t, date(2024, 2, 1), *conv.RateDate)
}

func TestConvert_EmptyTableDegradesToIdentity(t *testing.T) {
	amount := decimal.RequireFromString("100.50")

	conv := exchange.Convert(amount, "USD", date(2024, 1, 10), nil)

	assert.Equal(t, "100.5", conv.ConvertedAmount.String())
	assert.Equal(t, "1", conv.ExchangeRate.String())
	assert.Equal(t, date(2024, 1, 10), *conv.RateDate)
	assert.True(t, conv.RateMissing)
}

func TestConvert_RoundsHalfUpToCents(t *testing.T) {
	// 33.33 * 1.5 = 49.995 -> 50.00
	conv := exchange.Convert(decimal.RequireFromString("33.33"), "USD", date(2024, 1, 10), []exchange.DollarRate{
		rateOn(2024, 1, 10, "1.5"),
	})

	assert.Equal(t, "50", conv.ConvertedAmount.String())
}
