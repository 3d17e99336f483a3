package exchange_test

import (
	"testing"
	"time"

	"go-payroll/internal/exchange"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rateOn(y int, m time.Month, d int, rate string) exchange.DollarRate {
	return exchange.DollarRate{
		Date: date(y, m, d),
		Rate: decimal.RequireFromString(rate),
	}
}

func TestResolveRate_EmptyTable(t *testing.T) {
	_, ok := exchange.ResolveRate(date(2024, 1, 10), nil)
	assert.False(t, ok)
}

func TestResolveRate_ExactDateWins(t *testing.T) {
	rates := []exchange.DollarRate{
		rateOn(2024, 1, 12, "1520"),
		rateOn(2024, 1, 10, "1500"),
		rateOn(2024, 1, 8, "1480"),
	}

	resolved, ok := exchange.ResolveRate(date(2024, 1, 10), rates)

	assert.True(t, ok)
	assert.Equal(t, "1500", resolved.Rate.String())
	assert.Equal(t, date(2024, 1, 10), resolved.Date)
}

func TestResolveRate_NearestPrior(t *testing.T) {
	rates := []exchange.DollarRate{
		rateOn(2024, 1, 20, "1520"),
		rateOn(2024, 1, 8, "1480"),
		rateOn(2024, 1, 2, "1460"),
	}

	resolved, ok := exchange.ResolveRate(date(2024, 1, 15), rates)

	assert.True(t, ok)
	assert.Equal(t, "1480", resolved.Rate.String())
	assert.Equal(t, date(2024, 1, 8), resolved.Date)
}

func TestResolveRate_AllRatesLater_ReturnsOldest(t *testing.T) {
	// Fallback of last resort: a backfilled entry that predates the
	// whole table still resolves, to the oldest rate on record.
	rates := []exchange.DollarRate{
		rateOn(2024, 3, 1, "1510"),
		rateOn(2024, 2, 1, "1450"),
	}

	resolved, ok := exchange.ResolveRate(date(2024, 1, 10), rates)

	assert.True(t, ok)
	assert.Equal(t, "1450", resolved.Rate.String())
	assert.Equal(t, date(2024, 2, 1), resolved.Date)
}

func TestResolveRate_OrderInsensitive(t *testing.T) {
	asc := []exchange.DollarRate{
		rateOn(2024, 1, 2, "1460"),
		rateOn(2024, 1, 8, "1480"),
	}
	desc := []exchange.DollarRate{
		rateOn(2024, 1, 8, "1480"),
		rateOn(2024, 1, 2, "1460"),
	}

	fromAsc, _ := exchange.ResolveRate(date(2024, 1, 15), asc)
	fromDesc, _ := exchange.ResolveRate(date(2024, 1, 15), desc)

	assert.Equal(t, fromAsc, fromDesc)
}
