package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

type ResolvedRate struct {
	Rate decimal.Decimal
	Date time.Time
}

// ResolveRate picks the applicable rate for targetDate out of a sparse
// rate table. Selection order, which downstream conversion and UI
// messaging depend on:
//
//  1. a rate dated exactly targetDate
//  2. the nearest rate dated before targetDate
//  3. the oldest rate on record, even when it is dated after targetDate
//
// Step 3 is the fallback of last resort for backfilled entries that
// predate the whole table; it is not an error. Only an empty table
// yields no rate.
func ResolveRate(targetDate time.Time, rates []DollarRate) (ResolvedRate, bool) {
	if len(rates) == 0 {
		return ResolvedRate{}, false
	}

	target := truncateToDay(targetDate)

	for _, r := range rates {
		if truncateToDay(r.Date).Equal(target) {
			return ResolvedRate{Rate: r.Rate, Date: r.Date}, true
		}
	}

	var nearestPrior *DollarRate
	for i := range rates {
		d := truncateToDay(rates[i].Date)
		if d.After(target) {
			continue
		}
		if nearestPrior == nil || d.After(truncateToDay(nearestPrior.Date)) {
			nearestPrior = &rates[i]
		}
	}
	if nearestPrior != nil {
		return ResolvedRate{Rate: nearestPrior.Rate, Date: nearestPrior.Date}, true
	}

	oldest := rates[0]
	for _, r := range rates[1:] {
		if truncateToDay(r.Date).Before(truncateToDay(oldest.Date)) {
			oldest = r
		}
	}
	return ResolvedRate{Rate: oldest.Rate, Date: oldest.Date}, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
