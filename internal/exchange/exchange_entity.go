package exchange

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency every balance and entitlement is
// ultimately expressed in.
const BaseCurrency = "IQD"

// DollarRate is one point of the sparse, date-indexed rate series:
// how many base-currency units one foreign-currency unit buys on Date.
// Gaps between dates are expected; the resolver tolerates them.
type DollarRate struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date      time.Time       `gorm:"type:date;uniqueIndex:uq_dollar_rate_date;not null"`
	Rate      decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	EnteredBy uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
