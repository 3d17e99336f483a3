package withdrawal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryWithdrawal is one row of the append-mostly withdrawal ledger.
// ConvertedAmount is always base currency; ExchangeRate and RateDate
// are only set for foreign-currency entries.
type SalaryWithdrawal struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Currency        string          `gorm:"type:varchar(8);not null;default:'IQD'"`
	ConvertedAmount decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	ExchangeRate    *decimal.Decimal `gorm:"type:numeric(18,6)"`
	RateDate        *time.Time       `gorm:"type:date"`
	WithdrawalDate  time.Time        `gorm:"type:date;index;not null"`
	Notes           *string          `gorm:"type:text"`
	CreatedBy       uuid.UUID        `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Filled by join queries only
	EmployeeName  string `gorm:"->;-:migration"`
	CreatedByName string `gorm:"->;-:migration"`
}
