package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee rows are owned and mutated by the HR module; this service
// only ever reads them. Salary is the base-currency amount for one full
// salary period of SalaryDays days.
type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string
	Salary       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	SalaryDays   int             `gorm:"not null"` // invariant: > 0, enforced at creation by HR
	StartDate    time.Time       `gorm:"type:date;not null"`
	LastPaidDate *time.Time      `gorm:"type:date"`
	IsPaid       bool
	PaidAmount   *decimal.Decimal `gorm:"type:numeric(18,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DailyRate is the pro-rata accrual per day of the active period.
func (e Employee) DailyRate() decimal.Decimal {
	return e.Salary.Div(decimal.NewFromInt(int64(e.SalaryDays)))
}
