package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryPayment is a full or partial settlement recorded by the HR
// module. The most recent payment by date resets the employee's
// earning period; this service only reads the history.
type SalaryPayment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PaymentDate time.Time       `gorm:"type:date;not null"`
	CreatedAt   time.Time
}
