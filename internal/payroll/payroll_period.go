package payroll

import (
	"time"

	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
)

const (
	// SourceUnpaidSalaryPeriod: a full salaryDays window has elapsed
	// without a settlement; the employee is owed the whole salary.
	SourceUnpaidSalaryPeriod = "unpaid_salary_period"
	// SourceCurrentEarningPeriod: the window is still in progress;
	// the entitlement accrues daily.
	SourceCurrentEarningPeriod = "current_earning_period"
)

// SalaryPeriod is the active unpaid-earning window for an employee.
//
// End is nil for current_earning_period: withdrawal lookups for an
// in-progress period are not upper-bounded, while a fully elapsed
// unpaid period is summed over exactly [Start, End). The asymmetry is
// load-bearing for observable balances; do not "fix" it.
type SalaryPeriod struct {
	Start          time.Time
	End            *time.Time
	Classification string
	DaysCounted    int
	Entitlement    decimal.Decimal
}

// ResolvePeriod derives the active period from the employee's start
// date and payment history (payments must be ordered newest first).
// Pure date math; storage stays out of it.
//
// With no payment history, elapsed days are counted from the start
// date and the window opens there. After a payment, elapsed days are
// counted from the payment date itself while the window opens the day
// after it.
func ResolvePeriod(emp employee.Employee, payments []SalaryPayment, today time.Time) SalaryPeriod {
	if len(payments) == 0 {
		start := truncateToDay(emp.StartDate)
		return resolvePeriodFrom(emp, start, start, today)
	}

	lastPaid := truncateToDay(payments[0].PaymentDate)
	return resolvePeriodFrom(emp, lastPaid, lastPaid.AddDate(0, 0, 1), today)
}

func resolvePeriodFrom(emp employee.Employee, countFrom, windowStart, today time.Time) SalaryPeriod {
	daysElapsed := daysBetween(countFrom, truncateToDay(today))

	if daysElapsed >= emp.SalaryDays {
		end := windowStart.AddDate(0, 0, emp.SalaryDays)
		return SalaryPeriod{
			Start:          windowStart,
			End:            &end,
			Classification: SourceUnpaidSalaryPeriod,
			DaysCounted:    emp.SalaryDays,
			Entitlement:    emp.Salary,
		}
	}

	// One day is always credited once any time has elapsed, including
	// same-day; the accrual floor is a single day.
	daysToCount := daysElapsed
	if daysToCount < 1 {
		daysToCount = 1
	}

	return SalaryPeriod{
		Start:          windowStart,
		End:            nil,
		Classification: SourceCurrentEarningPeriod,
		DaysCounted:    daysToCount,
		Entitlement:    emp.DailyRate().Mul(decimal.NewFromInt(int64(daysToCount))),
	}
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
