package payroll

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The balance engine reads storage through two narrow interfaces so it
// stays testable without a live database. The withdrawal ledger side is
// satisfied by the withdrawal module's repository.

type EmployeeReader interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type PaymentReader interface {
	FindByEmployee(ctx context.Context, employeeID string) ([]SalaryPayment, error)
}

type WithdrawalSummer interface {
	SumConvertedInWindow(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetAvailableBalance(ctx context.Context, employeeID string, today time.Time) (AvailableBalanceResponse, error)
}

type service struct {
	employees   EmployeeReader
	payments    PaymentReader
	withdrawals WithdrawalSummer
}

func NewBalanceService(
	employees EmployeeReader,
	payments PaymentReader,
	withdrawals WithdrawalSummer,
) Service {
	return &service{
		employees:   employees,
		payments:    payments,
		withdrawals: withdrawals,
	}
}

// GetAvailableBalance reports how much earned-but-unpaid salary the
// employee can still withdraw as of today. Read-only and advisory:
// nothing here stops a subsequent withdrawal from exceeding it.
func (s *service) GetAvailableBalance(
	ctx context.Context,
	employeeID string,
	today time.Time,
) (AvailableBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AvailableBalanceResponse{}, apperror.InvalidField("Employee Id")
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return AvailableBalanceResponse{}, mapRepositoryError(err)
	}

	payments, err := s.payments.FindByEmployee(ctx, employeeID)
	if err != nil {
		return AvailableBalanceResponse{}, mapRepositoryError(err)
	}

	period := ResolvePeriod(*emp, payments, today)

	withdrawn, err := s.withdrawals.SumConvertedInWindow(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return AvailableBalanceResponse{}, mapRepositoryError(err)
	}

	available := period.Entitlement.Sub(withdrawn)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return AvailableBalanceResponse{
		EmployeeID:       emp.ID.String(),
		EmployeeName:     emp.FullName,
		BaseSalary:       emp.Salary,
		SalaryDays:       emp.SalaryDays,
		DailyRate:        emp.DailyRate(),
		AvailableBalance: available,
		BalanceSource:    period.Classification,
		CanWithdraw:      available.IsPositive(),
	}, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrEmployeeNotFound
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Balance lookup failed", http.StatusInternalServerError)
}
