package payroll_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeReader struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeReader) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}

type fakePaymentReader struct {
	findByEmployeeFn func(ctx context.Context, employeeID string) ([]payroll.SalaryPayment, error)
}

func (f *fakePaymentReader) FindByEmployee(ctx context.Context, employeeID string) ([]payroll.SalaryPayment, error) {
	return f.findByEmployeeFn(ctx, employeeID)
}

type fakeWithdrawalSummer struct {
	sumFn func(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error)
}

func (f *fakeWithdrawalSummer) SumConvertedInWindow(
	ctx context.Context,
	employeeID string,
	start time.Time,
	end *time.Time,
) (decimal.Decimal, error) {
	return f.sumFn(ctx, employeeID, start, end)
}

type balanceServiceDeps struct {
	employees   *fakeEmployeeReader
	payments    *fakePaymentReader
	withdrawals *fakeWithdrawalSummer
	service     payroll.Service
}

func setupBalanceServiceTest(emp employee.Employee) *balanceServiceDeps {
	deps := &balanceServiceDeps{
		employees: &fakeEmployeeReader{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &emp, nil
			},
		},
		payments: &fakePaymentReader{
			findByEmployeeFn: func(ctx context.Context, employeeID string) ([]payroll.SalaryPayment, error) {
				return nil, nil
			},
		},
		withdrawals: &fakeWithdrawalSummer{
			sumFn: func(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error) {
				return decimal.Zero, nil
			},
		},
	}
	deps.service = payroll.NewBalanceService(deps.employees, deps.payments, deps.withdrawals)
	return deps
}

func TestGetAvailableBalance_CurrentEarning(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	resp, err := deps.service.GetAvailableBalance(context.Background(), emp.ID.String(), date(2024, 1, 11))

	assert.NoError(t, err)
	assert.Equal(t, emp.ID.String(), resp.EmployeeID)
	assert.Equal(t, "Sara Ahmed", resp.EmployeeName)
	assert.Equal(t, "100000", resp.AvailableBalance.String())
	assert.Equal(t, payroll.SourceCurrentEarningPeriod, resp.BalanceSource)
	assert.Equal(t, "10000", resp.DailyRate.String())
	assert.True(t, resp.CanWithdraw)
}

func TestGetAvailableBalance_SubtractsWithdrawals(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	deps.withdrawals.sumFn = func(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error) {
		return decimal.NewFromInt(40000), nil
	}

	resp, err := deps.service.GetAvailableBalance(context.Background(), emp.ID.String(), date(2024, 1, 11))

	assert.NoError(t, err)
	assert.Equal(t, "60000", resp.AvailableBalance.String())
	assert.True(t, resp.CanWithdraw)
}

func TestGetAvailableBalance_NeverNegative(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	deps.withdrawals.sumFn = func(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error) {
		return decimal.NewFromInt(999999), nil
	}

	resp, err := deps.service.GetAvailableBalance(context.Background(), emp.ID.String(), date(2024, 1, 11))

	assert.NoError(t, err)
	assert.Equal(t, "0", resp.AvailableBalance.String())
	assert.False(t, resp.CanWithdraw)
}

func TestGetAvailableBalance_UnpaidPeriod_BoundedWindow(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	var gotStart time.Time
	var gotEnd *time.Time
	deps.withdrawals.sumFn = func(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error) {
		gotStart = start
		gotEnd = end
		return decimal.Zero, nil
	}

	resp, err := deps.service.GetAvailableBalance(context.Background(), emp.ID.String(), date(2024, 2, 5))

	assert.NoError(t, err)
	assert.Equal(t, payroll.SourceUnpaidSalaryPeriod, resp.BalanceSource)
	assert.Equal(t, "300000", resp.AvailableBalance.String())
	assert.Equal(t, date(2024, 1, 1), gotStart)
	assert.NotNil(t, gotEnd)
	assert.Equal(t, date(2024, 1, 31), *gotEnd)
}

func TestGetAvailableBalance_CurrentPeriod_OpenWindow(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	var gotEnd *time.Time
	endSeen := false
	deps.withdrawals.sumFn = func(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error) {
		gotEnd = end
		endSeen = true
		return decimal.Zero, nil
	}

	_, err := deps.service.GetAvailableBalance(context.Background(), emp.ID.String(), date(2024, 1, 11))

	assert.NoError(t, err)
	assert.True(t, endSeen)
	assert.Nil(t, gotEnd)
}

func TestGetAvailableBalance_IdempotentRecompute(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	first, err := deps.service.GetAvailableBalance(context.Background(), emp.ID.String(), date(2024, 1, 11))
	assert.NoError(t, err)

	second, err := deps.service.GetAvailableBalance(context.Background(), emp.ID.String(), date(2024, 1, 11))
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailableBalance_EmployeeNotFound(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := deps.service.GetAvailableBalance(context.Background(), uuid.New().String(), date(2024, 1, 11))

	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
}

func TestGetAvailableBalance_InvalidEmployeeID(t *testing.T) {
	emp := monthlyEmployee(date(2024, 1, 1))
	deps := setupBalanceServiceTest(emp)

	_, err := deps.service.GetAvailableBalance(context.Background(), "not-a-uuid", date(2024, 1, 11))

	assert.Error(t, err)
}
