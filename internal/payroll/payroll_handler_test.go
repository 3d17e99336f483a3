package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeBalanceService struct {
	getAvailableBalanceFn func(ctx context.Context, employeeID string, today time.Time) (payroll.AvailableBalanceResponse, error)
}

func (f *fakeBalanceService) GetAvailableBalance(
	ctx context.Context,
	employeeID string,
	today time.Time,
) (payroll.AvailableBalanceResponse, error) {
	return f.getAvailableBalanceFn(ctx, employeeID, today)
}

func newBalanceTestContext(t *testing.T, employeeID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/"+employeeID+"/available-balance", nil)
	c.Params = gin.Params{{Key: "id", Value: employeeID}}
	return c, w
}

func TestBalanceHandler_GetAvailableBalance(t *testing.T) {
	employeeID := uuid.New().String()
	svc := &fakeBalanceService{
		getAvailableBalanceFn: func(ctx context.Context, id string, today time.Time) (payroll.AvailableBalanceResponse, error) {
			assert.Equal(t, employeeID, id)
			return payroll.AvailableBalanceResponse{
				EmployeeID:       id,
				EmployeeName:     "Sara Ahmed",
				BaseSalary:       decimal.NewFromInt(300000),
				SalaryDays:       30,
				DailyRate:        decimal.NewFromInt(10000),
				AvailableBalance: decimal.NewFromInt(100000),
				BalanceSource:    payroll.SourceCurrentEarningPeriod,
				CanWithdraw:      true,
			}, nil
		},
	}
	handler := payroll.NewHandler(svc)

	c, w := newBalanceTestContext(t, employeeID)
	handler.GetAvailableBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)

	data, ok := envelope.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, employeeID, data["employeeId"])
	assert.Equal(t, "current_earning_period", data["balanceSource"])
	assert.Equal(t, true, data["canWithdraw"])
}

func TestBalanceHandler_GetAvailableBalance_NotFound(t *testing.T) {
	svc := &fakeBalanceService{
		getAvailableBalanceFn: func(ctx context.Context, id string, today time.Time) (payroll.AvailableBalanceResponse, error) {
			return payroll.AvailableBalanceResponse{}, payrollerrors.ErrEmployeeNotFound
		},
	}
	handler := payroll.NewHandler(svc)

	c, w := newBalanceTestContext(t, uuid.New().String())
	handler.GetAvailableBalance(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Ok)

	errObj, ok := envelope.Error.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}
