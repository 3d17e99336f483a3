package exchange_test

import (
	"context"
	"database/sql"
	"testing"

	"go-payroll/internal/exchange"
	exchangeerrors "go-payroll/internal/exchange/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRateRepository struct {
	withTxFn  func(tx *sql.Tx) exchange.Repository
	createFn  func(ctx context.Context, rate *exchange.DollarRate) error
	findAllFn func(ctx context.Context) ([]exchange.DollarRate, error)
}

func (f *fakeRateRepository) WithTx(tx *sql.Tx) exchange.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeRateRepository) Create(ctx context.Context, rate *exchange.DollarRate) error {
	if f.createFn != nil {
		return f.createFn(ctx, rate)
	}
	return nil
}

func (f *fakeRateRepository) FindAll(ctx context.Context) ([]exchange.DollarRate, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

type rateServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service exchange.Service
	repo    *fakeRateRepository
}

func setupRateServiceTest(t *testing.T) *rateServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRateRepository{}
	svc := exchange.NewService(db, repo)

	return &rateServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func TestRateService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	deps := setupRateServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.createFn = func(ctx context.Context, rate *exchange.DollarRate) error {
		assert.Equal(t, "1500", rate.Rate.String())
		assert.Equal(t, actorID, rate.EnteredBy.String())
		return nil
	}

	resp, err := deps.service.Create(ctx, actorID, exchange.CreateDollarRateRequest{
		Date: "2024-01-10",
		Rate: rateOn(2024, 1, 10, "1500").Rate,
	})

	assert.NoError(t, err)
	assert.Equal(t, "2024-01-10", resp.Date)
	assert.Equal(t, "1500", resp.Rate.String())
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestRateService_Create_DuplicateDate(t *testing.T) {
	ctx := context.Background()

	deps := setupRateServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.createFn = func(ctx context.Context, rate *exchange.DollarRate) error {
		return exchangeerrors.ErrRateDateAlreadyExists
	}

	_, err := deps.service.Create(ctx, uuid.New().String(), exchange.CreateDollarRateRequest{
		Date: "2024-01-10",
		Rate: rateOn(2024, 1, 10, "1500").Rate,
	})

	assert.ErrorIs(t, err, exchangeerrors.ErrRateDateAlreadyExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestRateService_Create_InvalidDate(t *testing.T) {
	deps := setupRateServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Create(context.Background(), uuid.New().String(), exchange.CreateDollarRateRequest{
		Date: "10-01-2024",
		Rate: rateOn(2024, 1, 10, "1500").Rate,
	})

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
}

func TestRateService_Resolve_SurfacesMissingRateWarning(t *testing.T) {
	deps := setupRateServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context) ([]exchange.DollarRate, error) {
		return nil, nil
	}

	resp, err := deps.service.Resolve(context.Background(), exchange.ResolveRateQuery{
		Date:     "2024-01-10",
		Amount:   "100",
		Currency: "USD",
	})

	assert.NoError(t, err)
	assert.Equal(t, "100", resp.ConvertedAmount.String())
	assert.Equal(t, "1", resp.ExchangeRate.String())
	assert.NotEmpty(t, resp.Warning)
}

func TestRateService_Resolve_KnownRate(t *testing.T) {
	deps := setupRateServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context) ([]exchange.DollarRate, error) {
		return []exchange.DollarRate{rateOn(2024, 1, 10, "1500")}, nil
	}

	resp, err := deps.service.Resolve(context.Background(), exchange.ResolveRateQuery{
		Date:     "2024-01-10",
		Amount:   "100",
		Currency: "USD",
	})

	assert.NoError(t, err)
	assert.Equal(t, "150000", resp.ConvertedAmount.String())
	assert.Equal(t, "2024-01-10", *resp.RateDate)
	assert.Empty(t, resp.Warning)
}
