package exchange

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const missingRateWarning = "no dollar rates available; amount converted 1:1"

//go:generate mockgen -source=exchange_service.go -destination=mock/exchange_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateDollarRateRequest) (DollarRateResponse, error)
	GetAll(ctx context.Context) ([]DollarRateResponse, error)
	Resolve(ctx context.Context, req ResolveRateQuery) (ConversionResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	actorID string,
	req CreateDollarRateRequest,
) (DollarRateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DollarRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	enteredBy, err := uuid.Parse(actorID)
	if err != nil {
		return DollarRateResponse{}, apperror.InvalidField("User Id")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return DollarRateResponse{}, err
	}

	if !req.Rate.IsPositive() {
		return DollarRateResponse{}, apperror.InvalidField("Rate")
	}

	rate := &DollarRate{
		ID:        uuid.New(),
		Date:      date,
		Rate:      req.Rate,
		EnteredBy: enteredBy,
	}

	if err := qtx.Create(ctx, rate); err != nil {
		return DollarRateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DollarRateResponse{}, err
	}

	return mapToResponse(*rate), nil
}

func (s *service) GetAll(ctx context.Context) ([]DollarRateResponse, error) {
	rates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rates), nil
}

// Resolve previews a conversion without persisting anything, so the UI
// can show the applicable rate before a withdrawal is recorded.
func (s *service) Resolve(
	ctx context.Context,
	req ResolveRateQuery,
) (ConversionResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return ConversionResponse{}, err
	}

	amount := decimal.NewFromInt(1)
	if req.Amount != "" {
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			return ConversionResponse{}, apperror.InvalidField("Amount")
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	rates, err := s.repo.FindAll(ctx)
	if err != nil {
		return ConversionResponse{}, mapRepositoryError(err)
	}

	return mapConversion(Convert(amount, currency, date, rates)), nil
}

func mapConversion(conv Conversion) ConversionResponse {
	resp := ConversionResponse{
		OriginalAmount:   conv.OriginalAmount,
		OriginalCurrency: conv.OriginalCurrency,
		ConvertedAmount:  conv.ConvertedAmount,
		ExchangeRate:     conv.ExchangeRate,
	}

	if conv.RateDate != nil {
		v := conv.RateDate.Format("2006-01-02")
		resp.RateDate = &v
	}
	if conv.RateMissing {
		resp.Warning = missingRateWarning
	}

	return resp
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperror.InvalidField("Date")
	}
	return t, nil
}

func mapToResponse(rate DollarRate) DollarRateResponse {
	return DollarRateResponse{
		ID:        rate.ID.String(),
		Date:      rate.Date.Format("2006-01-02"),
		Rate:      rate.Rate,
		EnteredBy: rate.EnteredBy.String(),
	}
}

func mapToListResponse(rates []DollarRate) []DollarRateResponse {
	res := make([]DollarRateResponse, len(rates))
	for i, rate := range rates {
		res[i] = mapToResponse(rate)
	}
	return res
}
