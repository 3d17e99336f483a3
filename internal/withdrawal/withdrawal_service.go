package withdrawal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/exchange"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"
	"go-payroll/internal/user"
	withdrawalerrors "go-payroll/internal/withdrawal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Narrow collaborator interfaces: employees and users are owned by the
// HR/auth modules, the rate table by the exchange module.

type EmployeeReader interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type RateSource interface {
	FindAll(ctx context.Context) ([]exchange.DollarRate, error)
}

//go:generate mockgen -source=withdrawal_service.go -destination=mock/withdrawal_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWithdrawalRequest) (WithdrawalResponse, error)
	GetAll(ctx context.Context, filter ListWithdrawalsFilterRequest) ([]WithdrawalResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (WithdrawalResponse, error)
	Update(ctx context.Context, id string, req UpdateWithdrawalRequest) (WithdrawalResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeReader
	users     UserReader
	rates     RateSource
	outbox    kafka.OutboxRepository
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	users UserReader,
	rates RateSource,
) Service {
	return &service{db: db, repo: repo, employees: employees, users: users, rates: rates}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	users UserReader,
	rates RateSource,
	outbox kafka.OutboxRepository,
) Service {
	return &service{db: db, repo: repo, employees: employees, users: users, rates: rates, outbox: outbox}
}

// Create records a withdrawal. The row and its outbox event share one
// transaction. There is deliberately no available-balance check here:
// the balance endpoint is advisory and creation stays unguarded.
func (s *service) Create(
	ctx context.Context,
	req CreateWithdrawalRequest,
) (WithdrawalResponse, error) {
	employeeID, createdBy, withdrawalDate, err := validateCreateRequest(req)
	if err != nil {
		return WithdrawalResponse{}, err
	}

	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		return WithdrawalResponse{}, notFoundAs(err, withdrawalerrors.ErrEmployeeNotFound)
	}

	if _, err := s.users.FindByID(ctx, req.CreatedBy); err != nil {
		return WithdrawalResponse{}, notFoundAs(err, withdrawalerrors.ErrUserNotFound)
	}

	currency := req.Currency
	if currency == "" {
		currency = exchange.BaseCurrency
	}

	w := &SalaryWithdrawal{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		Amount:         req.Amount,
		Currency:       currency,
		WithdrawalDate: withdrawalDate,
		Notes:          req.Notes,
		CreatedBy:      createdBy,
	}

	warning := ""

	switch {
	case req.ConvertedAmount != nil:
		// Caller supplied the conversion; persist it as given.
		w.ConvertedAmount = *req.ConvertedAmount
		w.ExchangeRate = req.ExchangeRate
		if req.RateDate != nil {
			rateDate, err := parseDate(*req.RateDate, "Rate Date")
			if err != nil {
				return WithdrawalResponse{}, err
			}
			w.RateDate = &rateDate
		}
	case currency == exchange.BaseCurrency:
		w.ConvertedAmount = req.Amount
	default:
		rates, err := s.rates.FindAll(ctx)
		if err != nil {
			return WithdrawalResponse{}, err
		}
		conv := exchange.Convert(req.Amount, currency, withdrawalDate, rates)
		w.ConvertedAmount = conv.ConvertedAmount
		w.ExchangeRate = conv.ExchangeRate
		w.RateDate = conv.RateDate
		if conv.RateMissing {
			warning = "no dollar rates available; amount converted 1:1"
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WithdrawalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, w); err != nil {
		return WithdrawalResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.stageCreatedEvent(ctx, tx, w); err != nil {
			return WithdrawalResponse{}, err
		}
	}

	created, err := qtx.FindByID(ctx, w.ID.String())
	if err != nil {
		return WithdrawalResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return WithdrawalResponse{}, err
	}

	resp := mapToResponse(*created)
	resp.Warning = warning
	return resp, nil
}

func (s *service) GetAll(
	ctx context.Context,
	filterReq ListWithdrawalsFilterRequest,
) ([]WithdrawalResponse, *response.PaginationMeta, error) {
	filter := WithdrawalFilter{}

	if filterReq.EmployeeID != "" {
		if _, err := uuid.Parse(filterReq.EmployeeID); err != nil {
			return nil, nil, apperror.InvalidField("Employee Id")
		}
		filter.EmployeeID = filterReq.EmployeeID
	}
	if filterReq.StartDate != "" {
		start, err := parseDate(filterReq.StartDate, "Start Date")
		if err != nil {
			return nil, nil, err
		}
		filter.StartDate = &start
	}
	if filterReq.EndDate != "" {
		end, err := parseDate(filterReq.EndDate, "End Date")
		if err != nil {
			return nil, nil, err
		}
		filter.EndDate = &end
	}

	filter.Page = filterReq.Page
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.Limit = filterReq.Limit
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, mapRepositoryError(err)
	}

	withdrawals, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, mapRepositoryError(err)
	}

	meta := response.NewPaginationMeta(total, filter.Page, filter.Limit)
	return mapToListResponse(withdrawals), &meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (WithdrawalResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return WithdrawalResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*w), nil
}

// Update applies coalesce semantics: each field keeps its stored value
// unless the request carries a replacement.
func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateWithdrawalRequest,
) (WithdrawalResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WithdrawalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByID(ctx, id)
	if err != nil {
		return WithdrawalResponse{}, mapRepositoryError(err)
	}

	if req.Amount != nil {
		w.Amount = *req.Amount
	}
	if req.Currency != nil {
		w.Currency = *req.Currency
	}
	if req.ConvertedAmount != nil {
		w.ConvertedAmount = *req.ConvertedAmount
	}
	if req.ExchangeRate != nil {
		w.ExchangeRate = req.ExchangeRate
	}
	if req.RateDate != nil {
		rateDate, err := parseDate(*req.RateDate, "Rate Date")
		if err != nil {
			return WithdrawalResponse{}, err
		}
		w.RateDate = &rateDate
	}
	if req.WithdrawalDate != nil {
		withdrawalDate, err := parseDate(*req.WithdrawalDate, "Withdrawal Date")
		if err != nil {
			return WithdrawalResponse{}, err
		}
		w.WithdrawalDate = withdrawalDate
	}
	if req.Notes != nil {
		w.Notes = req.Notes
	}

	if err := qtx.Update(ctx, w); err != nil {
		return WithdrawalResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return WithdrawalResponse{}, err
	}

	return mapToResponse(*w), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) stageCreatedEvent(ctx context.Context, tx *sql.Tx, w *SalaryWithdrawal) error {
	payload, err := json.Marshal(events.WithdrawalCreatedEvent{
		EventType:       "withdrawal.created",
		WithdrawalID:    w.ID.String(),
		EmployeeID:      w.EmployeeID.String(),
		Currency:        w.Currency,
		ConvertedAmount: w.ConvertedAmount.String(),
		WithdrawalDate:  w.WithdrawalDate.Format("2006-01-02"),
		CreatedBy:       w.CreatedBy.String(),
		OccurredAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "salary_withdrawal",
		AggregateID:   w.ID.String(),
		EventType:     "withdrawal.created",
		Topic:         events.WithdrawalCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validateCreateRequest(req CreateWithdrawalRequest) (uuid.UUID, uuid.UUID, time.Time, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, apperror.InvalidField("Employee Id")
	}

	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, apperror.InvalidField("Created By")
	}

	if !req.Amount.IsPositive() {
		return uuid.Nil, uuid.Nil, time.Time{}, apperror.InvalidField("Amount")
	}

	withdrawalDate, err := parseDate(req.WithdrawalDate, "Withdrawal Date")
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, err
	}

	return employeeID, createdBy, withdrawalDate, nil
}

func parseDate(v string, field string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperror.InvalidField(field)
	}
	return t, nil
}

func notFoundAs(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return withdrawalerrors.ErrWithdrawalNotFound
	}

	return err
}

func mapToResponse(w SalaryWithdrawal) WithdrawalResponse {
	resp := WithdrawalResponse{
		ID:              w.ID.String(),
		EmployeeID:      w.EmployeeID.String(),
		EmployeeName:    w.EmployeeName,
		Amount:          w.Amount,
		Currency:        w.Currency,
		ConvertedAmount: w.ConvertedAmount,
		ExchangeRate:    w.ExchangeRate,
		WithdrawalDate:  w.WithdrawalDate.Format("2006-01-02"),
		Notes:           w.Notes,
		CreatedBy:       w.CreatedBy.String(),
		CreatedByName:   w.CreatedByName,
		CreatedAt:       w.CreatedAt.Format(time.RFC3339),
	}

	if w.RateDate != nil {
		v := w.RateDate.Format("2006-01-02")
		resp.RateDate = &v
	}

	return resp
}

func mapToListResponse(withdrawals []SalaryWithdrawal) []WithdrawalResponse {
	res := make([]WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		res[i] = mapToResponse(w)
	}
	return res
}
