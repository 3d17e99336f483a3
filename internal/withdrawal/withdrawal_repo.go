package withdrawal

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WithdrawalFilter struct {
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

//go:generate mockgen -source=withdrawal_repo.go -destination=mock/withdrawal_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *SalaryWithdrawal) error
	FindByID(ctx context.Context, id string) (*SalaryWithdrawal, error)
	FindAll(ctx context.Context, filter WithdrawalFilter) ([]SalaryWithdrawal, error)
	Count(ctx context.Context, filter WithdrawalFilter) (int64, error)
	Update(ctx context.Context, w *SalaryWithdrawal) error
	Delete(ctx context.Context, id string) error
	SumConvertedInWindow(ctx context.Context, employeeID string, start time.Time, end *time.Time) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, w *SalaryWithdrawal) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryWithdrawal, error) {
	var w SalaryWithdrawal
	err := r.db.WithContext(ctx).
		Table("salary_withdrawals").
		Select("salary_withdrawals.*, employees.full_name AS employee_name, users.full_name AS created_by_name").
		Joins("JOIN employees ON employees.id = salary_withdrawals.employee_id").
		Joins("JOIN users ON users.id = salary_withdrawals.created_by").
		Where("salary_withdrawals.id = ?", id).
		First(&w).Error
	return &w, err
}

func applyFilter(query *gorm.DB, filter WithdrawalFilter) *gorm.DB {
	if filter.EmployeeID != "" {
		query = query.Where("salary_withdrawals.employee_id = ?", filter.EmployeeID)
	}
	if filter.StartDate != nil {
		query = query.Where("salary_withdrawals.withdrawal_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("salary_withdrawals.withdrawal_date <= ?", *filter.EndDate)
	}
	return query
}

func (r *repository) FindAll(ctx context.Context, filter WithdrawalFilter) ([]SalaryWithdrawal, error) {
	query := applyFilter(
		r.db.WithContext(ctx).
			Table("salary_withdrawals").
			Select("salary_withdrawals.*, employees.full_name AS employee_name, users.full_name AS created_by_name").
			Joins("JOIN employees ON employees.id = salary_withdrawals.employee_id").
			Joins("JOIN users ON users.id = salary_withdrawals.created_by"),
		filter,
	)

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var withdrawals []SalaryWithdrawal
	err := query.
		Order("salary_withdrawals.withdrawal_date DESC").
		Order("salary_withdrawals.created_at DESC").
		Find(&withdrawals).Error
	return withdrawals, err
}

func (r *repository) Count(ctx context.Context, filter WithdrawalFilter) (int64, error) {
	var total int64
	err := applyFilter(
		r.db.WithContext(ctx).Table("salary_withdrawals"),
		filter,
	).Count(&total).Error
	return total, err
}

func (r *repository) Update(ctx context.Context, w *SalaryWithdrawal) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&SalaryWithdrawal{}, "id = ?", id).Error
}

// SumConvertedInWindow totals base-currency withdrawals inside
// [start, end); a nil end leaves the window open-ended, which the
// balance engine relies on for in-progress earning periods.
func (r *repository) SumConvertedInWindow(
	ctx context.Context,
	employeeID string,
	start time.Time,
	end *time.Time,
) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Table("salary_withdrawals").
		Where("employee_id = ?", employeeID).
		Where("withdrawal_date >= ?", start)

	if end != nil {
		query = query.Where("withdrawal_date < ?", *end)
	}

	var sum decimal.Decimal
	err := query.
		Select("COALESCE(SUM(converted_amount), 0)").
		Scan(&sum).Error
	return sum, err
}
