package exchange

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=exchange_repo.go -destination=mock/exchange_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rate *DollarRate) error
	FindAll(ctx context.Context) ([]DollarRate, error)
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

func (r *repository) Create(ctx context.Context, rate *DollarRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *repository) FindAll(ctx context.Context) ([]DollarRate, error) {
	var rates []DollarRate
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&rates).Error
	return rates, err
}
