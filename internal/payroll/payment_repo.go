package payroll

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type PaymentRepository interface {
	FindByEmployee(ctx context.Context, employeeID string) ([]SalaryPayment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// FindByEmployee returns the payment history newest first; the head of
// the slice anchors the active earning period.
func (r *paymentRepository) FindByEmployee(ctx context.Context, employeeID string) ([]SalaryPayment, error) {
	var payments []SalaryPayment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}
