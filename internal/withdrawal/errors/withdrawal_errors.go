package withdrawalerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrWithdrawalNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary withdrawal not found",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
)
