package exchangeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrRateDateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A dollar rate for this date already exists",
		http.StatusConflict,
	)
)
