package exchange

import (
	"errors"
	"strings"

	exchangeerrors "go-payroll/internal/exchange/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_dollar_rate_date" {
			return exchangeerrors.ErrRateDateAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_dollar_rate_date") {
		return exchangeerrors.ErrRateDateAlreadyExists
	}

	return err
}
