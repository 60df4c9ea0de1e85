package repository

import (
	"errors"
	"net/http"

	"hotel-booking/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes raised by the schema constraints.
const (
	pgCheckViolation      = "23514"
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// TranslatePgError maps constraint failures to the application error
// vocabulary. Other errors are returned unchanged.
func TranslatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgCheckViolation:
		if pgErr.ConstraintName == "checkin_before_checkout" {
			return apperror.ConstraintViolation(err, "checkout date must be later than checkin date", http.StatusBadRequest)
		}
		return apperror.ConstraintViolation(err, "value violates constraint "+pgErr.ConstraintName, http.StatusBadRequest)
	case pgExclusionViolation:
		return apperror.ConstraintViolation(err, "selected date is already booked", http.StatusConflict)
	case pgForeignKeyViolation:
		return apperror.Wrap(err, apperror.KindNotFound, "referenced record not found")
	case pgUniqueViolation:
		return apperror.Wrap(err, apperror.KindConflict, "record already exists")
	default:
		return err
	}
}
