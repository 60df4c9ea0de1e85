package usecase

import (
	"hotel-booking/pkg/apperror"
)

const (
	msgDateBooked       = "selected date is already booked"
	msgCheckoutAfter    = "checkout date must be later than checkin date"
	msgValidationFailed = "validation failed"
)

// serviceError keeps classified errors and marks everything else internal.
func serviceError(err error, operation string) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Internal(err, "failed to "+operation)
}
