package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Business error codes used across the booking workflow.
const (
	CodeInvalidDate     = "invalid_date"
	CodeSlotUnknown     = "slot_unknown"
	CodeSlotTaken       = "slot_taken"
	CodeBookingNotFound = "booking_not_found"
	CodeContactNotFound = "contact_not_found"
)

// IsUniqueViolation reports whether err is the store rejecting a duplicate
// active booking through the partial unique index.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return false
}
