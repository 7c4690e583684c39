package errs

import (
	"errors"
	"net/http"
)

var (
	ErrUnitNotFound       = errors.New("unit not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrParentNotFound     = errors.New("parent project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTimeEntryNotFound  = errors.New("time entry not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrToolNotFound       = errors.New("tool not found")

	ErrTaskNotActive      = errors.New("task is not active")
	ErrInvalidDate        = errors.New("invalid date, want YYYY-MM-DD")
	ErrInvalidHours       = errors.New("hours must be between 0.25 and 24 in 0.25 increments")
	ErrDescriptionTooLong = errors.New("description must be at most 500 characters")
	ErrEmailConflict      = errors.New("email already in use")

	ErrUnauthorized = errors.New("missing or invalid credentials")
	ErrForbidden    = errors.New("insufficient role")
)

var ErrStatusMap = map[error]int{
	ErrUnitNotFound:       http.StatusNotFound,
	ErrCustomerNotFound:   http.StatusNotFound,
	ErrProjectNotFound:    http.StatusNotFound,
	ErrParentNotFound:     http.StatusNotFound,
	ErrTaskNotFound:       http.StatusNotFound,
	ErrUserNotFound:       http.StatusNotFound,
	ErrTimeEntryNotFound:  http.StatusNotFound,
	ErrAssignmentNotFound: http.StatusNotFound,
	ErrToolNotFound:       http.StatusNotFound,
	ErrTaskNotActive:      http.StatusUnprocessableEntity,
	ErrInvalidDate:        http.StatusUnprocessableEntity,
	ErrInvalidHours:       http.StatusUnprocessableEntity,
	ErrDescriptionTooLong: http.StatusUnprocessableEntity,
	ErrEmailConflict:      http.StatusConflict,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
}
