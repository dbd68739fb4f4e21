package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers translate these to
// HTTP statuses; nothing below this line carries transport semantics.
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrIllegalTransition   = errors.New("illegal reservation transition")
	ErrAssignmentNotFound  = errors.New("vehicle assignment not found")

	// Vehicle errors
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle unavailable for the requested window")

	// Authorization errors
	ErrForbidden            = errors.New("actor lacks the required capability")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Operation errors
	ErrConflict              = errors.New("concurrent modification conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
