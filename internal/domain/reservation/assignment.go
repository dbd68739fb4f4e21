package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is one ledger entry linking a vehicle to this reservation for
// the duration of the trip. It owns the per-vehicle start/return
// sub-lifecycle: ASSIGNED -> STARTED (odometer + fuel recorded) -> RETURNED.
type Assignment struct {
	id               uuid.UUID
	vehicleID        uuid.UUID
	state            AssignmentState
	startingOdometer *int64
	fuelProvided     *float64
	returnedOdometer *int64
	returnedAt       *time.Time
}

func newAssignment(vehicleID uuid.UUID) *Assignment {
	return &Assignment{
		id:        uuid.New(),
		vehicleID: vehicleID,
		state:     AssignmentAssigned,
	}
}

func ReconstructAssignment(
	id, vehicleID uuid.UUID,
	state AssignmentState,
	startingOdometer *int64,
	fuelProvided *float64,
	returnedOdometer *int64,
	returnedAt *time.Time,
) *Assignment {
	return &Assignment{
		id:               id,
		vehicleID:        vehicleID,
		state:            state,
		startingOdometer: startingOdometer,
		fuelProvided:     fuelProvided,
		returnedOdometer: returnedOdometer,
		returnedAt:       returnedAt,
	}
}

func (a *Assignment) ID() uuid.UUID            { return a.id }
func (a *Assignment) VehicleID() uuid.UUID     { return a.vehicleID }
func (a *Assignment) State() AssignmentState   { return a.state }
func (a *Assignment) StartingOdometer() *int64 { return a.startingOdometer }
func (a *Assignment) FuelProvided() *float64   { return a.fuelProvided }
func (a *Assignment) ReturnedOdometer() *int64 { return a.returnedOdometer }
func (a *Assignment) ReturnedAt() *time.Time   { return a.returnedAt }

// start records the baseline readings and moves the entry to STARTED.
func (a *Assignment) start(startingOdometer int64, fuelProvided float64) error {
	if a.state != AssignmentAssigned {
		return ErrAssignmentAlreadyStarted
	}
	if startingOdometer < 0 {
		return ErrNegativeOdometer
	}
	if fuelProvided < 0 {
		return ErrNegativeFuel
	}
	a.startingOdometer = &startingOdometer
	a.fuelProvided = &fuelProvided
	a.state = AssignmentStarted
	return nil
}

// complete records the closing odometer and moves the entry to RETURNED.
// The closing reading must not be below the baseline.
func (a *Assignment) complete(returnedOdometer int64, now time.Time) error {
	switch a.state {
	case AssignmentAssigned:
		return ErrAssignmentNotStarted
	case AssignmentReturned:
		return ErrAssignmentAlreadyReturned
	}
	if returnedOdometer < *a.startingOdometer {
		return ErrOdometerRegression
	}
	a.returnedOdometer = &returnedOdometer
	a.returnedAt = &now
	a.state = AssignmentReturned
	return nil
}
