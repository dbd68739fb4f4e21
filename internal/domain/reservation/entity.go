package reservation

import (
	"errors"
	"time"

	"fleet-reservations/internal/domain/actor"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition         = errors.New("action not permitted from current status")
	ErrForbidden                 = errors.New("actor lacks required capability")
	ErrInvalidWindow             = errors.New("expected return must be after departure")
	ErrInvalidPassengerCount     = errors.New("passenger count must be at least 1")
	ErrEmptyReason               = errors.New("reason cannot be empty")
	ErrNoVehicles                = errors.New("at least one vehicle is required")
	ErrVehicleAlreadyAssigned    = errors.New("vehicle already assigned to this reservation")
	ErrAssignmentNotFound        = errors.New("no assignment for the given vehicle")
	ErrAssignmentNotStarted      = errors.New("assignment has no starting odometer yet")
	ErrReservationNotActive      = errors.New("reservation is not on an active trip")
	ErrAssignmentAlreadyStarted  = errors.New("assignment already has a starting odometer")
	ErrAssignmentAlreadyReturned = errors.New("assignment already returned")
	ErrNegativeOdometer          = errors.New("odometer reading cannot be negative")
	ErrNegativeFuel              = errors.New("fuel provided cannot be negative")
	ErrOdometerRegression        = errors.New("returned odometer below starting odometer")
)

// StartEntry is one vehicle's baseline reading recorded during approval.
type StartEntry struct {
	VehicleID        uuid.UUID
	StartingOdometer int64
	FuelProvided     float64
}

// Reservation is the aggregate root: trip metadata, current status and the
// owned set of vehicle assignments. All mutations run through Decide, so the
// status can only change via a validated transition, and the assignment
// ledger can only change while the status permits it.
type Reservation struct {
	id          uuid.UUID
	requesterID uuid.UUID
	details     TripDetails
	window      TripWindow
	status      Status
	reason      *Reason
	assignments []*Assignment

	reviewedBy  *uuid.UUID
	reviewedAt  *time.Time
	approvedBy  *uuid.UUID
	approvedAt  *time.Time
	completedAt *time.Time
	cancelledBy *uuid.UUID
	cancelledAt *time.Time

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation creates a requester's trip request in UNDER_REVIEW.
func NewReservation(requesterID uuid.UUID, details TripDetails, window TripWindow, now time.Time) *Reservation {
	return &Reservation{
		id:          uuid.New(),
		requesterID: requesterID,
		details:     details,
		window:      window,
		status:      StatusUnderReview,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructReservation(
	id, requesterID uuid.UUID,
	details TripDetails,
	window TripWindow,
	status Status,
	reason *Reason,
	assignments []*Assignment,
	reviewedBy *uuid.UUID, reviewedAt *time.Time,
	approvedBy *uuid.UUID, approvedAt *time.Time,
	completedAt *time.Time,
	cancelledBy *uuid.UUID, cancelledAt *time.Time,
	version int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		requesterID: requesterID,
		details:     details,
		window:      window,
		status:      status,
		reason:      reason,
		assignments: assignments,
		reviewedBy:  reviewedBy,
		reviewedAt:  reviewedAt,
		approvedBy:  approvedBy,
		approvedAt:  approvedAt,
		completedAt: completedAt,
		cancelledBy: cancelledBy,
		cancelledAt: cancelledAt,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) RequesterID() uuid.UUID     { return r.requesterID }
func (r *Reservation) Details() TripDetails       { return r.details }
func (r *Reservation) Window() TripWindow         { return r.window }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) Reason() *Reason            { return r.reason }
func (r *Reservation) Assignments() []*Assignment { return r.assignments }
func (r *Reservation) ReviewedBy() *uuid.UUID     { return r.reviewedBy }
func (r *Reservation) ReviewedAt() *time.Time     { return r.reviewedAt }
func (r *Reservation) ApprovedBy() *uuid.UUID     { return r.approvedBy }
func (r *Reservation) ApprovedAt() *time.Time     { return r.approvedAt }
func (r *Reservation) CompletedAt() *time.Time    { return r.completedAt }
func (r *Reservation) CancelledBy() *uuid.UUID    { return r.cancelledBy }
func (r *Reservation) CancelledAt() *time.Time    { return r.cancelledAt }
func (r *Reservation) Version() int64             { return r.version }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.requesterID == userID
}

// AssignmentForVehicle returns the ledger entry for the given vehicle, or nil.
func (r *Reservation) AssignmentForVehicle(vehicleID uuid.UUID) *Assignment {
	for _, a := range r.assignments {
		if a.vehicleID == vehicleID {
			return a
		}
	}
	return nil
}

// AssignmentByID returns the ledger entry with the given id, or nil.
func (r *Reservation) AssignmentByID(assignmentID uuid.UUID) *Assignment {
	for _, a := range r.assignments {
		if a.id == assignmentID {
			return a
		}
	}
	return nil
}

// VehicleIDs returns the vehicles currently attached, in ledger order.
func (r *Reservation) VehicleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.assignments))
	for i, a := range r.assignments {
		ids[i] = a.vehicleID
	}
	return ids
}

// Accept moves UNDER_REVIEW -> ACCEPTED and attaches the selected vehicles
// as ASSIGNED ledger entries. An optional note is stored in the reason
// field. Repeating Accept with the identical vehicle set on an already
// accepted reservation is a no-op, so caller-side retries are safe.
func (r *Reservation) Accept(caps actor.Capabilities, vehicleIDs []uuid.UUID, note Note, reviewer uuid.UUID, now time.Time) error {
	if len(vehicleIDs) == 0 {
		return ErrNoVehicles
	}
	if unique := uniqueIDs(vehicleIDs); len(unique) != len(vehicleIDs) {
		return ErrVehicleAlreadyAssigned
	}
	if r.status == StatusAccepted && caps.Has(actor.CapApprove) && r.hasExactVehicles(vehicleIDs) {
		return nil
	}
	if err := Decide(r.status, ActionAccept, caps); err != nil {
		return err
	}
	r.status = StatusAccepted
	if !note.IsEmpty() {
		reason := Reason{value: note.String()}
		r.reason = &reason
	}
	r.reviewedBy = &reviewer
	r.reviewedAt = &now
	for _, vehicleID := range vehicleIDs {
		r.assignments = append(r.assignments, newAssignment(vehicleID))
	}
	r.touch(now)
	return nil
}

// Reject moves UNDER_REVIEW -> REJECTED with a mandatory reason.
func (r *Reservation) Reject(caps actor.Capabilities, reason Reason, reviewer uuid.UUID, now time.Time) error {
	if err := Decide(r.status, ActionReject, caps); err != nil {
		return err
	}
	r.status = StatusRejected
	r.reason = &reason
	r.reviewedBy = &reviewer
	r.reviewedAt = &now
	r.touch(now)
	return nil
}

// Cancel is legal from UNDER_REVIEW, ACCEPTED and APPROVED. Cancelling a
// reservation you do not own additionally requires the approve capability.
func (r *Reservation) Cancel(caps actor.Capabilities, reason Reason, canceller uuid.UUID, now time.Time) error {
	if err := Decide(r.status, ActionCancel, caps); err != nil {
		return err
	}
	if !r.IsOwnedBy(canceller) && !caps.Has(actor.CapApprove) {
		return ErrForbidden
	}
	r.status = StatusCancelled
	r.reason = &reason
	r.cancelledBy = &canceller
	r.cancelledAt = &now
	r.touch(now)
	return nil
}

// EditReason replaces the stored reason on a REJECTED or CANCELLED
// reservation without changing the status.
func (r *Reservation) EditReason(caps actor.Capabilities, reason Reason, now time.Time) error {
	if err := Decide(r.status, ActionEditReason, caps); err != nil {
		return err
	}
	r.reason = &reason
	r.touch(now)
	return nil
}

// AddVehicle attaches one more vehicle while the reservation is ACCEPTED.
func (r *Reservation) AddVehicle(caps actor.Capabilities, vehicleID uuid.UUID, now time.Time) (*Assignment, error) {
	if err := Decide(r.status, ActionAddVehicle, caps); err != nil {
		return nil, err
	}
	if r.AssignmentForVehicle(vehicleID) != nil {
		return nil, ErrVehicleAlreadyAssigned
	}
	a := newAssignment(vehicleID)
	r.assignments = append(r.assignments, a)
	r.touch(now)
	return a, nil
}

// RemoveVehicle detaches a vehicle whose ledger entry is still ASSIGNED.
// Once an odometer has been recorded the entry is part of the trip record
// and can no longer be removed.
func (r *Reservation) RemoveVehicle(caps actor.Capabilities, vehicleID uuid.UUID, now time.Time) error {
	if err := Decide(r.status, ActionRemoveVehicle, caps); err != nil {
		return err
	}
	target := r.AssignmentForVehicle(vehicleID)
	if target == nil {
		return ErrAssignmentNotFound
	}
	if target.state != AssignmentAssigned {
		return ErrAssignmentAlreadyStarted
	}
	kept := r.assignments[:0]
	for _, a := range r.assignments {
		if a != target {
			kept = append(kept, a)
		}
	}
	r.assignments = kept
	r.touch(now)
	return nil
}

// RecordStart writes baseline odometer and fuel readings for the given
// vehicles. All entries are validated before any is applied, so a bad entry
// leaves the ledger untouched. Once every assignment is STARTED or RETURNED
// the reservation moves to APPROVED.
func (r *Reservation) RecordStart(caps actor.Capabilities, entries []StartEntry, approver uuid.UUID, now time.Time) error {
	if err := Decide(r.status, ActionRecordOdometer, caps); err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoVehicles
	}
	targets := make([]*Assignment, len(entries))
	for i, e := range entries {
		a := r.AssignmentForVehicle(e.VehicleID)
		if a == nil {
			return ErrAssignmentNotFound
		}
		if a.state != AssignmentAssigned {
			return ErrAssignmentAlreadyStarted
		}
		if e.StartingOdometer < 0 {
			return ErrNegativeOdometer
		}
		if e.FuelProvided < 0 {
			return ErrNegativeFuel
		}
		targets[i] = a
	}
	for i, e := range entries {
		if err := targets[i].start(e.StartingOdometer, e.FuelProvided); err != nil {
			return err
		}
	}
	if r.allAssignmentsStarted() {
		r.status = StatusApproved
		r.approvedBy = &approver
		r.approvedAt = &now
	}
	r.touch(now)
	return nil
}

// CompleteAssignment records the closing odometer for one ledger entry.
// When the last outstanding assignment is returned the reservation moves to
// COMPLETED.
func (r *Reservation) CompleteAssignment(caps actor.Capabilities, assignmentID uuid.UUID, returnedOdometer int64, now time.Time) error {
	if err := Decide(r.status, ActionCompleteAssignment, caps); err != nil {
		return err
	}
	target := r.AssignmentByID(assignmentID)
	if target == nil {
		return ErrAssignmentNotFound
	}
	if err := target.complete(returnedOdometer, now); err != nil {
		return err
	}
	if r.allAssignmentsReturned() {
		r.status = StatusCompleted
		r.completedAt = &now
	}
	r.touch(now)
	return nil
}

func (r *Reservation) allAssignmentsStarted() bool {
	if len(r.assignments) == 0 {
		return false
	}
	for _, a := range r.assignments {
		if a.state == AssignmentAssigned {
			return false
		}
	}
	return true
}

func (r *Reservation) allAssignmentsReturned() bool {
	if len(r.assignments) == 0 {
		return false
	}
	for _, a := range r.assignments {
		if a.state != AssignmentReturned {
			return false
		}
	}
	return true
}

func (r *Reservation) hasExactVehicles(vehicleIDs []uuid.UUID) bool {
	if len(r.assignments) != len(vehicleIDs) {
		return false
	}
	for _, id := range vehicleIDs {
		if r.AssignmentForVehicle(id) == nil {
			return false
		}
	}
	return true
}

func (r *Reservation) touch(now time.Time) {
	r.updatedAt = now
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
