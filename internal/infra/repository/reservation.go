package repository

import (
	"context"
	"errors"
	"time"

	"fleet-reservations/internal/domain/reservation"
	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/infra/db"
	"fleet-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

var _ shared.ReservationRepository = (*ReservationRepository)(nil)

const insertReservationSQL = `
INSERT INTO reservations (
    id, requester_id, purpose, start_location, destination,
    departs_at, returns_at, passenger_count, description,
    status, version, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *ReservationRepository) Create(ctx context.Context, rsv *reservation.Reservation) error {
	d := rsv.Details()
	w := rsv.Window()
	_, err := r.db.Exec(ctx, insertReservationSQL,
		rsv.ID(), rsv.RequesterID(), d.Purpose(), d.StartLocation(), d.Destination(),
		w.DepartsAt(), w.ReturnsAt(), d.PassengerCount(), d.Description(),
		string(rsv.Status()), rsv.Version(), rsv.CreatedAt(), rsv.UpdatedAt(),
	)
	if err != nil {
		if isPgErrCode(err, pgErrCodeForeignKeyViolation) {
			return infra.WrapRepoErr("reservation references unknown user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

const selectReservationSQL = `
SELECT id, requester_id, purpose, start_location, destination,
       departs_at, returns_at, passenger_count, description,
       status, reason,
       reviewed_by, reviewed_at, approved_by, approved_at,
       completed_at, cancelled_by, cancelled_at,
       version, created_at, updated_at
FROM reservations
WHERE id = $1`

const selectAssignmentsSQL = `
SELECT id, vehicle_id, state, starting_odometer, fuel_provided,
       returned_odometer, returned_at
FROM vehicle_assignments
WHERE reservation_id = $1
ORDER BY created_at, id`

func (r *ReservationRepository) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.load(ctx, id)
}

const selectReservationIDByAssignmentSQL = `
SELECT reservation_id FROM vehicle_assignments WHERE id = $1`

func (r *ReservationRepository) GetByAssignmentID(ctx context.Context, assignmentID uuid.UUID) (*reservation.Reservation, error) {
	var reservationID uuid.UUID
	err := r.db.QueryRow(ctx, selectReservationIDByAssignmentSQL, assignmentID).Scan(&reservationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve assignment owner", err)
	}
	return r.load(ctx, reservationID)
}

const updateReservationSQL = `
UPDATE reservations SET
    status = $1, reason = $2,
    reviewed_by = $3, reviewed_at = $4,
    approved_by = $5, approved_at = $6,
    completed_at = $7,
    cancelled_by = $8, cancelled_at = $9,
    version = version + 1, updated_at = $10
WHERE id = $11 AND version = $12`

const deleteStaleAssignmentsSQL = `
DELETE FROM vehicle_assignments
WHERE reservation_id = $1 AND NOT (id = ANY($2))`

const updateAssignmentSQL = `
UPDATE vehicle_assignments SET
    state = $1, starting_odometer = $2, fuel_provided = $3,
    returned_odometer = $4, returned_at = $5, updated_at = $6
WHERE id = $7`

// insertAssignmentSQL re-validates availability at commit: the row only
// lands when no assignment of another ACCEPTED or APPROVED reservation
// overlaps this trip window for the same vehicle. Zero rows inserted means
// the vehicle was claimed between the oracle check and this statement.
// The subquery reads the transaction snapshot, so a concurrent claim is
// only caught because the UnitOfWork runs SERIALIZABLE and replays the
// loser against the committed winner.
const insertAssignmentSQL = `
INSERT INTO vehicle_assignments (
    id, reservation_id, vehicle_id, state,
    starting_odometer, fuel_provided, returned_odometer, returned_at,
    created_at, updated_at
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $9
WHERE NOT EXISTS (
    SELECT 1
    FROM vehicle_assignments va
    JOIN reservations res ON res.id = va.reservation_id
    WHERE va.vehicle_id = $3
      AND res.id <> $2
      AND res.status IN ('ACCEPTED', 'APPROVED')
      AND res.departs_at < $11 AND $10 < res.returns_at
)`

// Save persists the aggregate: a version-guarded reservation update plus a
// reconciliation of the assignment ledger (update survivors, insert new
// entries with the availability guard, delete removed ones).
func (r *ReservationRepository) Save(ctx context.Context, rsv *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, updateReservationSQL,
		string(rsv.Status()), reasonText(rsv),
		rsv.ReviewedBy(), rsv.ReviewedAt(),
		rsv.ApprovedBy(), rsv.ApprovedAt(),
		rsv.CompletedAt(),
		rsv.CancelledBy(), rsv.CancelledAt(),
		rsv.UpdatedAt(),
		rsv.ID(), rsv.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation modified concurrently", nil, infra.KindConflict)
	}

	keep := make([]uuid.UUID, len(rsv.Assignments()))
	for i, a := range rsv.Assignments() {
		keep[i] = a.ID()
	}
	if _, err := r.db.Exec(ctx, deleteStaleAssignmentsSQL, rsv.ID(), keep); err != nil {
		return infra.WrapRepoErr("failed to remove detached assignments", err)
	}

	for _, a := range rsv.Assignments() {
		if err := r.saveAssignment(ctx, rsv, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReservationRepository) saveAssignment(ctx context.Context, rsv *reservation.Reservation, a *reservation.Assignment) error {
	tag, err := r.db.Exec(ctx, updateAssignmentSQL,
		string(a.State()), a.StartingOdometer(), a.FuelProvided(),
		a.ReturnedOdometer(), a.ReturnedAt(), rsv.UpdatedAt(),
		a.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update assignment", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	w := rsv.Window()
	tag, err = r.db.Exec(ctx, insertAssignmentSQL,
		a.ID(), rsv.ID(), a.VehicleID(), string(a.State()),
		a.StartingOdometer(), a.FuelProvided(), a.ReturnedOdometer(), a.ReturnedAt(),
		rsv.UpdatedAt(),
		w.DepartsAt(), w.ReturnsAt(),
	)
	if err != nil {
		switch {
		case isPgErrCode(err, pgErrCodeUniqueViolation):
			return infra.WrapRepoErr("vehicle already assigned to reservation", err, infra.KindDuplicateKey)
		case isPgErrCode(err, pgErrCodeForeignKeyViolation):
			return infra.WrapRepoErr("assignment references unknown vehicle", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert assignment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle taken by a concurrent reservation", nil, infra.KindUnavailable)
	}
	return nil
}

const deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) load(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, requesterID                              uuid.UUID
		purpose, startLocation, destination, descr      string
		departsAt, returnsAt, createdAt, updatedAt      time.Time
		passengerCount                                  int
		status                                          string
		reasonStr                                       *string
		reviewedBy, approvedBy, cancelledBy             *uuid.UUID
		reviewedAt, approvedAt, completedAt, cancelledAt *time.Time
		version                                         int64
	)
	err := r.db.QueryRow(ctx, selectReservationSQL, id).Scan(
		&resID, &requesterID, &purpose, &startLocation, &destination,
		&departsAt, &returnsAt, &passengerCount, &descr,
		&status, &reasonStr,
		&reviewedBy, &reviewedAt, &approvedBy, &approvedAt,
		&completedAt, &cancelledBy, &cancelledAt,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}

	assignments, err := r.loadAssignments(ctx, resID)
	if err != nil {
		return nil, err
	}

	details, err := reservation.NewTripDetails(purpose, startLocation, destination, passengerCount, descr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored trip details invalid", err)
	}
	window, err := reservation.NewTripWindow(departsAt, returnsAt)
	if err != nil {
		return nil, infra.WrapRepoErr("stored trip window invalid", err)
	}
	var reason *reservation.Reason
	if reasonStr != nil {
		parsed, reasonErr := reservation.NewReason(*reasonStr)
		if reasonErr != nil {
			return nil, infra.WrapRepoErr("stored reason invalid", reasonErr)
		}
		reason = &parsed
	}

	return reservation.ReconstructReservation(
		resID, requesterID, details, window,
		reservation.Status(status), reason, assignments,
		reviewedBy, reviewedAt, approvedBy, approvedAt,
		completedAt, cancelledBy, cancelledAt,
		version, createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) loadAssignments(ctx context.Context, reservationID uuid.UUID) ([]*reservation.Assignment, error) {
	rows, err := r.db.Query(ctx, selectAssignmentsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load assignments", err)
	}
	defer rows.Close()

	var assignments []*reservation.Assignment
	for rows.Next() {
		var (
			id, vehicleID    uuid.UUID
			state            string
			startingOdometer *int64
			fuelProvided     *float64
			returnedOdometer *int64
			returnedAt       *time.Time
		)
		if err := rows.Scan(&id, &vehicleID, &state, &startingOdometer, &fuelProvided, &returnedOdometer, &returnedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment", err)
		}
		assignments = append(assignments, reservation.ReconstructAssignment(
			id, vehicleID, reservation.AssignmentState(state),
			startingOdometer, fuelProvided, returnedOdometer, returnedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignments", err)
	}
	return assignments, nil
}

func reasonText(rsv *reservation.Reservation) *string {
	if rsv.Reason() == nil {
		return nil
	}
	s := rsv.Reason().String()
	return &s
}

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
