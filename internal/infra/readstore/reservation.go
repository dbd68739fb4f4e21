package readstore

import (
	"context"
	"errors"
	"time"

	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/infra/db"
	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

var _ queries.ReservationReadStore = (*ReservationReadStore)(nil)

const reservationDetailSQL = `
SELECT r.id, r.requester_id, u.email,
       r.purpose, r.start_location, r.destination,
       r.departs_at, r.returns_at, r.passenger_count, r.description,
       r.status, r.reason,
       r.reviewed_by, r.reviewed_at, r.approved_by, r.approved_at,
       r.completed_at, r.cancelled_by, r.cancelled_at,
       r.version, r.created_at, r.updated_at
FROM reservations r
JOIN users u ON u.id = r.requester_id
WHERE r.id = $1`

const reservationAssignmentViewsSQL = `
SELECT va.id, va.vehicle_id, v.plate_number, v.model_name,
       va.state, va.starting_odometer, va.fuel_provided,
       va.returned_odometer, va.returned_at
FROM vehicle_assignments va
JOIN vehicles v ON v.id = va.vehicle_id
WHERE va.reservation_id = $1
ORDER BY va.created_at, va.id`

const reservationIssueViewsSQL = `
SELECT i.id, i.assignment_id, i.title, i.description, i.reported_by, i.reported_at
FROM vehicle_issues i
JOIN vehicle_assignments va ON va.id = i.assignment_id
WHERE va.reservation_id = $1
ORDER BY i.reported_at, i.id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view := &queries.ReservationView{}
	err := s.db.QueryRow(ctx, reservationDetailSQL, id).Scan(
		&view.ID, &view.RequesterID, &view.RequesterEmail,
		&view.Purpose, &view.StartLocation, &view.Destination,
		&view.DepartsAt, &view.ReturnsAt, &view.PassengerCount, &view.Description,
		&view.Status, &view.Reason,
		&view.ReviewedBy, &view.ReviewedAt, &view.ApprovedBy, &view.ApprovedAt,
		&view.CompletedAt, &view.CancelledBy, &view.CancelledAt,
		&view.Version, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation view", err)
	}

	if view.Assignments, err = s.assignmentViews(ctx, id); err != nil {
		return nil, err
	}
	if view.Issues, err = s.issueViews(ctx, id); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ReservationReadStore) assignmentViews(ctx context.Context, reservationID uuid.UUID) ([]queries.AssignmentView, error) {
	rows, err := s.db.Query(ctx, reservationAssignmentViewsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load assignment views", err)
	}
	defer rows.Close()

	views := []queries.AssignmentView{}
	for rows.Next() {
		var v queries.AssignmentView
		if err := rows.Scan(
			&v.ID, &v.VehicleID, &v.PlateNumber, &v.ModelName,
			&v.State, &v.StartingOdometer, &v.FuelProvided,
			&v.ReturnedOdometer, &v.ReturnedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignment views", err)
	}
	return views, nil
}

func (s *ReservationReadStore) issueViews(ctx context.Context, reservationID uuid.UUID) ([]queries.IssueView, error) {
	rows, err := s.db.Query(ctx, reservationIssueViewsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load issue views", err)
	}
	defer rows.Close()

	var views []queries.IssueView
	for rows.Next() {
		var v queries.IssueView
		if err := rows.Scan(&v.ID, &v.AssignmentID, &v.Title, &v.Description, &v.ReportedBy, &v.ReportedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan issue view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate issue views", err)
	}
	return views, nil
}

// Keyset pagination over (created_at DESC, id DESC); the cursor position is
// passed as nullable parameters so the first page and subsequent pages share
// one statement.
const reservationPageSQL = `
SELECT r.id, r.requester_id, r.purpose, r.destination,
       r.departs_at, r.returns_at, r.status,
       (SELECT COUNT(*) FROM vehicle_assignments va WHERE va.reservation_id = r.id),
       r.created_at
FROM reservations r
WHERE ($1::uuid IS NULL OR r.requester_id = $1)
  AND ($2::timestamptz IS NULL OR (r.created_at, r.id) < ($2, $3::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

func (s *ReservationReadStore) FindPage(ctx context.Context, requesterID *uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	var cursorAt *time.Time
	var cursorID *uuid.UUID
	if !afterCreatedAt.IsZero() {
		cursorAt = &afterCreatedAt
		cursorID = &afterID
	}

	rows, err := s.db.Query(ctx, reservationPageSQL, requesterID, cursorAt, cursorID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		item := &queries.ReservationListItem{}
		if err := rows.Scan(
			&item.ID, &item.RequesterID, &item.Purpose, &item.Destination,
			&item.DepartsAt, &item.ReturnsAt, &item.Status,
			&item.VehicleCount, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return items, nil
}
