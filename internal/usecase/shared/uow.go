package shared

import (
	"context"
	"time"

	"fleet-reservations/internal/domain/issue"
	"fleet-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

// UnitOfWork runs a write operation inside one database transaction with
// retry on serialization failures. The reservation aggregate is the unit of
// mutual exclusion: every transition loads the aggregate, mutates it and
// saves it with an optimistic version check inside a single Within call.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Issues() IssueRepository
	Availability() VehicleAvailability
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	// Get loads the full aggregate including its assignment ledger.
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// GetByAssignmentID loads the aggregate owning the given ledger entry.
	GetByAssignmentID(ctx context.Context, assignmentID uuid.UUID) (*reservation.Reservation, error)
	// Save persists the aggregate and its ledger. The reservation row update
	// is guarded by the version the aggregate was loaded with; zero affected
	// rows surfaces as a Conflict kind. Assignment inserts re-validate
	// vehicle availability for the trip window inside the same statement,
	// surfacing an Unavailable kind if another reservation claimed the
	// vehicle between check and commit.
	Save(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type IssueRepository interface {
	Create(ctx context.Context, iss *issue.VehicleIssue) error
}

// VehicleAvailability answers whether vehicles are free for a trip window.
// The default implementation is a SQL overlap query, but the port leaves
// room for an external scheduling service.
type VehicleAvailability interface {
	IsAvailable(ctx context.Context, vehicleID uuid.UUID, departsAt, returnsAt time.Time) (bool, error)
}
