package commands

import (
	"context"
	"errors"
	"time"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/domain/reservation"
	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/pkg/clock"
	"fleet-reservations/internal/pkg/errs"
	"fleet-reservations/internal/usecase/queries"
	"fleet-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	Purpose        string
	StartLocation  string
	Destination    string
	DepartsAt      time.Time
	ReturnsAt      time.Time
	PassengerCount int
	Description    string
}

type StartEntryParams struct {
	VehicleID        uuid.UUID
	StartingOdometer int64
	FuelProvided     float64
}

// ReservationCommands is the write-side surface: one operation per lifecycle
// action. Every operation resolves the actor's capabilities, runs the
// aggregate transition inside a single transaction and returns the committed
// view, or a typed failure with no state change.
type ReservationCommands interface {
	Create(ctx context.Context, a actor.Actor, p CreateReservationParams) (*queries.ReservationView, error)
	Accept(ctx context.Context, a actor.Actor, id uuid.UUID, vehicleIDs []uuid.UUID, note string) (*queries.ReservationView, error)
	Reject(ctx context.Context, a actor.Actor, id uuid.UUID, reason string) (*queries.ReservationView, error)
	Cancel(ctx context.Context, a actor.Actor, id uuid.UUID, reason string) (*queries.ReservationView, error)
	EditReason(ctx context.Context, a actor.Actor, id uuid.UUID, reason string) (*queries.ReservationView, error)
	AddVehicle(ctx context.Context, a actor.Actor, id, vehicleID uuid.UUID) (*queries.ReservationView, error)
	RemoveVehicle(ctx context.Context, a actor.Actor, id, vehicleID uuid.UUID) (*queries.ReservationView, error)
	RecordOdometer(ctx context.Context, a actor.Actor, id uuid.UUID, entries []StartEntryParams) (*queries.ReservationView, error)
	CompleteAssignment(ctx context.Context, a actor.Actor, assignmentID uuid.UUID, returnedOdometer int64) (*queries.ReservationView, error)
	Delete(ctx context.Context, a actor.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	resolver CapabilityResolver
	views    ReservationViews
	clock    clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	resolver CapabilityResolver,
	views ReservationViews,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		resolver: resolver,
		views:    views,
		clock:    clk,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, a actor.Actor, p CreateReservationParams) (*queries.ReservationView, error) {
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}
	if !caps.Has(actor.CapCreate) {
		return nil, errs.ErrForbidden
	}

	details, err := reservation.NewTripDetails(p.Purpose, p.StartLocation, p.Destination, p.PassengerCount, p.Description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	window, err := reservation.NewTripWindow(p.DepartsAt, p.ReturnsAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	rsv := reservation.NewReservation(a.ID, details, window, c.clock.Now())
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, rsv)
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return c.views.ByID(ctx, rsv.ID())
}

// Accept attaches the selected vehicles and moves the reservation to
// ACCEPTED. Availability is checked per vehicle before the ledger is
// touched and re-validated by the assignment insert at commit, so the whole
// call fails with no assignment created if any vehicle is taken.
func (c *reservationCommandsImpl) Accept(ctx context.Context, a actor.Actor, id uuid.UUID, vehicleIDs []uuid.UUID, note string) (*queries.ReservationView, error) {
	if len(vehicleIDs) == 0 {
		return nil, errs.Mark(reservation.ErrNoVehicles, errs.ErrInvalidInput)
	}
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}

	return c.mutate(ctx, id, func(ctx context.Context, tx shared.Tx, rsv *reservation.Reservation) error {
		for _, vehicleID := range vehicleIDs {
			if rsv.AssignmentForVehicle(vehicleID) != nil {
				continue // idempotent re-accept
			}
			ok, availErr := tx.Availability().IsAvailable(ctx, vehicleID, rsv.Window().DepartsAt(), rsv.Window().ReturnsAt())
			if availErr != nil {
				return mapRepoErr(availErr)
			}
			if !ok {
				return errs.ErrVehicleUnavailable
			}
		}
		return mapDomainErr(rsv.Accept(caps, vehicleIDs, reservation.NewNote(note), a.ID, c.clock.Now()))
	})
}

func (c *reservationCommandsImpl) Reject(ctx context.Context, a actor.Actor, id uuid.UUID, reasonText string) (*queries.ReservationView, error) {
	reason, err := reservation.NewReason(reasonText)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, id, func(_ context.Context, _ shared.Tx, rsv *reservation.Reservation) error {
		return mapDomainErr(rsv.Reject(caps, reason, a.ID, c.clock.Now()))
	})
}

// Cancel is a domain transition, not execution cancellation. The aggregate
// enforces that actors without the approve capability may only cancel their
// own reservations.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, a actor.Actor, id uuid.UUID, reasonText string) (*queries.ReservationView, error) {
	reason, err := reservation.NewReason(reasonText)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, id, func(_ context.Context, _ shared.Tx, rsv *reservation.Reservation) error {
		return mapDomainErr(rsv.Cancel(caps, reason, a.ID, c.clock.Now()))
	})
}

func (c *reservationCommandsImpl) EditReason(ctx context.Context, a actor.Actor, id uuid.UUID, reasonText string) (*queries.ReservationView, error) {
	reason, err := reservation.NewReason(reasonText)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, id, func(_ context.Context, _ shared.Tx, rsv *reservation.Reservation) error {
		return mapDomainErr(rsv.EditReason(caps, reason, c.clock.Now()))
	})
}

func (c *reservationCommandsImpl) AddVehicle(ctx context.Context, a actor.Actor, id, vehicleID uuid.UUID) (*queries.ReservationView, error) {
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, id, func(ctx context.Context, tx shared.Tx, rsv *reservation.Reservation) error {
		ok, availErr := tx.Availability().IsAvailable(ctx, vehicleID, rsv.Window().DepartsAt(), rsv.Window().ReturnsAt())
		if availErr != nil {
			return mapRepoErr(availErr)
		}
		if !ok {
			return errs.ErrVehicleUnavailable
		}
		_, addErr := rsv.AddVehicle(caps, vehicleID, c.clock.Now())
		return mapDomainErr(addErr)
	})
}

func (c *reservationCommandsImpl) RemoveVehicle(ctx context.Context, a actor.Actor, id, vehicleID uuid.UUID) (*queries.ReservationView, error) {
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, id, func(_ context.Context, _ shared.Tx, rsv *reservation.Reservation) error {
		return mapDomainErr(rsv.RemoveVehicle(caps, vehicleID, c.clock.Now()))
	})
}

// RecordOdometer writes baseline readings for the listed vehicles in one
// atomic call; the reservation moves to APPROVED once every assignment is
// started.
func (c *reservationCommandsImpl) RecordOdometer(ctx context.Context, a actor.Actor, id uuid.UUID, entries []StartEntryParams) (*queries.ReservationView, error) {
	if len(entries) == 0 {
		return nil, errs.ErrInvalidInput
	}
	for _, e := range entries {
		if e.StartingOdometer < 0 {
			return nil, errs.Mark(reservation.ErrNegativeOdometer, errs.ErrInvalidInput)
		}
		if e.FuelProvided < 0 {
			return nil, errs.Mark(reservation.ErrNegativeFuel, errs.ErrInvalidInput)
		}
	}
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}
	domainEntries := make([]reservation.StartEntry, len(entries))
	for i, e := range entries {
		domainEntries[i] = reservation.StartEntry{
			VehicleID:        e.VehicleID,
			StartingOdometer: e.StartingOdometer,
			FuelProvided:     e.FuelProvided,
		}
	}
	return c.mutate(ctx, id, func(_ context.Context, _ shared.Tx, rsv *reservation.Reservation) error {
		return mapDomainErr(rsv.RecordStart(caps, domainEntries, a.ID, c.clock.Now()))
	})
}

// CompleteAssignment closes one ledger entry; the reservation moves to
// COMPLETED when the last outstanding assignment is returned.
func (c *reservationCommandsImpl) CompleteAssignment(ctx context.Context, a actor.Actor, assignmentID uuid.UUID, returnedOdometer int64) (*queries.ReservationView, error) {
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return nil, err
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rsv, getErr := tx.Reservations().GetByAssignmentID(ctx, assignmentID)
		if getErr != nil {
			return mapRepoErr(getErr)
		}
		if applyErr := mapDomainErr(rsv.CompleteAssignment(caps, assignmentID, returnedOdometer, c.clock.Now())); applyErr != nil {
			return applyErr
		}
		reservationID = rsv.ID()
		return mapRepoErr(tx.Reservations().Save(ctx, rsv))
	})
	if err != nil {
		return nil, err
	}
	return c.views.ByID(ctx, reservationID)
}

// Delete is the administrative escape hatch outside the lifecycle; the
// assignment ledger goes with the aggregate.
func (c *reservationCommandsImpl) Delete(ctx context.Context, a actor.Actor, id uuid.UUID) error {
	caps, err := c.capabilities(ctx, a)
	if err != nil {
		return err
	}
	if !caps.Has(actor.CapDelete) {
		return errs.ErrForbidden
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Reservations().Delete(ctx, id))
	})
}

// mutate is the load-transition-save skeleton shared by every lifecycle
// operation keyed by reservation id.
func (c *reservationCommandsImpl) mutate(
	ctx context.Context,
	id uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, rsv *reservation.Reservation) error,
) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rsv, getErr := tx.Reservations().Get(ctx, id)
		if getErr != nil {
			return mapRepoErr(getErr)
		}
		if applyErr := fn(ctx, tx, rsv); applyErr != nil {
			return applyErr
		}
		return mapRepoErr(tx.Reservations().Save(ctx, rsv))
	})
	if err != nil {
		return nil, err
	}
	return c.views.ByID(ctx, id)
}

func (c *reservationCommandsImpl) capabilities(ctx context.Context, a actor.Actor) (actor.Capabilities, error) {
	caps, err := c.resolver.CapabilitiesOf(ctx, a)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}
	return caps, nil
}

// mapDomainErr translates aggregate errors into the usecase sentinel the
// handler layer switches on.
func mapDomainErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, reservation.ErrForbidden):
		return errs.Mark(err, errs.ErrForbidden)
	case errors.Is(err, reservation.ErrIllegalTransition),
		errors.Is(err, reservation.ErrReservationNotActive),
		errors.Is(err, reservation.ErrAssignmentNotStarted),
		errors.Is(err, reservation.ErrAssignmentAlreadyStarted),
		errors.Is(err, reservation.ErrAssignmentAlreadyReturned):
		return errs.Mark(err, errs.ErrIllegalTransition)
	case errors.Is(err, reservation.ErrAssignmentNotFound):
		return errs.Mark(err, errs.ErrAssignmentNotFound)
	default:
		return errs.Mark(err, errs.ErrInvalidInput)
	}
}

// mapRepoErr translates infrastructure error kinds into usecase sentinels.
func mapRepoErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrVehicleUnavailable)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrVehicleNotFound)
	default:
		return errs.Mark(err, errs.ErrDependencyUnavailable)
	}
}
