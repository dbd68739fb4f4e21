package commands

import (
	"context"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/domain/issue"
	"fleet-reservations/internal/domain/reservation"
	"fleet-reservations/internal/pkg/clock"
	"fleet-reservations/internal/pkg/errs"
	"fleet-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReportIssueParams struct {
	AssignmentID uuid.UUID
	Title        string
	Description  string
}

// IssueCommands records vehicle trouble reports against an active assignment.
type IssueCommands interface {
	Report(ctx context.Context, a actor.Actor, p ReportIssueParams) (uuid.UUID, error)
}

type issueCommandsImpl struct {
	uow      shared.UnitOfWork
	resolver CapabilityResolver
	clock    clock.Clock
}

func NewIssueCommands(uow shared.UnitOfWork, resolver CapabilityResolver, clk clock.Clock) IssueCommands {
	return &issueCommandsImpl{uow: uow, resolver: resolver, clock: clk}
}

// Report files an issue on a vehicle out on an approved trip. Only the
// requester who owns the reservation may report, and only while the
// reservation is APPROVED, since trouble is observed during the trip.
func (c *issueCommandsImpl) Report(ctx context.Context, a actor.Actor, p ReportIssueParams) (uuid.UUID, error) {
	caps, err := c.resolver.CapabilitiesOf(ctx, a)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}
	if !caps.Has(actor.CapViewOwn) {
		return uuid.Nil, errs.ErrForbidden
	}

	rep, err := issue.NewVehicleIssue(p.AssignmentID, a.ID, p.Title, p.Description, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rsv, getErr := tx.Reservations().GetByAssignmentID(ctx, p.AssignmentID)
		if getErr != nil {
			return mapRepoErr(getErr)
		}
		if !rsv.IsOwnedBy(a.ID) {
			return errs.ErrForbidden
		}
		if rsv.AssignmentByID(p.AssignmentID) == nil {
			return errs.ErrAssignmentNotFound
		}
		if rsv.Status() != reservation.StatusApproved {
			return errs.Mark(reservation.ErrReservationNotActive, errs.ErrIllegalTransition)
		}
		return mapRepoErr(tx.Issues().Create(ctx, rep))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rep.ID(), nil
}
