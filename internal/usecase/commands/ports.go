package commands

import (
	"context"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

// CapabilityResolver turns an authenticated actor into its capability set.
// The write side only ever checks membership; identity is never interpreted
// here beyond ownership comparisons on the aggregate.
type CapabilityResolver interface {
	CapabilitiesOf(ctx context.Context, a actor.Actor) (actor.Capabilities, error)
}

// ReservationViews is the read-after-write port: commands return the
// committed state of the aggregate as the caller would read it.
type ReservationViews interface {
	ByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationViews struct {
	q queries.ReservationQueries
}

func NewReservationViews(q queries.ReservationQueries) ReservationViews {
	return &reservationViews{q: q}
}

func (v *reservationViews) ByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := v.q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return view, nil
}
