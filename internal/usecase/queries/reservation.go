package queries

import (
	"context"
	"time"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReservationReadStore is the read-side persistence port. FindPage returns
// reservations ordered by (created_at DESC, id DESC) strictly after the
// given keyset position; a zero position means the first page.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindPage(ctx context.Context, requesterID *uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, a actor.Actor, caps actor.Capabilities, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem bypasses actor scoping; used by the write side to build
	// the response view after a committed transition.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, a actor.Actor, caps actor.Capabilities, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, a actor.Actor, caps actor.Capabilities, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !caps.Has(actor.CapApprove) && view.RequesterID != a.ID {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return view, nil
}

func mapStoreErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrReservationNotFound)
	}
	return errs.Mark(err, errs.ErrDependencyUnavailable)
}

// List returns the fleet-wide listing for approvers and the requester's own
// reservations for everyone else.
func (q *reservationQueriesImpl) List(ctx context.Context, a actor.Actor, caps actor.Capabilities, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var scope *uuid.UUID
	if !caps.Has(actor.CapApprove) {
		if !caps.Has(actor.CapViewOwn) {
			return nil, nil, errs.ErrForbidden
		}
		id := a.ID
		scope = &id
	}

	var afterCreatedAt time.Time
	var afterID uuid.UUID
	if after != nil && after.After != "" {
		var err error
		afterCreatedAt, afterID, err = DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrInvalidInput)
		}
	}

	items, err := q.store.FindPage(ctx, scope, afterCreatedAt, afterID, int32(limit))
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}

	var next *Cursor
	if len(items) == limit {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}
