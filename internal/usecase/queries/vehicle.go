package queries

import (
	"context"
	"time"

	"fleet-reservations/internal/pkg/errs"
)

// VehicleReadStore lists catalog vehicles by id set.
type VehicleReadStore interface {
	FindAvailable(ctx context.Context, departsAt, returnsAt time.Time) ([]*VehicleView, error)
}

type VehicleQueries interface {
	ListAvailable(ctx context.Context, departsAt, returnsAt time.Time) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) ListAvailable(ctx context.Context, departsAt, returnsAt time.Time) ([]*VehicleView, error) {
	if !returnsAt.After(departsAt) {
		return nil, errs.ErrInvalidInput
	}
	views, err := q.store.FindAvailable(ctx, departsAt, returnsAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}
	return views, nil
}
