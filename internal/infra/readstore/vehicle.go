package readstore

import (
	"context"
	"time"

	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/infra/db"
	"fleet-reservations/internal/usecase/queries"
	"fleet-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

// VehicleReadStore is the default availability oracle: a vehicle is free
// for a window when it is active and no ACCEPTED or APPROVED reservation
// holds an overlapping assignment on it.
type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

var (
	_ queries.VehicleReadStore   = (*VehicleReadStore)(nil)
	_ shared.VehicleAvailability = (*VehicleReadStore)(nil)
)

const availableVehiclesSQL = `
SELECT v.id, v.plate_number, v.model_name, v.seat_count
FROM vehicles v
WHERE v.is_active
  AND NOT EXISTS (
      SELECT 1
      FROM vehicle_assignments va
      JOIN reservations res ON res.id = va.reservation_id
      WHERE va.vehicle_id = v.id
        AND res.status IN ('ACCEPTED', 'APPROVED')
        AND res.departs_at < $2 AND $1 < res.returns_at
  )
ORDER BY v.plate_number`

func (s *VehicleReadStore) FindAvailable(ctx context.Context, departsAt, returnsAt time.Time) ([]*queries.VehicleView, error) {
	rows, err := s.db.Query(ctx, availableVehiclesSQL, departsAt, returnsAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available vehicles", err)
	}
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		v := &queries.VehicleView{}
		if err := rows.Scan(&v.ID, &v.PlateNumber, &v.ModelName, &v.SeatCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicles", err)
	}
	return views, nil
}

const vehicleAvailableSQL = `
SELECT EXISTS (
    SELECT 1 FROM vehicles v
    WHERE v.id = $1
      AND v.is_active
      AND NOT EXISTS (
          SELECT 1
          FROM vehicle_assignments va
          JOIN reservations res ON res.id = va.reservation_id
          WHERE va.vehicle_id = v.id
            AND res.status IN ('ACCEPTED', 'APPROVED')
            AND res.departs_at < $3 AND $2 < res.returns_at
      )
)`

func (s *VehicleReadStore) IsAvailable(ctx context.Context, vehicleID uuid.UUID, departsAt, returnsAt time.Time) (bool, error) {
	var available bool
	if err := s.db.QueryRow(ctx, vehicleAvailableSQL, vehicleID, departsAt, returnsAt).Scan(&available); err != nil {
		return false, infra.WrapRepoErr("failed to check vehicle availability", err)
	}
	return available, nil
}
