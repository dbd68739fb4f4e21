package response

import (
	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	ModelName   string    `json:"modelName"`
	SeatCount   int       `json:"seatCount"`
}

func FromVehicleViews(views []*queries.VehicleView) []VehicleResponse {
	resp := make([]VehicleResponse, len(views))
	for i, v := range views {
		resp[i] = VehicleResponse(*v)
	}
	return resp
}
