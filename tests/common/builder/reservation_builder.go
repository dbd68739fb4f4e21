//go:build unit || e2e

package builder

import (
	"time"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/domain/reservation"
	reqdto "fleet-reservations/internal/handler/dto/request"
	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationBuilder assembles reservations in arbitrary lifecycle stages
// for tests. The zero builder describes a one-vehicle trip tomorrow.
type ReservationBuilder struct {
	RequesterID    uuid.UUID
	Purpose        string
	StartLocation  string
	Destination    string
	DepartsAt      time.Time
	ReturnsAt      time.Time
	PassengerCount int
	Description    string
	VehicleIDs     []uuid.UUID
	Now            time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		RequesterID:    uuid.New(),
		Purpose:        "Client site visit",
		StartLocation:  "HQ garage",
		Destination:    "North plant",
		DepartsAt:      now.Add(24 * time.Hour),
		ReturnsAt:      now.Add(32 * time.Hour),
		PassengerCount: 2,
		Description:    "Quarterly audit trip",
		VehicleIDs:     []uuid.UUID{uuid.New()},
		Now:            now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Details() reservation.TripDetails {
	details, err := reservation.NewTripDetails(b.Purpose, b.StartLocation, b.Destination, b.PassengerCount, b.Description)
	if err != nil {
		panic(err)
	}
	return details
}

func (b *ReservationBuilder) Window() reservation.TripWindow {
	window, err := reservation.NewTripWindow(b.DepartsAt, b.ReturnsAt)
	if err != nil {
		panic(err)
	}
	return window
}

// BuildUnderReview returns a freshly submitted reservation.
func (b *ReservationBuilder) BuildUnderReview() *reservation.Reservation {
	return reservation.NewReservation(b.RequesterID, b.Details(), b.Window(), b.Now)
}

// BuildAccepted returns a reservation with all builder vehicles attached.
func (b *ReservationBuilder) BuildAccepted(reviewer uuid.UUID) *reservation.Reservation {
	r := b.BuildUnderReview()
	caps := actor.NewCapabilities(actor.CapApprove)
	if err := r.Accept(caps, b.VehicleIDs, reservation.NewNote(""), reviewer, b.Now); err != nil {
		panic(err)
	}
	return r
}

// BuildApproved returns a reservation whose every assignment is STARTED.
func (b *ReservationBuilder) BuildApproved(reviewer uuid.UUID) *reservation.Reservation {
	r := b.BuildAccepted(reviewer)
	caps := actor.NewCapabilities(actor.CapApprove)
	entries := make([]reservation.StartEntry, len(b.VehicleIDs))
	for i, id := range b.VehicleIDs {
		entries[i] = reservation.StartEntry{VehicleID: id, StartingOdometer: 10_000, FuelProvided: 40}
	}
	if err := r.RecordStart(caps, entries, reviewer, b.Now); err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Purpose:        b.Purpose,
		StartLocation:  b.StartLocation,
		Destination:    b.Destination,
		DepartsAt:      b.DepartsAt,
		ReturnsAt:      b.ReturnsAt,
		PassengerCount: b.PassengerCount,
		Description:    b.Description,
	}
}

func (b *ReservationBuilder) BuildView(status string) *queries.ReservationView {
	assignments := make([]queries.AssignmentView, len(b.VehicleIDs))
	for i, id := range b.VehicleIDs {
		assignments[i] = queries.AssignmentView{
			ID:          uuid.New(),
			VehicleID:   id,
			PlateNumber: "FLT-001",
			ModelName:   "Transit Van",
			State:       string(reservation.AssignmentAssigned),
		}
	}
	return &queries.ReservationView{
		ID:             uuid.New(),
		RequesterID:    b.RequesterID,
		RequesterEmail: "requester@example.com",
		Purpose:        b.Purpose,
		StartLocation:  b.StartLocation,
		Destination:    b.Destination,
		DepartsAt:      b.DepartsAt,
		ReturnsAt:      b.ReturnsAt,
		PassengerCount: b.PassengerCount,
		Description:    b.Description,
		Status:         status,
		Version:        1,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
		Assignments:    assignments,
	}
}
