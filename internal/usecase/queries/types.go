package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AssignmentView struct {
	ID               uuid.UUID  `json:"id"`
	VehicleID        uuid.UUID  `json:"vehicle_id"`
	PlateNumber      string     `json:"plate_number"`
	ModelName        string     `json:"model_name"`
	State            string     `json:"state"`
	StartingOdometer *int64     `json:"starting_odometer,omitempty"`
	FuelProvided     *float64   `json:"fuel_provided,omitempty"`
	ReturnedOdometer *int64     `json:"returned_odometer,omitempty"`
	ReturnedAt       *time.Time `json:"returned_at,omitempty"`
}

type IssueView struct {
	ID           uuid.UUID `json:"id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ReportedBy   uuid.UUID `json:"reported_by"`
	ReportedAt   time.Time `json:"reported_at"`
}

type ReservationView struct {
	ID             uuid.UUID        `json:"id"`
	RequesterID    uuid.UUID        `json:"requester_id"`
	RequesterEmail string           `json:"requester_email"`
	Purpose        string           `json:"purpose"`
	StartLocation  string           `json:"start_location"`
	Destination    string           `json:"destination"`
	DepartsAt      time.Time        `json:"departs_at"`
	ReturnsAt      time.Time        `json:"returns_at"`
	PassengerCount int              `json:"passenger_count"`
	Description    string           `json:"description"`
	Status         string           `json:"status"`
	Reason         *string          `json:"reason,omitempty"`
	ReviewedBy     *uuid.UUID       `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time       `json:"reviewed_at,omitempty"`
	ApprovedBy     *uuid.UUID       `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time       `json:"approved_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	CancelledBy    *uuid.UUID       `json:"cancelled_by,omitempty"`
	CancelledAt    *time.Time       `json:"cancelled_at,omitempty"`
	Version        int64            `json:"version"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Assignments    []AssignmentView `json:"assignments"`
	Issues         []IssueView      `json:"issues,omitempty"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	RequesterID  uuid.UUID `json:"requester_id"`
	Purpose      string    `json:"purpose"`
	Destination  string    `json:"destination"`
	DepartsAt    time.Time `json:"departs_at"`
	ReturnsAt    time.Time `json:"returns_at"`
	Status       string    `json:"status"`
	VehicleCount int       `json:"vehicle_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type VehicleView struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plate_number"`
	ModelName   string    `json:"model_name"`
	SeatCount   int       `json:"seat_count"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
