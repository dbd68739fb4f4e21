package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TripWindow is the departure / expected-return pair of a reservation.
type TripWindow struct {
	departsAt time.Time
	returnsAt time.Time
}

func NewTripWindow(departsAt, returnsAt time.Time) (TripWindow, error) {
	if !returnsAt.After(departsAt) {
		return TripWindow{}, ErrInvalidWindow
	}
	return TripWindow{departsAt: departsAt, returnsAt: returnsAt}, nil
}

func (w TripWindow) DepartsAt() time.Time { return w.departsAt }
func (w TripWindow) ReturnsAt() time.Time { return w.returnsAt }

func (w TripWindow) Duration() time.Duration {
	return w.returnsAt.Sub(w.departsAt)
}

func (w TripWindow) Overlaps(other TripWindow) bool {
	return w.departsAt.Before(other.returnsAt) && other.departsAt.Before(w.returnsAt)
}

func (w TripWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.departsAt.Format(time.RFC3339), w.returnsAt.Format(time.RFC3339))
}

// Reason is the mandatory free-text note attached to a rejection or
// cancellation. Whitespace-only input is treated as empty.
type Reason struct {
	value string
}

func NewReason(value string) (Reason, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Reason{}, ErrEmptyReason
	}
	return Reason{value: trimmed}, nil
}

func (r Reason) String() string {
	return r.value
}

// Note is an optional annotation (e.g. an acceptance note). Unlike Reason
// it may be empty.
type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }

// TripDetails carries the requester-supplied trip metadata.
type TripDetails struct {
	purpose        string
	startLocation  string
	destination    string
	passengerCount int
	description    string
}

var errEmptyPurpose = errors.New("purpose cannot be empty")

func NewTripDetails(purpose, startLocation, destination string, passengerCount int, description string) (TripDetails, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return TripDetails{}, errEmptyPurpose
	}
	if passengerCount < 1 {
		return TripDetails{}, ErrInvalidPassengerCount
	}
	return TripDetails{
		purpose:        purpose,
		startLocation:  strings.TrimSpace(startLocation),
		destination:    strings.TrimSpace(destination),
		passengerCount: passengerCount,
		description:    strings.TrimSpace(description),
	}, nil
}

func (d TripDetails) Purpose() string       { return d.purpose }
func (d TripDetails) StartLocation() string { return d.startLocation }
func (d TripDetails) Destination() string   { return d.destination }
func (d TripDetails) PassengerCount() int   { return d.passengerCount }
func (d TripDetails) Description() string   { return d.description }
