// Package issue holds defect reports filed against a vehicle assignment
// during an active trip. Issues are additive only: this core never mutates
// or deletes one after creation.
package issue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTitleLength = 200

var (
	ErrEmptyTitle       = errors.New("issue title cannot be empty")
	ErrTitleTooLong     = errors.New("issue title too long")
	ErrEmptyDescription = errors.New("issue description cannot be empty")
)

type VehicleIssue struct {
	id           uuid.UUID
	assignmentID uuid.UUID
	title        string
	description  string
	reportedBy   uuid.UUID
	reportedAt   time.Time
}

func NewVehicleIssue(assignmentID, reportedBy uuid.UUID, title, description string, now time.Time) (*VehicleIssue, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &VehicleIssue{
		id:           uuid.New(),
		assignmentID: assignmentID,
		title:        title,
		description:  description,
		reportedBy:   reportedBy,
		reportedAt:   now,
	}, nil
}

func ReconstructVehicleIssue(id, assignmentID, reportedBy uuid.UUID, title, description string, reportedAt time.Time) *VehicleIssue {
	return &VehicleIssue{
		id:           id,
		assignmentID: assignmentID,
		title:        title,
		description:  description,
		reportedBy:   reportedBy,
		reportedAt:   reportedAt,
	}
}

func (i *VehicleIssue) ID() uuid.UUID           { return i.id }
func (i *VehicleIssue) AssignmentID() uuid.UUID { return i.assignmentID }
func (i *VehicleIssue) Title() string           { return i.title }
func (i *VehicleIssue) Description() string     { return i.description }
func (i *VehicleIssue) ReportedBy() uuid.UUID   { return i.reportedBy }
func (i *VehicleIssue) ReportedAt() time.Time   { return i.reportedAt }
