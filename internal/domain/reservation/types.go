package reservation

// Status is the reservation lifecycle state. The set is closed: a
// reservation is always in exactly one of these and only moves through
// transitions validated by Decide.
type Status string

const (
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusAccepted    Status = "ACCEPTED"
	StatusApproved    Status = "APPROVED"
	StatusCompleted   Status = "COMPLETED"
	StatusRejected    Status = "REJECTED"
	StatusCancelled   Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnderReview, StatusAccepted, StatusApproved,
		StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle action can move the
// reservation to another status. Edit-reason is still legal on REJECTED
// and CANCELLED but leaves the status unchanged.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// AssignmentState is the per-vehicle sub-lifecycle within one reservation.
// Stored explicitly rather than inferred from which optional fields are
// populated, so the ledger invariants are mechanically checkable.
type AssignmentState string

const (
	AssignmentAssigned AssignmentState = "ASSIGNED"
	AssignmentStarted  AssignmentState = "STARTED"
	AssignmentReturned AssignmentState = "RETURNED"
)

func (s AssignmentState) String() string {
	return string(s)
}

func (s AssignmentState) IsValid() bool {
	switch s {
	case AssignmentAssigned, AssignmentStarted, AssignmentReturned:
		return true
	default:
		return false
	}
}

// Action names every operation a caller can submit against a reservation.
type Action string

const (
	ActionAccept             Action = "accept"
	ActionReject             Action = "reject"
	ActionCancel             Action = "cancel"
	ActionEditReason         Action = "edit-reason"
	ActionAddVehicle         Action = "add-vehicle"
	ActionRemoveVehicle      Action = "remove-vehicle"
	ActionRecordOdometer     Action = "record-odometer"
	ActionCompleteAssignment Action = "complete-assignment"
)

func (a Action) String() string {
	return string(a)
}
