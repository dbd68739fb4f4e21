package reservation

import "fleet-reservations/internal/domain/actor"

// transitionRule is one row of the lifecycle table: which statuses an action
// is legal from and which capability (any of) the actor must hold. Both the
// accept-with-vehicles flow and the assign-then-approve flow consult the same
// table, so there is exactly one authority on what is legal.
type transitionRule struct {
	from []Status
	caps []actor.Capability
}

var transitionTable = map[Action]transitionRule{
	ActionAccept: {
		from: []Status{StatusUnderReview},
		caps: []actor.Capability{actor.CapApprove},
	},
	ActionReject: {
		from: []Status{StatusUnderReview},
		caps: []actor.Capability{actor.CapApprove},
	},
	ActionCancel: {
		from: []Status{StatusUnderReview, StatusAccepted, StatusApproved},
		caps: []actor.Capability{actor.CapCancel},
	},
	ActionEditReason: {
		from: []Status{StatusRejected, StatusCancelled},
		caps: []actor.Capability{actor.CapUpdateReason},
	},
	ActionAddVehicle: {
		from: []Status{StatusAccepted},
		caps: []actor.Capability{actor.CapAssignVehicle},
	},
	ActionRemoveVehicle: {
		from: []Status{StatusAccepted},
		caps: []actor.Capability{actor.CapAssignVehicle},
	},
	ActionRecordOdometer: {
		from: []Status{StatusAccepted},
		caps: []actor.Capability{actor.CapApprove, actor.CapAssignVehicle},
	},
	ActionCompleteAssignment: {
		from: []Status{StatusApproved},
		caps: []actor.Capability{actor.CapComplete, actor.CapApprove},
	},
}

// Decide is the single transition check: given the current status, the
// requested action and the actor's resolved capabilities, it either permits
// the action or reports why not. Capability is checked before legality so a
// caller without rights learns nothing about the reservation's state.
func Decide(current Status, action Action, caps actor.Capabilities) error {
	rule, ok := transitionTable[action]
	if !ok {
		return ErrIllegalTransition
	}
	if !caps.HasAny(rule.caps...) {
		return ErrForbidden
	}
	for _, s := range rule.from {
		if s == current {
			return nil
		}
	}
	return ErrIllegalTransition
}

// AllowedActions lists the actions legal from the given status for the given
// capability set. Read-side convenience for UIs; never used to authorize.
func AllowedActions(current Status, caps actor.Capabilities) []Action {
	var actions []Action
	for action := range transitionTable {
		if Decide(current, action, caps) == nil {
			actions = append(actions, action)
		}
	}
	return actions
}
