//go:build unit

package reservation_test

import (
	"testing"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func fullCaps() actor.Capabilities {
	return actor.NewCapabilities(
		actor.CapCreate,
		actor.CapApprove,
		actor.CapCancel,
		actor.CapAssignVehicle,
		actor.CapUpdateReason,
		actor.CapComplete,
		actor.CapDelete,
		actor.CapViewOwn,
	)
}

func TestDecide(t *testing.T) {
	allStatuses := []reservation.Status{
		reservation.StatusUnderReview,
		reservation.StatusAccepted,
		reservation.StatusApproved,
		reservation.StatusCompleted,
		reservation.StatusRejected,
		reservation.StatusCancelled,
	}

	legalFrom := map[reservation.Action][]reservation.Status{
		reservation.ActionAccept:             {reservation.StatusUnderReview},
		reservation.ActionReject:             {reservation.StatusUnderReview},
		reservation.ActionCancel:             {reservation.StatusUnderReview, reservation.StatusAccepted, reservation.StatusApproved},
		reservation.ActionEditReason:         {reservation.StatusRejected, reservation.StatusCancelled},
		reservation.ActionAddVehicle:         {reservation.StatusAccepted},
		reservation.ActionRemoveVehicle:      {reservation.StatusAccepted},
		reservation.ActionRecordOdometer:     {reservation.StatusAccepted},
		reservation.ActionCompleteAssignment: {reservation.StatusApproved},
	}

	t.Run("full capability set walks the table", func(t *testing.T) {
		caps := fullCaps()
		for action, from := range legalFrom {
			legal := make(map[reservation.Status]bool, len(from))
			for _, s := range from {
				legal[s] = true
			}
			for _, status := range allStatuses {
				err := reservation.Decide(status, action, caps)
				if legal[status] {
					assert.NoError(t, err, "%s from %s", action, status)
				} else {
					assert.ErrorIs(t, err, reservation.ErrIllegalTransition, "%s from %s", action, status)
				}
			}
		}
	})

	t.Run("missing capability wins over illegal state", func(t *testing.T) {
		// A COMPLETED reservation cannot be accepted, but a caller without
		// approve rights must see forbidden, not the state detail.
		err := reservation.Decide(reservation.StatusCompleted, reservation.ActionAccept, actor.NewCapabilities(actor.CapViewOwn))
		assert.ErrorIs(t, err, reservation.ErrForbidden)
	})

	t.Run("capability checks per action", func(t *testing.T) {
		cases := []struct {
			name   string
			status reservation.Status
			action reservation.Action
			caps   actor.Capabilities
			errIs  error
		}{
			{
				name:   "requester cannot accept",
				status: reservation.StatusUnderReview,
				action: reservation.ActionAccept,
				caps:   actor.NewCapabilities(actor.CapCreate, actor.CapCancel, actor.CapViewOwn),
				errIs:  reservation.ErrForbidden,
			},
			{
				name:   "dispatcher can record odometer",
				status: reservation.StatusAccepted,
				action: reservation.ActionRecordOdometer,
				caps:   actor.NewCapabilities(actor.CapAssignVehicle),
			},
			{
				name:   "approver can record odometer",
				status: reservation.StatusAccepted,
				action: reservation.ActionRecordOdometer,
				caps:   actor.NewCapabilities(actor.CapApprove),
			},
			{
				name:   "dispatcher can complete via complete capability",
				status: reservation.StatusApproved,
				action: reservation.ActionCompleteAssignment,
				caps:   actor.NewCapabilities(actor.CapComplete),
			},
			{
				name:   "assign-vehicle alone cannot complete",
				status: reservation.StatusApproved,
				action: reservation.ActionCompleteAssignment,
				caps:   actor.NewCapabilities(actor.CapAssignVehicle),
				errIs:  reservation.ErrForbidden,
			},
			{
				name:   "update-reason required for edit",
				status: reservation.StatusRejected,
				action: reservation.ActionEditReason,
				caps:   actor.NewCapabilities(actor.CapApprove),
				errIs:  reservation.ErrForbidden,
			},
			{
				name:   "unknown action is illegal",
				status: reservation.StatusUnderReview,
				action: reservation.Action("promote"),
				caps:   fullCaps(),
				errIs:  reservation.ErrIllegalTransition,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := reservation.Decide(tc.status, tc.action, tc.caps)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestAllowedActions(t *testing.T) {
	t.Run("accepted with full caps", func(t *testing.T) {
		actions := reservation.AllowedActions(reservation.StatusAccepted, fullCaps())
		assert.ElementsMatch(t, []reservation.Action{
			reservation.ActionCancel,
			reservation.ActionAddVehicle,
			reservation.ActionRemoveVehicle,
			reservation.ActionRecordOdometer,
		}, actions)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		actions := reservation.AllowedActions(reservation.StatusCompleted, fullCaps())
		assert.Empty(t, actions)
	})

	t.Run("no capabilities means no actions", func(t *testing.T) {
		actions := reservation.AllowedActions(reservation.StatusUnderReview, actor.NewCapabilities())
		assert.Empty(t, actions)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusCompleted.IsTerminal())
	assert.True(t, reservation.StatusRejected.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
	assert.False(t, reservation.StatusUnderReview.IsTerminal())
	assert.False(t, reservation.StatusAccepted.IsTerminal())
	assert.False(t, reservation.StatusApproved.IsTerminal())

	assert.True(t, reservation.StatusApproved.IsValid())
	assert.False(t, reservation.Status("PENDING").IsValid())
}
