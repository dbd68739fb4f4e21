//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/domain/reservation"
	"fleet-reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approverCaps() actor.Capabilities {
	return actor.NewCapabilities(actor.CapApprove, actor.CapCancel, actor.CapAssignVehicle, actor.CapUpdateReason, actor.CapComplete)
}

func mustReason(t *testing.T, value string) reservation.Reason {
	t.Helper()
	reason, err := reservation.NewReason(value)
	require.NoError(t, err)
	return reason
}

// ledgerEntry is an exported snapshot of one assignment, so whole-ledger
// comparisons can go through cmp.Diff.
type ledgerEntry struct {
	ID               uuid.UUID
	VehicleID        uuid.UUID
	State            reservation.AssignmentState
	StartingOdometer *int64
	FuelProvided     *float64
	ReturnedOdometer *int64
}

func ledgerSnapshot(r *reservation.Reservation) []ledgerEntry {
	entries := make([]ledgerEntry, 0, len(r.Assignments()))
	for _, a := range r.Assignments() {
		entries = append(entries, ledgerEntry{
			ID:               a.ID(),
			VehicleID:        a.VehicleID(),
			State:            a.State(),
			StartingOdometer: a.StartingOdometer(),
			FuelProvided:     a.FuelProvided(),
			ReturnedOdometer: a.ReturnedOdometer(),
		})
	}
	return entries
}

func TestNewReservation(t *testing.T) {
	b := builder.NewReservationBuilder()
	r := b.BuildUnderReview()

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, b.RequesterID, r.RequesterID())
	assert.Equal(t, reservation.StatusUnderReview, r.Status())
	assert.Equal(t, int64(1), r.Version())
	assert.Empty(t, r.Assignments())
	assert.Nil(t, r.Reason())
	assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
	assert.True(t, r.IsOwnedBy(b.RequesterID))
	assert.False(t, r.IsOwnedBy(uuid.New()))
}

func TestTripDetailsValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name:   "valid details",
			mutate: func(b *builder.ReservationBuilder) {},
		},
		{
			name:   "zero passengers",
			mutate: func(b *builder.ReservationBuilder) { b.PassengerCount = 0 },
			errIs:  reservation.ErrInvalidPassengerCount,
		},
		{
			name:   "negative passengers",
			mutate: func(b *builder.ReservationBuilder) { b.PassengerCount = -3 },
			errIs:  reservation.ErrInvalidPassengerCount,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder().With(tc.mutate)
			_, err := reservation.NewTripDetails(b.Purpose, b.StartLocation, b.Destination, b.PassengerCount, b.Description)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("whitespace purpose", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		_, err := reservation.NewTripDetails("   ", b.StartLocation, b.Destination, b.PassengerCount, b.Description)
		assert.Error(t, err)
	})
}

func TestTripWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("return must follow departure", func(t *testing.T) {
		_, err := reservation.NewTripWindow(now, now)
		assert.ErrorIs(t, err, reservation.ErrInvalidWindow)

		_, err = reservation.NewTripWindow(now, now.Add(-time.Hour))
		assert.ErrorIs(t, err, reservation.ErrInvalidWindow)

		w, err := reservation.NewTripWindow(now, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, w.Duration())
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		a, _ := reservation.NewTripWindow(now, now.Add(2*time.Hour))
		adjacent, _ := reservation.NewTripWindow(now.Add(2*time.Hour), now.Add(4*time.Hour))
		overlapping, _ := reservation.NewTripWindow(now.Add(time.Hour), now.Add(3*time.Hour))

		assert.False(t, a.Overlaps(adjacent))
		assert.True(t, a.Overlaps(overlapping))
		assert.True(t, a.Overlaps(a))
	})
}

func TestAccept(t *testing.T) {
	t.Run("attaches vehicles and records reviewer", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildUnderReview()
		reviewer := uuid.New()

		err := r.Accept(approverCaps(), b.VehicleIDs, reservation.NewNote("pool vans"), reviewer, b.Now)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusAccepted, r.Status())
		assert.Equal(t, b.VehicleIDs, r.VehicleIDs())
		require.NotNil(t, r.ReviewedBy())
		assert.Equal(t, reviewer, *r.ReviewedBy())
		require.NotNil(t, r.Reason())
		assert.Equal(t, "pool vans", r.Reason().String())
		for _, a := range r.Assignments() {
			assert.Equal(t, reservation.AssignmentAssigned, a.State())
			assert.Nil(t, a.StartingOdometer())
		}
	})

	t.Run("empty note leaves reason unset", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildUnderReview()
		require.NoError(t, r.Accept(approverCaps(), b.VehicleIDs, reservation.NewNote("  "), uuid.New(), b.Now))
		assert.Nil(t, r.Reason())
	})

	t.Run("no vehicles", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildUnderReview()
		err := r.Accept(approverCaps(), nil, reservation.NewNote(""), uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrNoVehicles)
		assert.Equal(t, reservation.StatusUnderReview, r.Status())
	})

	t.Run("duplicate vehicle ids", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildUnderReview()
		v := uuid.New()
		err := r.Accept(approverCaps(), []uuid.UUID{v, v}, reservation.NewNote(""), uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrVehicleAlreadyAssigned)
	})

	t.Run("repeat with identical vehicle set is a no-op", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildAccepted(uuid.New())
		before := ledgerSnapshot(r)

		err := r.Accept(approverCaps(), b.VehicleIDs, reservation.NewNote("retry"), uuid.New(), b.Now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusAccepted, r.Status())
		if diff := cmp.Diff(before, ledgerSnapshot(r)); diff != "" {
			t.Errorf("ledger changed on repeated accept (-want +got):\n%s", diff)
		}
		// The retry must not overwrite the original review trail.
		assert.Nil(t, r.Reason())
	})

	t.Run("repeat with different vehicle set is illegal", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildAccepted(uuid.New())
		err := r.Accept(approverCaps(), []uuid.UUID{uuid.New()}, reservation.NewNote(""), uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})

	t.Run("without approve capability", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildUnderReview()
		err := r.Accept(actor.NewCapabilities(actor.CapCreate), b.VehicleIDs, reservation.NewNote(""), uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrForbidden)
	})
}

func TestRejectAndCancel(t *testing.T) {
	t.Run("reject stores reason and reviewer", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildUnderReview()
		reviewer := uuid.New()

		err := r.Reject(approverCaps(), mustReason(t, "no drivers available"), reviewer, b.Now)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusRejected, r.Status())
		assert.Equal(t, "no drivers available", r.Reason().String())
		assert.Equal(t, reviewer, *r.ReviewedBy())
	})

	t.Run("cancel from each permitted status", func(t *testing.T) {
		canceller := uuid.New()
		build := map[string]func(b *builder.ReservationBuilder) *reservation.Reservation{
			"under review": func(b *builder.ReservationBuilder) *reservation.Reservation { return b.BuildUnderReview() },
			"accepted": func(b *builder.ReservationBuilder) *reservation.Reservation {
				return b.BuildAccepted(uuid.New())
			},
			"approved": func(b *builder.ReservationBuilder) *reservation.Reservation {
				return b.BuildApproved(uuid.New())
			},
		}
		for name, fn := range build {
			t.Run(name, func(t *testing.T) {
				b := builder.NewReservationBuilder()
				r := fn(b)
				err := r.Cancel(approverCaps(), mustReason(t, "trip scrapped"), canceller, b.Now)
				require.NoError(t, err)
				assert.Equal(t, reservation.StatusCancelled, r.Status())
				assert.Equal(t, canceller, *r.CancelledBy())
			})
		}
	})

	t.Run("owner cancels with only the cancel capability", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildUnderReview()
		caps := actor.NewCapabilities(actor.CapCreate, actor.CapCancel, actor.CapViewOwn)

		err := r.Cancel(caps, mustReason(t, "plans changed"), b.RequesterID, b.Now)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("non-owner without approve cannot cancel", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildUnderReview()
		caps := actor.NewCapabilities(actor.CapCreate, actor.CapCancel, actor.CapViewOwn)

		err := r.Cancel(caps, mustReason(t, "not mine"), uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrForbidden)
		assert.Equal(t, reservation.StatusUnderReview, r.Status())
		assert.Nil(t, r.CancelledBy())
	})

	t.Run("cancel after completion is illegal", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildApproved(uuid.New())
		for _, a := range r.Assignments() {
			require.NoError(t, r.CompleteAssignment(approverCaps(), a.ID(), 10_250, b.Now))
		}
		require.Equal(t, reservation.StatusCompleted, r.Status())

		err := r.Cancel(approverCaps(), mustReason(t, "too late"), uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})

	t.Run("empty reason rejected at construction", func(t *testing.T) {
		_, err := reservation.NewReason("   ")
		assert.ErrorIs(t, err, reservation.ErrEmptyReason)
	})
}

func TestEditReason(t *testing.T) {
	b := builder.NewReservationBuilder()
	r := b.BuildUnderReview()
	require.NoError(t, r.Reject(approverCaps(), mustReason(t, "original"), uuid.New(), b.Now))

	err := r.EditReason(approverCaps(), mustReason(t, "corrected"), b.Now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusRejected, r.Status())
	assert.Equal(t, "corrected", r.Reason().String())

	t.Run("not editable while active", func(t *testing.T) {
		active := builder.NewReservationBuilder().BuildUnderReview()
		err := active.EditReason(approverCaps(), mustReason(t, "nope"), b.Now)
		assert.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})
}

func TestAddRemoveVehicle(t *testing.T) {
	t.Run("add then remove while assigned", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildAccepted(uuid.New())
		extra := uuid.New()

		a, err := r.AddVehicle(approverCaps(), extra, b.Now)
		require.NoError(t, err)
		assert.Equal(t, extra, a.VehicleID())
		assert.Len(t, r.Assignments(), 2)

		require.NoError(t, r.RemoveVehicle(approverCaps(), extra, b.Now))
		assert.Len(t, r.Assignments(), 1)
	})

	t.Run("duplicate add", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildAccepted(uuid.New())
		_, err := r.AddVehicle(approverCaps(), b.VehicleIDs[0], b.Now)
		assert.ErrorIs(t, err, reservation.ErrVehicleAlreadyAssigned)
	})

	t.Run("remove unknown vehicle", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildAccepted(uuid.New())
		err := r.RemoveVehicle(approverCaps(), uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrAssignmentNotFound)
	})

	t.Run("remove after start is blocked", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildAccepted(uuid.New())
		started := b.VehicleIDs[0]

		entries := []reservation.StartEntry{{VehicleID: started, StartingOdometer: 500, FuelProvided: 30}}
		require.NoError(t, r.RecordStart(approverCaps(), entries, uuid.New(), b.Now))
		require.Equal(t, reservation.StatusAccepted, r.Status())

		err := r.RemoveVehicle(approverCaps(), started, b.Now)
		assert.ErrorIs(t, err, reservation.ErrAssignmentAlreadyStarted)
	})
}

func TestRecordStart(t *testing.T) {
	t.Run("all started promotes to approved", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildAccepted(uuid.New())
		approver := uuid.New()

		entries := []reservation.StartEntry{
			{VehicleID: b.VehicleIDs[0], StartingOdometer: 12_000, FuelProvided: 55},
			{VehicleID: b.VehicleIDs[1], StartingOdometer: 8_400, FuelProvided: 48.5},
		}
		require.NoError(t, r.RecordStart(approverCaps(), entries, approver, b.Now))

		assert.Equal(t, reservation.StatusApproved, r.Status())
		assert.Equal(t, approver, *r.ApprovedBy())
		for i, a := range r.Assignments() {
			assert.Equal(t, reservation.AssignmentStarted, a.State())
			assert.Equal(t, entries[i].StartingOdometer, *a.StartingOdometer())
			assert.Equal(t, entries[i].FuelProvided, *a.FuelProvided())
		}
	})

	t.Run("partial recording stays accepted", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildAccepted(uuid.New())

		entries := []reservation.StartEntry{{VehicleID: b.VehicleIDs[0], StartingOdometer: 100, FuelProvided: 10}}
		require.NoError(t, r.RecordStart(approverCaps(), entries, uuid.New(), b.Now))
		assert.Equal(t, reservation.StatusAccepted, r.Status())
		assert.Nil(t, r.ApprovedBy())
	})

	t.Run("one bad entry leaves the ledger untouched", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildAccepted(uuid.New())

		before := ledgerSnapshot(r)
		entries := []reservation.StartEntry{
			{VehicleID: b.VehicleIDs[0], StartingOdometer: 100, FuelProvided: 10},
			{VehicleID: b.VehicleIDs[1], StartingOdometer: -5, FuelProvided: 10},
		}
		err := r.RecordStart(approverCaps(), entries, uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrNegativeOdometer)
		if diff := cmp.Diff(before, ledgerSnapshot(r)); diff != "" {
			t.Errorf("ledger changed on failed start (-want +got):\n%s", diff)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name    string
			entries func(b *builder.ReservationBuilder) []reservation.StartEntry
			errIs   error
		}{
			{
				name:    "empty entries",
				entries: func(b *builder.ReservationBuilder) []reservation.StartEntry { return nil },
				errIs:   reservation.ErrNoVehicles,
			},
			{
				name: "unknown vehicle",
				entries: func(b *builder.ReservationBuilder) []reservation.StartEntry {
					return []reservation.StartEntry{{VehicleID: uuid.New(), StartingOdometer: 1, FuelProvided: 1}}
				},
				errIs: reservation.ErrAssignmentNotFound,
			},
			{
				name: "negative fuel",
				entries: func(b *builder.ReservationBuilder) []reservation.StartEntry {
					return []reservation.StartEntry{{VehicleID: b.VehicleIDs[0], StartingOdometer: 1, FuelProvided: -0.1}}
				},
				errIs: reservation.ErrNegativeFuel,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewReservationBuilder()
				r := b.BuildAccepted(uuid.New())
				err := r.RecordStart(approverCaps(), tc.entries(b), uuid.New(), b.Now)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("double start", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildAccepted(uuid.New())

		entries := []reservation.StartEntry{{VehicleID: b.VehicleIDs[0], StartingOdometer: 100, FuelProvided: 10}}
		require.NoError(t, r.RecordStart(approverCaps(), entries, uuid.New(), b.Now))
		err := r.RecordStart(approverCaps(), entries, uuid.New(), b.Now)
		assert.ErrorIs(t, err, reservation.ErrAssignmentAlreadyStarted)
	})
}

func TestCompleteAssignment(t *testing.T) {
	t.Run("last return completes the reservation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildApproved(uuid.New())
		returnedAt := b.Now.Add(8 * time.Hour)

		first := r.Assignments()[0]
		require.NoError(t, r.CompleteAssignment(approverCaps(), first.ID(), 10_180, returnedAt))
		assert.Equal(t, reservation.StatusApproved, r.Status())
		assert.Equal(t, reservation.AssignmentReturned, first.State())
		assert.Equal(t, int64(10_180), *first.ReturnedOdometer())

		second := r.Assignments()[1]
		require.NoError(t, r.CompleteAssignment(approverCaps(), second.ID(), 10_090, returnedAt))
		assert.Equal(t, reservation.StatusCompleted, r.Status())
		require.NotNil(t, r.CompletedAt())
		assert.Equal(t, returnedAt, *r.CompletedAt())
	})

	t.Run("odometer regression", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildApproved(uuid.New())
		a := r.Assignments()[0]
		err := r.CompleteAssignment(approverCaps(), a.ID(), *a.StartingOdometer()-1, b.Now)
		assert.ErrorIs(t, err, reservation.ErrOdometerRegression)
		assert.Equal(t, reservation.AssignmentStarted, a.State())
	})

	t.Run("equal reading is allowed", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildApproved(uuid.New())
		a := r.Assignments()[0]
		require.NoError(t, r.CompleteAssignment(approverCaps(), a.ID(), *a.StartingOdometer(), b.Now))
		assert.Equal(t, reservation.AssignmentReturned, a.State())
	})

	t.Run("double return", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.VehicleIDs = []uuid.UUID{uuid.New(), uuid.New()}
		r := b.BuildApproved(uuid.New())
		a := r.Assignments()[0]
		require.NoError(t, r.CompleteAssignment(approverCaps(), a.ID(), 10_100, b.Now))
		err := r.CompleteAssignment(approverCaps(), a.ID(), 10_200, b.Now)
		assert.ErrorIs(t, err, reservation.ErrAssignmentAlreadyReturned)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildApproved(uuid.New())
		err := r.CompleteAssignment(approverCaps(), uuid.New(), 10_100, b.Now)
		assert.ErrorIs(t, err, reservation.ErrAssignmentNotFound)
	})

	t.Run("not legal before approval", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildAccepted(uuid.New())
		err := r.CompleteAssignment(approverCaps(), r.Assignments()[0].ID(), 10_100, b.Now)
		assert.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})
}
