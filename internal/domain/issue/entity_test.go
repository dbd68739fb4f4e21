//go:build unit

package issue_test

import (
	"strings"
	"testing"
	"time"

	"fleet-reservations/internal/domain/issue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicleIssue(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	assignmentID := uuid.New()
	reporter := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := issue.NewVehicleIssue(assignmentID, reporter, "Flat rear tyre", "Rear left tyre lost pressure on the highway.", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, assignmentID, actual.AssignmentID())
		assert.Equal(t, reporter, actual.ReportedBy())
		assert.Equal(t, now, actual.ReportedAt())
		assert.Equal(t, "Flat rear tyre", actual.Title())
	})

	t.Run("title and description are trimmed", func(t *testing.T) {
		actual, err := issue.NewVehicleIssue(assignmentID, reporter, "  Scratched door  ", "  Minor scratch on passenger door.  ", now)
		require.NoError(t, err)
		assert.Equal(t, "Scratched door", actual.Title())
		assert.Equal(t, "Minor scratch on passenger door.", actual.Description())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name        string
			title       string
			description string
			errIs       error
		}{
			{name: "empty title", title: "", description: "desc", errIs: issue.ErrEmptyTitle},
			{name: "whitespace title", title: "   ", description: "desc", errIs: issue.ErrEmptyTitle},
			{name: "title at limit", title: strings.Repeat("a", issue.MaxTitleLength), description: "desc"},
			{name: "title over limit", title: strings.Repeat("a", issue.MaxTitleLength+1), description: "desc", errIs: issue.ErrTitleTooLong},
			{name: "empty description", title: "Broken mirror", description: "", errIs: issue.ErrEmptyDescription},
			{name: "whitespace description", title: "Broken mirror", description: "  ", errIs: issue.ErrEmptyDescription},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := issue.NewVehicleIssue(assignmentID, reporter, tc.title, tc.description, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestReconstructVehicleIssue(t *testing.T) {
	id := uuid.New()
	assignmentID := uuid.New()
	reporter := uuid.New()
	reportedAt := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)

	actual := issue.ReconstructVehicleIssue(id, assignmentID, reporter, "Warning light", "Engine warning light stays on.", reportedAt)
	assert.Equal(t, id, actual.ID())
	assert.Equal(t, assignmentID, actual.AssignmentID())
	assert.Equal(t, reportedAt, actual.ReportedAt())
}
