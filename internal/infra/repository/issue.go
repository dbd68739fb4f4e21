package repository

import (
	"context"

	"fleet-reservations/internal/domain/issue"
	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/infra/db"
	"fleet-reservations/internal/usecase/shared"
)

type IssueRepository struct {
	db db.DBTX
}

func NewIssueRepository(dbtx db.DBTX) *IssueRepository {
	return &IssueRepository{db: dbtx}
}

var _ shared.IssueRepository = (*IssueRepository)(nil)

const insertIssueSQL = `
INSERT INTO vehicle_issues (id, assignment_id, title, description, reported_by, reported_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *IssueRepository) Create(ctx context.Context, iss *issue.VehicleIssue) error {
	_, err := r.db.Exec(ctx, insertIssueSQL,
		iss.ID(), iss.AssignmentID(), iss.Title(), iss.Description(), iss.ReportedBy(), iss.ReportedAt(),
	)
	if err != nil {
		if isPgErrCode(err, pgErrCodeForeignKeyViolation) {
			return infra.WrapRepoErr("issue references unknown assignment", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create issue", err)
	}
	return nil
}
