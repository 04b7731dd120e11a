package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/lms"
)

const lmsColumns = "id, organization_id, name, description, created_at, updated_at"

type lmsRepository struct {
	exec core.DBExecutor
}

var _ lms.Repository = (*lmsRepository)(nil) // interface compliance check

func NewLMSRepository(exec core.DBExecutor) *lmsRepository {
	return &lmsRepository{exec: exec}
}

func (repo lmsRepository) CreateLMS(ctx context.Context, l lms.LMS) (lms.LMS, error) {
	var created lms.LMS
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO lms_instances (organization_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+lmsColumns,
		l.OrganizationID, l.Name, l.Description, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return lms.LMS{}, errors.Wrap(trapConstraintErr(err), "inserting lms")
	}
	return created, nil
}

func (repo lmsRepository) QueryLMSByOrganization(ctx context.Context, orgID int64) ([]lms.LMS, error) {
	list := make([]lms.LMS, 0)
	q := "SELECT " + lmsColumns + " FROM lms_instances WHERE organization_id = $1" + orderBy(byID)
	if err := repo.exec.SelectContext(ctx, &list, q, orgID); err != nil {
		return nil, errors.Wrap(err, "selecting lms")
	}
	return list, nil
}

func (repo lmsRepository) GetLMS(ctx context.Context, id int64) (lms.LMS, error) {
	var l lms.LMS
	q := "SELECT " + lmsColumns + " FROM lms_instances WHERE id = $1"
	if err := repo.exec.GetContext(ctx, &l, q, id); err != nil {
		return lms.LMS{}, errors.Wrap(trapNoRowsErr(err, "lms", id), "selecting lms")
	}
	return l, nil
}
