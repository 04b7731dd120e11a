package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/organization"
)

const organizationColumns = "id, name, description, created_at, updated_at"

type organizationRepository struct {
	exec core.DBExecutor
}

var _ organization.Repository = (*organizationRepository)(nil) // interface compliance check

func NewOrganizationRepository(exec core.DBExecutor) *organizationRepository {
	return &organizationRepository{exec: exec}
}

func (repo organizationRepository) CreateOrganization(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	var created organization.Organization
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO organizations (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+organizationColumns,
		org.Name, org.Description, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		return organization.Organization{}, errors.Wrap(trapConstraintErr(err), "inserting organization")
	}
	return created, nil
}

func (repo organizationRepository) QueryOrganizations(ctx context.Context) ([]organization.Organization, error) {
	orgs := make([]organization.Organization, 0)
	q := "SELECT " + organizationColumns + " FROM organizations" + orderBy(byID)
	if err := repo.exec.SelectContext(ctx, &orgs, q); err != nil {
		return nil, errors.Wrap(err, "selecting organizations")
	}
	return orgs, nil
}

func (repo organizationRepository) GetOrganization(ctx context.Context, id int64) (organization.Organization, error) {
	var org organization.Organization
	q := "SELECT " + organizationColumns + " FROM organizations WHERE id = $1"
	if err := repo.exec.GetContext(ctx, &org, q, id); err != nil {
		return organization.Organization{}, errors.Wrap(trapNoRowsErr(err, "organization", id), "selecting organization")
	}
	return org, nil
}
