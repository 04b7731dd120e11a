package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/role"
)

const (
	orgRoleColumns = "id, user_id, organization_id, role, created_at"
	lmsRoleColumns = "id, user_id, lms_id, role, created_at"
)

type roleRepository struct {
	exec core.DBExecutor
}

var _ role.Repository = (*roleRepository)(nil) // interface compliance check

func NewRoleRepository(exec core.DBExecutor) *roleRepository {
	return &roleRepository{exec: exec}
}

func (repo roleRepository) CreateUserOrganizationRole(ctx context.Context, r role.UserOrganizationRole) (role.UserOrganizationRole, error) {
	var created role.UserOrganizationRole
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO user_organization_roles (user_id, organization_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+orgRoleColumns,
		r.UserID, r.OrganizationID, r.Role, r.CreatedAt,
	)
	if err != nil {
		return role.UserOrganizationRole{}, errors.Wrap(trapConstraintErr(err), "inserting user organization role")
	}
	return created, nil
}

func (repo roleRepository) QueryUserOrganizationRoles(ctx context.Context, userID int64) ([]role.UserOrganizationRole, error) {
	roles := make([]role.UserOrganizationRole, 0)
	q := "SELECT " + orgRoleColumns + " FROM user_organization_roles WHERE user_id = $1" + orderBy(byID)
	if err := repo.exec.SelectContext(ctx, &roles, q, userID); err != nil {
		return nil, errors.Wrap(err, "selecting user organization roles")
	}
	return roles, nil
}

func (repo roleRepository) CreateUserLMSRole(ctx context.Context, r role.UserLMSRole) (role.UserLMSRole, error) {
	var created role.UserLMSRole
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO user_lms_roles (user_id, lms_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+lmsRoleColumns,
		r.UserID, r.LMSID, r.Role, r.CreatedAt,
	)
	if err != nil {
		return role.UserLMSRole{}, errors.Wrap(trapConstraintErr(err), "inserting user lms role")
	}
	return created, nil
}

func (repo roleRepository) QueryUserLMSRoles(ctx context.Context, userID int64) ([]role.UserLMSRole, error) {
	roles := make([]role.UserLMSRole, 0)
	q := "SELECT " + lmsRoleColumns + " FROM user_lms_roles WHERE user_id = $1" + orderBy(byID)
	if err := repo.exec.SelectContext(ctx, &roles, q, userID); err != nil {
		return nil, errors.Wrap(err, "selecting user lms roles")
	}
	return roles, nil
}
