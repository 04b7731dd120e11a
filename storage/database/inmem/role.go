package inmemdb

import (
	"context"

	"github.com/trezcool/lmsadmin/core/role"
)

type roleRepository struct {
	db *DB
}

var _ role.Repository = (*roleRepository)(nil) // interface compliance check

func NewRoleRepository(db *DB) *roleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) CreateUserOrganizationRole(_ context.Context, r role.UserOrganizationRole) (role.UserOrganizationRole, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.users[r.UserID]; !ok {
		return role.UserOrganizationRole{}, foreignKeyViolation("user_organization_roles", "user_organization_roles_user_id_fkey")
	}
	if _, ok := repo.db.organizations[r.OrganizationID]; !ok {
		return role.UserOrganizationRole{}, foreignKeyViolation("user_organization_roles", "user_organization_roles_organization_id_fkey")
	}
	for _, existing := range repo.db.orgRoles {
		if existing.UserID == r.UserID && existing.OrganizationID == r.OrganizationID && existing.Role == r.Role {
			return role.UserOrganizationRole{}, uniqueViolation("user_organization_roles_user_id_organization_id_role_key")
		}
	}
	r.ID = repo.db.nextID("user_organization_roles")
	repo.db.orgRoles[r.ID] = r
	return r, nil
}

func (repo *roleRepository) QueryUserOrganizationRoles(_ context.Context, userID int64) ([]role.UserOrganizationRole, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.orgRoles,
		func(r role.UserOrganizationRole) bool { return r.UserID == userID },
		func(a, b role.UserOrganizationRole) bool { return a.ID < b.ID },
	), nil
}

func (repo *roleRepository) CreateUserLMSRole(_ context.Context, r role.UserLMSRole) (role.UserLMSRole, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.users[r.UserID]; !ok {
		return role.UserLMSRole{}, foreignKeyViolation("user_lms_roles", "user_lms_roles_user_id_fkey")
	}
	if _, ok := repo.db.lms[r.LMSID]; !ok {
		return role.UserLMSRole{}, foreignKeyViolation("user_lms_roles", "user_lms_roles_lms_id_fkey")
	}
	for _, existing := range repo.db.lmsRoles {
		if existing.UserID == r.UserID && existing.LMSID == r.LMSID && existing.Role == r.Role {
			return role.UserLMSRole{}, uniqueViolation("user_lms_roles_user_id_lms_id_role_key")
		}
	}
	r.ID = repo.db.nextID("user_lms_roles")
	repo.db.lmsRoles[r.ID] = r
	return r, nil
}

func (repo *roleRepository) QueryUserLMSRoles(_ context.Context, userID int64) ([]role.UserLMSRole, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.lmsRoles,
		func(r role.UserLMSRole) bool { return r.UserID == userID },
		func(a, b role.UserLMSRole) bool { return a.ID < b.ID },
	), nil
}
