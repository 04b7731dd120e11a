package inmemdb

import (
	"context"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/organization"
)

type organizationRepository struct {
	db *DB
}

var _ organization.Repository = (*organizationRepository)(nil) // interface compliance check

func NewOrganizationRepository(db *DB) *organizationRepository {
	return &organizationRepository{db: db}
}

func (repo *organizationRepository) CreateOrganization(_ context.Context, org organization.Organization) (organization.Organization, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	org.ID = repo.db.nextID("organizations")
	repo.db.organizations[org.ID] = org
	return org, nil
}

func (repo *organizationRepository) QueryOrganizations(_ context.Context) ([]organization.Organization, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.organizations,
		func(organization.Organization) bool { return true },
		func(a, b organization.Organization) bool { return a.ID < b.ID },
	), nil
}

func (repo *organizationRepository) GetOrganization(_ context.Context, id int64) (organization.Organization, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	org, ok := repo.db.organizations[id]
	if !ok {
		return organization.Organization{}, core.NewNotFoundError("organization", id)
	}
	return org, nil
}
