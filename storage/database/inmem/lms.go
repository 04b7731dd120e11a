package inmemdb

import (
	"context"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/lms"
)

type lmsRepository struct {
	db *DB
}

var _ lms.Repository = (*lmsRepository)(nil) // interface compliance check

func NewLMSRepository(db *DB) *lmsRepository {
	return &lmsRepository{db: db}
}

func (repo *lmsRepository) CreateLMS(_ context.Context, l lms.LMS) (lms.LMS, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.organizations[l.OrganizationID]; !ok {
		return lms.LMS{}, foreignKeyViolation("lms_instances", "lms_instances_organization_id_fkey")
	}
	l.ID = repo.db.nextID("lms_instances")
	repo.db.lms[l.ID] = l
	return l, nil
}

func (repo *lmsRepository) QueryLMSByOrganization(_ context.Context, orgID int64) ([]lms.LMS, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.lms,
		func(l lms.LMS) bool { return l.OrganizationID == orgID },
		func(a, b lms.LMS) bool { return a.ID < b.ID },
	), nil
}

func (repo *lmsRepository) GetLMS(_ context.Context, id int64) (lms.LMS, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	l, ok := repo.db.lms[id]
	if !ok {
		return lms.LMS{}, core.NewNotFoundError("lms", id)
	}
	return l, nil
}
