package lms

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/organization"
)

type (
	// Finder looks up a single LMS; a missing row is a *core.NotFoundError.
	Finder interface {
		GetLMS(ctx context.Context, id int64) (LMS, error)
	}

	Repository interface {
		Finder

		CreateLMS(ctx context.Context, l LMS) (LMS, error)
		QueryLMSByOrganization(ctx context.Context, orgID int64) ([]LMS, error)
	}

	Service struct {
		repo Repository
		orgs organization.Finder
	}
)

func NewService(repo Repository, orgs organization.Finder) *Service {
	return &Service{repo: repo, orgs: orgs}
}

func (svc *Service) Create(ctx context.Context, nl NewLMS) (LMS, error) {
	if _, err := svc.orgs.GetOrganization(ctx, nl.OrganizationID); err != nil {
		return LMS{}, errors.Wrap(err, "checking organization")
	}

	now := core.Now()
	l, err := svc.repo.CreateLMS(ctx, LMS{
		OrganizationID: nl.OrganizationID,
		Name:           nl.Name,
		Description:    nl.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return LMS{}, errors.Wrap(err, "creating lms")
	}
	return l, nil
}

// QueryByOrganization returns the LMS instances of an organization; unknown organizations have none.
func (svc *Service) QueryByOrganization(ctx context.Context, orgID int64) ([]LMS, error) {
	list, err := svc.repo.QueryLMSByOrganization(ctx, orgID)
	if err != nil {
		return nil, errors.Wrap(err, "querying lms")
	}
	return list, nil
}

func (svc *Service) GetByID(ctx context.Context, id int64) (LMS, error) {
	l, err := svc.repo.GetLMS(ctx, id)
	if err != nil {
		return LMS{}, errors.Wrap(err, "getting lms")
	}
	return l, nil
}
