package organization

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
)

type (
	// Finder looks up a single Organization; a missing row is a *core.NotFoundError.
	Finder interface {
		GetOrganization(ctx context.Context, id int64) (Organization, error)
	}

	Repository interface {
		Finder

		CreateOrganization(ctx context.Context, org Organization) (Organization, error)
		QueryOrganizations(ctx context.Context) ([]Organization, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, no NewOrganization) (Organization, error) {
	now := core.Now()
	org, err := svc.repo.CreateOrganization(ctx, Organization{
		Name:        no.Name,
		Description: no.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return Organization{}, errors.Wrap(err, "creating organization")
	}
	return org, nil
}

// QueryAll returns every organization, oldest first.
func (svc *Service) QueryAll(ctx context.Context) ([]Organization, error) {
	orgs, err := svc.repo.QueryOrganizations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying organizations")
	}
	return orgs, nil
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Organization, error) {
	org, err := svc.repo.GetOrganization(ctx, id)
	if err != nil {
		return Organization{}, errors.Wrap(err, "getting organization")
	}
	return org, nil
}
