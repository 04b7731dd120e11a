package role

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/core/organization"
	"github.com/trezcool/lmsadmin/core/user"
)

var ErrCrossOrganization = errors.New("user does not belong to this organization")

type (
	Repository interface {
		CreateUserOrganizationRole(ctx context.Context, r UserOrganizationRole) (UserOrganizationRole, error)
		QueryUserOrganizationRoles(ctx context.Context, userID int64) ([]UserOrganizationRole, error)
		CreateUserLMSRole(ctx context.Context, r UserLMSRole) (UserLMSRole, error)
		QueryUserLMSRoles(ctx context.Context, userID int64) ([]UserLMSRole, error)
	}

	Service struct {
		repo  Repository
		users user.Finder
		orgs  organization.Finder
		lms   lms.Finder
	}
)

func NewService(repo Repository, users user.Finder, orgs organization.Finder, lmsFinder lms.Finder) *Service {
	return &Service{repo: repo, users: users, orgs: orgs, lms: lmsFinder}
}

// CreateOrganizationRole grants an organization role. The user must belong to that organization.
func (svc *Service) CreateOrganizationRole(ctx context.Context, nr NewUserOrganizationRole) (UserOrganizationRole, error) {
	usr, err := svc.users.GetUser(ctx, nr.UserID)
	if err != nil {
		return UserOrganizationRole{}, errors.Wrap(err, "checking user")
	}
	if _, err = svc.orgs.GetOrganization(ctx, nr.OrganizationID); err != nil {
		return UserOrganizationRole{}, errors.Wrap(err, "checking organization")
	}
	if usr.OrganizationID != nr.OrganizationID {
		return UserOrganizationRole{}, core.NewValidationError(
			ErrCrossOrganization,
			core.FieldError{Field: "organization_id", Error: ErrCrossOrganization.Error()},
		)
	}

	r, err := svc.repo.CreateUserOrganizationRole(ctx, UserOrganizationRole{
		UserID:         nr.UserID,
		OrganizationID: nr.OrganizationID,
		Role:           nr.Role,
		CreatedAt:      core.Now(),
	})
	if err != nil {
		return UserOrganizationRole{}, errors.Wrap(err, "creating user organization role")
	}
	return r, nil
}

// CreateLMSRole grants an LMS role. Unlike organization roles, the LMS may belong to another organization.
func (svc *Service) CreateLMSRole(ctx context.Context, nr NewUserLMSRole) (UserLMSRole, error) {
	if _, err := svc.users.GetUser(ctx, nr.UserID); err != nil {
		return UserLMSRole{}, errors.Wrap(err, "checking user")
	}
	if _, err := svc.lms.GetLMS(ctx, nr.LMSID); err != nil {
		return UserLMSRole{}, errors.Wrap(err, "checking lms")
	}

	r, err := svc.repo.CreateUserLMSRole(ctx, UserLMSRole{
		UserID:    nr.UserID,
		LMSID:     nr.LMSID,
		Role:      nr.Role,
		CreatedAt: core.Now(),
	})
	if err != nil {
		return UserLMSRole{}, errors.Wrap(err, "creating user lms role")
	}
	return r, nil
}

func (svc *Service) QueryOrganizationRoles(ctx context.Context, userID int64) ([]UserOrganizationRole, error) {
	roles, err := svc.repo.QueryUserOrganizationRoles(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying user organization roles")
	}
	return roles, nil
}

func (svc *Service) QueryLMSRoles(ctx context.Context, userID int64) ([]UserLMSRole, error) {
	roles, err := svc.repo.QueryUserLMSRoles(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying user lms roles")
	}
	return roles, nil
}
