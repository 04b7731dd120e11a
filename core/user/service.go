package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/organization"
)

type (
	// Finder looks up a single User; a missing row is a *core.NotFoundError.
	Finder interface {
		GetUser(ctx context.Context, id int64) (User, error)
	}

	Repository interface {
		Finder

		CreateUser(ctx context.Context, usr User) (User, error)
		QueryUsersByOrganization(ctx context.Context, orgID int64) ([]User, error)
		GetUserByEmail(ctx context.Context, orgID int64, email string) (User, error)
		UpdateUserPassword(ctx context.Context, usr User) (User, error)
	}

	Service struct {
		repo     Repository
		orgs     organization.Finder
		hashCost int
	}
)

func NewService(repo Repository, orgs organization.Finder, hashCost int) *Service {
	return &Service{repo: repo, orgs: orgs, hashCost: hashCost}
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	if _, err := svc.orgs.GetOrganization(ctx, nu.OrganizationID); err != nil {
		return User{}, errors.Wrap(err, "checking organization")
	}

	now := core.Now()
	usr := User{
		OrganizationID: nu.OrganizationID,
		Name:           nu.Name,
		Email:          nu.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := usr.SetPassword(nu.Password, svc.hashCost); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}

	usr, err := svc.repo.CreateUser(ctx, usr)
	if err != nil {
		return User{}, errors.Wrap(err, "creating user")
	}
	return usr, nil
}

// QueryByOrganization returns the users of an organization; unknown organizations have none.
func (svc *Service) QueryByOrganization(ctx context.Context, orgID int64) ([]User, error) {
	users, err := svc.repo.QueryUsersByOrganization(ctx, orgID)
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return users, nil
}

func (svc *Service) GetByEmail(ctx context.Context, orgID int64, email string) (User, error) {
	usr, err := svc.repo.GetUserByEmail(ctx, orgID, core.CleanString(email, true /* lower */))
	if err != nil {
		return User{}, errors.Wrap(err, "getting user")
	}
	return usr, nil
}

// SetPassword re-hashes the password of an existing user. The caller validates `pwd` first.
func (svc *Service) SetPassword(ctx context.Context, usr User, pwd string) (User, error) {
	if err := usr.SetPassword(pwd, svc.hashCost); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	usr.UpdatedAt = core.NextTimestamp(usr.UpdatedAt)

	usr, err := svc.repo.UpdateUserPassword(ctx, usr)
	if err != nil {
		return User{}, errors.Wrap(err, "updating user password")
	}
	return usr, nil
}
