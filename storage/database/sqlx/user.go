package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/user"
)

const userColumns = "id, organization_id, name, email, password_hash, created_at, updated_at"

type userRepository struct {
	exec core.DBExecutor
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(exec core.DBExecutor) *userRepository {
	return &userRepository{exec: exec}
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	var created user.User
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO users (organization_id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		usr.OrganizationID, usr.Name, usr.Email, usr.PasswordHash, usr.CreatedAt, usr.UpdatedAt,
	)
	if err != nil {
		return user.User{}, errors.Wrap(trapConstraintErr(err), "inserting user")
	}
	return created, nil
}

func (repo userRepository) QueryUsersByOrganization(ctx context.Context, orgID int64) ([]user.User, error) {
	users := make([]user.User, 0)
	q := "SELECT " + userColumns + " FROM users WHERE organization_id = $1" + orderBy(byID)
	if err := repo.exec.SelectContext(ctx, &users, q, orgID); err != nil {
		return nil, errors.Wrap(err, "selecting users")
	}
	return users, nil
}

func (repo userRepository) GetUser(ctx context.Context, id int64) (user.User, error) {
	var usr user.User
	q := "SELECT " + userColumns + " FROM users WHERE id = $1"
	if err := repo.exec.GetContext(ctx, &usr, q, id); err != nil {
		return user.User{}, errors.Wrap(trapNoRowsErr(err, "user", id), "selecting user")
	}
	return usr, nil
}

func (repo userRepository) GetUserByEmail(ctx context.Context, orgID int64, email string) (user.User, error) {
	var usr user.User
	q := "SELECT " + userColumns + " FROM users WHERE organization_id = $1 AND email = $2"
	if err := repo.exec.GetContext(ctx, &usr, q, orgID, email); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			err = core.NewNotFoundErrorBy("user", "email", email)
		}
		return user.User{}, errors.Wrap(err, "selecting user")
	}
	return usr, nil
}

func (repo userRepository) UpdateUserPassword(ctx context.Context, usr user.User) (user.User, error) {
	var updated user.User
	err := repo.exec.GetContext(ctx, &updated,
		`UPDATE users
		SET password_hash = $1, updated_at = GREATEST($2, updated_at + interval '1 microsecond')
		WHERE id = $3
		RETURNING `+userColumns,
		usr.PasswordHash, usr.UpdatedAt, usr.ID,
	)
	if err != nil {
		return user.User{}, errors.Wrap(trapNoRowsErr(err, "user", usr.ID), "updating user")
	}
	return updated, nil
}
