package inmemdb

import (
	"context"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) *userRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.organizations[usr.OrganizationID]; !ok {
		return user.User{}, foreignKeyViolation("users", "users_organization_id_fkey")
	}
	for _, u := range repo.db.users {
		if u.Email == usr.Email && u.OrganizationID == usr.OrganizationID {
			return user.User{}, uniqueViolation("users_email_organization_id_key")
		}
	}
	usr.ID = repo.db.nextID("users")
	repo.db.users[usr.ID] = usr
	return usr, nil
}

func (repo *userRepository) QueryUsersByOrganization(_ context.Context, orgID int64) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.users,
		func(u user.User) bool { return u.OrganizationID == orgID },
		func(a, b user.User) bool { return a.ID < b.ID },
	), nil
}

func (repo *userRepository) GetUser(_ context.Context, id int64) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	usr, ok := repo.db.users[id]
	if !ok {
		return user.User{}, core.NewNotFoundError("user", id)
	}
	return usr, nil
}

func (repo *userRepository) GetUserByEmail(_ context.Context, orgID int64, email string) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, u := range repo.db.users {
		if u.OrganizationID == orgID && u.Email == email {
			return u, nil
		}
	}
	return user.User{}, core.NewNotFoundErrorBy("user", "email", email)
}

func (repo *userRepository) UpdateUserPassword(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	existing, ok := repo.db.users[usr.ID]
	if !ok {
		return user.User{}, core.NewNotFoundError("user", usr.ID)
	}
	existing.PasswordHash = usr.PasswordHash
	existing.UpdatedAt = laterOf(usr.UpdatedAt, existing.UpdatedAt)
	repo.db.users[usr.ID] = existing
	return existing, nil
}
