package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/user"
	"github.com/trezcool/lmsadmin/testutil"
)

func TestService_Create(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()
	acme := testutil.CreateOrganization(t, svcs, "Acme")
	other := testutil.CreateOrganization(t, svcs, "Other")

	usr, err := svcs.Users.Create(ctx, user.NewUser{
		OrganizationID: acme.ID,
		Name:           "Ada",
		Email:          "ada@example.com",
		Password:       "correct-horse",
	})
	require.NoError(t, err)
	assert.NotZero(t, usr.ID)
	assert.NotEqual(t, []byte("correct-horse"), usr.PasswordHash)
	assert.NoError(t, usr.CheckPassword("correct-horse"))
	assert.Error(t, usr.CheckPassword("wrong-horse"))

	t.Run("duplicate email in organization", func(t *testing.T) {
		_, err := svcs.Users.Create(ctx, user.NewUser{
			OrganizationID: acme.ID,
			Name:           "Ada Again",
			Email:          "ada@example.com",
			Password:       "correct-horse",
		})
		require.Error(t, err)
		assert.True(t, core.IsConstraintViolation(err))
	})

	t.Run("same email in another organization", func(t *testing.T) {
		_, err := svcs.Users.Create(ctx, user.NewUser{
			OrganizationID: other.ID,
			Name:           "Ada",
			Email:          "ada@example.com",
			Password:       "correct-horse",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown organization", func(t *testing.T) {
		_, err := svcs.Users.Create(ctx, user.NewUser{
			OrganizationID: 777,
			Name:           "Nobody",
			Email:          "nobody@example.com",
			Password:       "correct-horse",
		})
		require.Error(t, err)
		assert.True(t, core.IsNotFound(err))
		assert.Contains(t, err.Error(), "organization with id 777 does not exist")
	})
}

func TestService_QueryByOrganization(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()
	org := testutil.CreateOrganization(t, svcs, "Acme")
	ada := testutil.CreateUser(t, svcs, org.ID, "Ada", "ada@example.com")
	bob := testutil.CreateUser(t, svcs, org.ID, "Bob", "bob@example.com")

	users, err := svcs.Users.QueryByOrganization(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, []user.User{ada, bob}, users)

	users, err = svcs.Users.QueryByOrganization(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestService_SetPassword(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()
	org := testutil.CreateOrganization(t, svcs, "Acme")
	usr := testutil.CreateUser(t, svcs, org.ID, "Ada", "ada@example.com")

	found, err := svcs.Users.GetByEmail(ctx, org.ID, " ADA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, usr.ID, found.ID)

	updated, err := svcs.Users.SetPassword(ctx, found, "brand-new-pass")
	require.NoError(t, err)
	assert.NoError(t, updated.CheckPassword("brand-new-pass"))
	assert.True(t, updated.UpdatedAt.After(usr.UpdatedAt))

	_, err = svcs.Users.GetByEmail(ctx, org.ID, "nobody@example.com")
	assert.True(t, core.IsNotFound(err))
}
