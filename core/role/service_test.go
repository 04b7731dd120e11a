package role_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/role"
	"github.com/trezcool/lmsadmin/testutil"
)

func TestService_CreateOrganizationRole(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()
	acme := testutil.CreateOrganization(t, svcs, "Acme")
	other := testutil.CreateOrganization(t, svcs, "Other")
	usr := testutil.CreateUser(t, svcs, acme.ID, "Ada", "ada@example.com")

	r, err := svcs.Roles.CreateOrganizationRole(ctx, role.NewUserOrganizationRole{
		UserID:         usr.ID,
		OrganizationID: acme.ID,
		Role:           role.RoleOrgAdmin,
	})
	require.NoError(t, err)
	assert.NotZero(t, r.ID)
	assert.Equal(t, role.RoleOrgAdmin, r.Role)

	tests := []struct {
		name  string
		data  role.NewUserOrganizationRole
		check func(t *testing.T, err error)
	}{
		{
			name: "duplicate",
			data: role.NewUserOrganizationRole{UserID: usr.ID, OrganizationID: acme.ID, Role: role.RoleOrgAdmin},
			check: func(t *testing.T, err error) {
				assert.True(t, core.IsConstraintViolation(err))
			},
		},
		{
			name: "cross organization",
			data: role.NewUserOrganizationRole{UserID: usr.ID, OrganizationID: other.ID, Role: role.RoleOrgAdmin},
			check: func(t *testing.T, err error) {
				vErr, ok := errors.Cause(err).(*core.ValidationError)
				require.True(t, ok, "want *core.ValidationError, got %T", errors.Cause(err))
				assert.Equal(t, role.ErrCrossOrganization, vErr.Err)
				assert.Equal(t, "organization_id", vErr.Fields[0].Field)
			},
		},
		{
			name: "unknown user",
			data: role.NewUserOrganizationRole{UserID: 999, OrganizationID: acme.ID, Role: role.RoleOrgAdmin},
			check: func(t *testing.T, err error) {
				assert.True(t, core.IsNotFound(err))
			},
		},
		{
			name: "unknown organization",
			data: role.NewUserOrganizationRole{UserID: usr.ID, OrganizationID: 999, Role: role.RoleOrgAdmin},
			check: func(t *testing.T, err error) {
				assert.True(t, core.IsNotFound(err))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svcs.Roles.CreateOrganizationRole(ctx, tt.data)
			require.Error(t, err)
			tt.check(t, err)
		})
	}

	roles, err := svcs.Roles.QueryOrganizationRoles(ctx, usr.ID)
	require.NoError(t, err)
	assert.Equal(t, []role.UserOrganizationRole{r}, roles)
}

func TestService_CreateLMSRole(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()
	org := testutil.CreateOrganization(t, svcs, "Acme")
	l := testutil.CreateLMS(t, svcs, org.ID, "Academy")
	usr := testutil.CreateUser(t, svcs, org.ID, "Ada", "ada@example.com")

	student, err := svcs.Roles.CreateLMSRole(ctx, role.NewUserLMSRole{UserID: usr.ID, LMSID: l.ID, Role: role.RoleLMSStudent})
	require.NoError(t, err)
	instructor, err := svcs.Roles.CreateLMSRole(ctx, role.NewUserLMSRole{UserID: usr.ID, LMSID: l.ID, Role: role.RoleLMSInstructor})
	require.NoError(t, err)

	_, err = svcs.Roles.CreateLMSRole(ctx, role.NewUserLMSRole{UserID: usr.ID, LMSID: l.ID, Role: role.RoleLMSStudent})
	assert.True(t, core.IsConstraintViolation(err))

	_, err = svcs.Roles.CreateLMSRole(ctx, role.NewUserLMSRole{UserID: usr.ID, LMSID: 999, Role: role.RoleLMSStudent})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lms with id 999 does not exist")

	roles, err := svcs.Roles.QueryLMSRoles(ctx, usr.ID)
	require.NoError(t, err)
	assert.Equal(t, []role.UserLMSRole{student, instructor}, roles)

	roles, err = svcs.Roles.QueryLMSRoles(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestNewUserLMSRole_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	assert.NoError(t, (&role.NewUserLMSRole{UserID: 1, LMSID: 1, Role: role.RoleLMSAdmin}).Validate(validate))
	assert.Error(t, (&role.NewUserLMSRole{UserID: 1, LMSID: 1, Role: "org_admin"}).Validate(validate))
	assert.Error(t, (&role.NewUserOrganizationRole{UserID: 1, OrganizationID: 1, Role: "lms_admin"}).Validate(validate))
}
