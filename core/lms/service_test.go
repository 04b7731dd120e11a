package lms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/testutil"
)

func TestService_Create(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()
	org := testutil.CreateOrganization(t, svcs, "Acme")

	l, err := svcs.LMS.Create(ctx, lms.NewLMS{OrganizationID: org.ID, Name: "Academy"})
	require.NoError(t, err)
	assert.NotZero(t, l.ID)
	assert.Equal(t, org.ID, l.OrganizationID)
	assert.False(t, l.Description.Valid)

	_, err = svcs.LMS.Create(ctx, lms.NewLMS{OrganizationID: 999, Name: "Ghost"})
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
	assert.Contains(t, err.Error(), "organization with id 999 does not exist")
}

func TestService_QueryByOrganization(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()
	acme := testutil.CreateOrganization(t, svcs, "Acme")
	other := testutil.CreateOrganization(t, svcs, "Other")

	a1 := testutil.CreateLMS(t, svcs, acme.ID, "A1")
	testutil.CreateLMS(t, svcs, other.ID, "O1")
	a2 := testutil.CreateLMS(t, svcs, acme.ID, "A2")

	list, err := svcs.LMS.QueryByOrganization(ctx, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, []lms.LMS{a1, a2}, list)

	list, err = svcs.LMS.QueryByOrganization(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
