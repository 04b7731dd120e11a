package organization_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core/organization"
	"github.com/trezcool/lmsadmin/testutil"
)

func TestService_Create(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()

	org, err := svcs.Orgs.Create(ctx, organization.NewOrganization{Name: "Acme", Description: null.StringFrom("Training")})
	require.NoError(t, err)
	assert.NotZero(t, org.ID)
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, "Training", org.Description.String)
	assert.False(t, org.CreatedAt.IsZero())
	assert.Equal(t, org.CreatedAt, org.UpdatedAt)

	got, err := svcs.Orgs.GetByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org, got)
}

func TestService_QueryAll(t *testing.T) {
	svcs := testutil.NewServices()
	ctx := context.Background()

	orgs, err := svcs.Orgs.QueryAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, orgs)
	assert.Empty(t, orgs)

	first := testutil.CreateOrganization(t, svcs, "First")
	second := testutil.CreateOrganization(t, svcs, "Second")

	orgs, err = svcs.Orgs.QueryAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []organization.Organization{first, second}, orgs)
}

func TestNewOrganization_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	tests := []struct {
		name    string
		data    organization.NewOrganization
		wantErr bool
	}{
		{name: "valid", data: organization.NewOrganization{Name: " Acme "}},
		{name: "blank name", data: organization.NewOrganization{Name: "   "}, wantErr: true},
		{name: "null description", data: organization.NewOrganization{Name: "Acme", Description: null.String{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate(validate)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Acme", tt.data.Name)
		})
	}
}
