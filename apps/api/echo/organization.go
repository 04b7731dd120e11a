package echoapi

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/core/organization"
)

type organizationApi struct {
	svc      *organization.Service
	lmsSvc   *lms.Service
	validate *validator.Validate
}

func registerOrganizationAPI(rpc *rpcRouter, svc *organization.Service, lmsSvc *lms.Service, validate *validator.Validate) {
	api := organizationApi{
		svc:      svc,
		lmsSvc:   lmsSvc,
		validate: validate,
	}

	rpc.mutation("createOrganization", api.create)
	rpc.query("getOrganizations", api.query)

	rpc.mutation("createLMS", api.createLMS)
	rpc.query("getLMSByOrganization", api.queryLMS)
}

// Handlers

func (api *organizationApi) create(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data organization.NewOrganization
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewOrganization")
	}

	org, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating organization")
	}
	return org, nil
}

func (api *organizationApi) query(ctx echo.Context, _ json.RawMessage) (interface{}, error) {
	orgs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return nil, errors.Wrap(err, "querying organizations")
	}
	return orgs, nil
}

func (api *organizationApi) createLMS(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data lms.NewLMS
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewLMS")
	}

	l, err := api.lmsSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating lms")
	}
	return l, nil
}

func (api *organizationApi) queryLMS(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data organizationInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to organizationInput")
	}

	list, err := api.lmsSvc.QueryByOrganization(ctx.Request().Context(), *data.OrganizationID)
	if err != nil {
		return nil, errors.Wrap(err, "querying lms")
	}
	return list, nil
}
