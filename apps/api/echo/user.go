package echoapi

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core/role"
	"github.com/trezcool/lmsadmin/core/user"
)

type userApi struct {
	svc      *user.Service
	roleSvc  *role.Service
	validate *validator.Validate
}

type rolesResponse struct {
	Organization []role.Role `json:"organization"`
	LMS          []role.Role `json:"lms"`
}

func registerUserAPI(rpc *rpcRouter, svc *user.Service, roleSvc *role.Service, validate *validator.Validate) {
	api := userApi{
		svc:      svc,
		roleSvc:  roleSvc,
		validate: validate,
	}

	rpc.mutation("createUser", api.create)
	rpc.query("getUsersByOrganization", api.query)

	rpc.query("getRoles", api.queryRoles)
	rpc.mutation("createUserOrganizationRole", api.createOrganizationRole)
	rpc.mutation("createUserLMSRole", api.createLMSRole)
	rpc.query("getUserOrganizationRoles", api.queryOrganizationRoles)
	rpc.query("getUserLMSRoles", api.queryLMSRoles)
}

// Handlers

func (api *userApi) create(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data user.NewUser
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewUser")
	}

	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating user")
	}
	return usr, nil
}

func (api *userApi) query(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data organizationInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to organizationInput")
	}

	users, err := api.svc.QueryByOrganization(ctx.Request().Context(), *data.OrganizationID)
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return users, nil
}

func (api *userApi) queryRoles(echo.Context, json.RawMessage) (interface{}, error) {
	return rolesResponse{Organization: role.OrganizationRoles, LMS: role.LMSRoles}, nil
}

func (api *userApi) createOrganizationRole(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data role.NewUserOrganizationRole
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewUserOrganizationRole")
	}

	r, err := api.roleSvc.CreateOrganizationRole(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating user organization role")
	}
	return r, nil
}

func (api *userApi) createLMSRole(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data role.NewUserLMSRole
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewUserLMSRole")
	}

	r, err := api.roleSvc.CreateLMSRole(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating user lms role")
	}
	return r, nil
}

func (api *userApi) queryOrganizationRoles(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data userInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to userInput")
	}

	roles, err := api.roleSvc.QueryOrganizationRoles(ctx.Request().Context(), *data.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "querying user organization roles")
	}
	return roles, nil
}

func (api *userApi) queryLMSRoles(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data userInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to userInput")
	}

	roles, err := api.roleSvc.QueryLMSRoles(ctx.Request().Context(), *data.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "querying user lms roles")
	}
	return roles, nil
}
