package echoapi

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core/enrollment"
)

type enrollmentApi struct {
	svc      *enrollment.Service
	validate *validator.Validate
}

func registerEnrollmentAPI(rpc *rpcRouter, svc *enrollment.Service, validate *validator.Validate) {
	api := enrollmentApi{
		svc:      svc,
		validate: validate,
	}

	rpc.mutation("createEnrollment", api.create)
	rpc.query("getEnrollmentsByUser", api.queryByUser)
	rpc.query("getEnrollmentsByCourse", api.queryByCourse)
	rpc.mutation("updateEnrollment", api.update)
}

// Handlers

func (api *enrollmentApi) create(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data enrollment.NewEnrollment
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewEnrollment")
	}

	e, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating enrollment")
	}
	return e, nil
}

func (api *enrollmentApi) queryByUser(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data userInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to userInput")
	}

	list, err := api.svc.QueryByUser(ctx.Request().Context(), *data.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "querying enrollments by user")
	}
	return list, nil
}

func (api *enrollmentApi) queryByCourse(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data courseInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to courseInput")
	}

	list, err := api.svc.QueryByCourse(ctx.Request().Context(), *data.CourseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying enrollments by course")
	}
	return list, nil
}

func (api *enrollmentApi) update(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data enrollment.UpdateEnrollment
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to UpdateEnrollment")
	}

	e, err := api.svc.Update(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "updating enrollment")
	}
	return e, nil
}
