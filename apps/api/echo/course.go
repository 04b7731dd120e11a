package echoapi

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core/course"
)

type courseApi struct {
	svc      *course.Service
	validate *validator.Validate
}

func registerCourseAPI(rpc *rpcRouter, svc *course.Service, validate *validator.Validate) {
	api := courseApi{
		svc:      svc,
		validate: validate,
	}

	rpc.mutation("createCourse", api.create)
	rpc.query("getCoursesByLMS", api.query)

	rpc.mutation("createModule", api.createModule)
	rpc.query("getModulesByCourse", api.queryModules)

	rpc.mutation("createLesson", api.createLesson)
	rpc.query("getLessonsByModule", api.queryLessons)

	rpc.mutation("createCourseInstructor", api.addInstructor)
	rpc.query("getCourseInstructors", api.queryInstructors)
}

// Handlers

func (api *courseApi) create(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data course.NewCourse
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewCourse")
	}

	c, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating course")
	}
	return c, nil
}

func (api *courseApi) query(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data lmsInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to lmsInput")
	}

	courses, err := api.svc.QueryByLMS(ctx.Request().Context(), *data.LMSID)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return courses, nil
}

func (api *courseApi) createModule(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data course.NewModule
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewModule")
	}

	m, err := api.svc.CreateModule(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating module")
	}
	return m, nil
}

func (api *courseApi) queryModules(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data courseInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to courseInput")
	}

	modules, err := api.svc.QueryModules(ctx.Request().Context(), *data.CourseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying modules")
	}
	return modules, nil
}

func (api *courseApi) createLesson(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data course.NewLesson
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewLesson")
	}

	l, err := api.svc.CreateLesson(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "creating lesson")
	}
	return l, nil
}

func (api *courseApi) queryLessons(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data moduleInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to moduleInput")
	}

	lessons, err := api.svc.QueryLessons(ctx.Request().Context(), *data.ModuleID)
	if err != nil {
		return nil, errors.Wrap(err, "querying lessons")
	}
	return lessons, nil
}

func (api *courseApi) addInstructor(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data course.NewInstructor
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to NewInstructor")
	}

	inst, err := api.svc.AddInstructor(ctx.Request().Context(), data)
	if err != nil {
		return nil, errors.Wrap(err, "adding course instructor")
	}
	return inst, nil
}

func (api *courseApi) queryInstructors(ctx echo.Context, input json.RawMessage) (interface{}, error) {
	var data courseInput
	if err := bindValid(input, &data, api.validate); err != nil {
		return nil, errors.Wrap(err, "binding to courseInput")
	}

	instructors, err := api.svc.QueryInstructors(ctx.Request().Context(), *data.CourseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying course instructors")
	}
	return instructors, nil
}
