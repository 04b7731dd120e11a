package echoapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type validatable interface {
	Validate(validate *validator.Validate) error
}

// bind decodes a procedure's JSON input into `data`; a missing input decodes as `{}`.
func bind(input json.RawMessage, data interface{}) error {
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	if err := json.Unmarshal(input, data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed input: "+err.Error()).SetInternal(err)
	}
	return nil
}

// bindValid decodes then validates `data`.
func bindValid(input json.RawMessage, data validatable, validate *validator.Validate) error {
	if err := bind(input, data); err != nil {
		return err
	}
	return data.Validate(validate)
}

// Query inputs only require the id to be present; ids matching nothing yield empty lists.

type organizationInput struct {
	OrganizationID *int64 `json:"organization_id" validate:"required"`
}

func (in *organizationInput) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

type lmsInput struct {
	LMSID *int64 `json:"lms_id" validate:"required"`
}

func (in *lmsInput) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

type userInput struct {
	UserID *int64 `json:"user_id" validate:"required"`
}

func (in *userInput) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

type courseInput struct {
	CourseID *int64 `json:"course_id" validate:"required"`
}

func (in *courseInput) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

type moduleInput struct {
	ModuleID *int64 `json:"module_id" validate:"required"`
}

func (in *moduleInput) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}
