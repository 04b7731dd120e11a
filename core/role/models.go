package role

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type (
	OrganizationRole string
	LMSRole          string
)

const (
	RoleOrgAdmin OrganizationRole = "org_admin"

	RoleLMSAdmin      LMSRole = "lms_admin"
	RoleLMSInstructor LMSRole = "lms_instructor"
	RoleLMSStudent    LMSRole = "lms_student"
)

// Role is the display form of a role value.
type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var (
	OrganizationRoles = []Role{
		{Name: "Organization Admin", Value: string(RoleOrgAdmin)},
	}
	LMSRoles = []Role{
		{Name: "LMS Admin", Value: string(RoleLMSAdmin)},
		{Name: "Instructor", Value: string(RoleLMSInstructor)},
		{Name: "Student", Value: string(RoleLMSStudent)},
	}
)

// UserOrganizationRole grants a user a role within their organization.
type UserOrganizationRole struct {
	ID             int64            `json:"id" db:"id"`
	UserID         int64            `json:"user_id" db:"user_id"`
	OrganizationID int64            `json:"organization_id" db:"organization_id"`
	Role           OrganizationRole `json:"role" db:"role"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"` // UTC
}

// UserLMSRole grants a user a role within an LMS instance.
type UserLMSRole struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	LMSID     int64     `json:"lms_id" db:"lms_id"`
	Role      LMSRole   `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

type NewUserOrganizationRole struct {
	UserID         int64            `json:"user_id" validate:"required,gt=0"`
	OrganizationID int64            `json:"organization_id" validate:"required,gt=0"`
	Role           OrganizationRole `json:"role" validate:"required,oneof=org_admin"`
}

func (nr *NewUserOrganizationRole) Validate(validate *validator.Validate) error {
	return validate.Struct(nr)
}

type NewUserLMSRole struct {
	UserID int64   `json:"user_id" validate:"required,gt=0"`
	LMSID  int64   `json:"lms_id" validate:"required,gt=0"`
	Role   LMSRole `json:"role" validate:"required,oneof=lms_admin lms_instructor lms_student"`
}

func (nr *NewUserLMSRole) Validate(validate *validator.Validate) error {
	return validate.Struct(nr)
}
